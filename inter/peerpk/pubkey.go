// Package peerpk provides a typed wrapper for peer public keys as they
// appear in configuration files. The type byte keeps the door open for
// signature schemes other than Ed25519 without touching every config
// consumer.
package peerpk

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// PubKey represents a peer's public key together with its scheme tag.
type PubKey struct {
	// Type identifies the signature scheme of the key.
	Type uint8
	// Raw contains the actual public key bytes.
	Raw []byte
}

// Types defines the supported public key type constants.
var Types = struct {
	Ed25519 uint8
}{
	// 0xe5 is an arbitrary tag byte for RFC 8032 Ed25519 keys.
	Ed25519: 0xe5,
}

// Ed25519KeySize is the raw length of an Ed25519 public key.
const Ed25519KeySize = 32

// Empty reports whether the key is uninitialized.
func (pk PubKey) Empty() bool {
	return len(pk.Raw) == 0 && pk.Type == 0
}

// String returns the 0x-prefixed hex form of Bytes.
func (pk PubKey) String() string {
	return "0x" + common.Bytes2Hex(pk.Bytes())
}

// Bytes returns [Type byte] + [Raw bytes...].
func (pk PubKey) Bytes() []byte {
	return append([]byte{pk.Type}, pk.Raw...)
}

// Copy creates a deep copy, since Raw shares memory on plain assignment.
func (pk PubKey) Copy() PubKey {
	return PubKey{
		Type: pk.Type,
		Raw:  common.CopyBytes(pk.Raw),
	}
}

// Validate checks that the key is well-formed for its declared scheme.
func (pk PubKey) Validate() error {
	if pk.Type != Types.Ed25519 {
		return fmt.Errorf("unsupported pubkey type 0x%02x", pk.Type)
	}
	if len(pk.Raw) != Ed25519KeySize {
		return fmt.Errorf("ed25519 pubkey must be %d bytes, got %d", Ed25519KeySize, len(pk.Raw))
	}
	return nil
}

// FromString parses a hex string, with or without a 0x prefix.
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromBytes reconstructs a PubKey from its Bytes form.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) == 0 {
		return PubKey{}, errors.New("empty pubkey")
	}
	return PubKey{b[0], b[1:]}, nil
}

// MarshalText implements encoding.TextMarshaler, so keys serialize as hex
// strings inside JSON configs. Value receiver, so map values marshal too.
func (pk PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}
