package inter

import (
	"github.com/ethereum/go-ethereum/common"
)

// Sizes of the cryptographic primitives, in bytes. Event hashes reuse
// lachesis-base's 32-byte hash type.
const (
	KeySize = 32
	SigSize = 64
)

// Key is a raw Ed25519 key, public or private seed.
type Key [KeySize]byte

// Signature is a raw Ed25519 signature.
type Signature [SigSize]byte

// BytesToKey converts b to a Key; b must hold KeySize bytes.
func BytesToKey(b []byte) Key {
	var k Key
	copy(k[:], b)
	return k
}

func (k Key) Bytes() []byte {
	return common.CopyBytes(k[:])
}

// Hex returns the lowercase fixed-width hex form without a 0x prefix.
func (k Key) Hex() string {
	return common.Bytes2Hex(k[:])
}

// BytesToSignature converts b to a Signature; b must hold SigSize bytes.
func BytesToSignature(b []byte) Signature {
	var s Signature
	copy(s[:], b)
	return s
}

func (s Signature) Bytes() []byte {
	return common.CopyBytes(s[:])
}

// Hex returns the lowercase fixed-width hex form without a 0x prefix.
func (s Signature) Hex() string {
	return common.Bytes2Hex(s[:])
}
