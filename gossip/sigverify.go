package gossip

import (
	"crypto/ed25519"
	"errors"

	"filippo.io/edwards25519"
)

// Strict Ed25519 verification per RFC 8032, additionally rejecting
// small-order public keys and nonce points as well as non-canonical
// signature scalars. Plain ed25519.Verify accepts some of those, which
// would let distinct peers produce mutually valid signatures.

var (
	errKeySize         = errors.New("ed25519 public key must be 32 bytes")
	errBadPoint        = errors.New("invalid curve point encoding")
	errSmallOrderPoint = errors.New("small-order curve point")
	errBadScalar       = errors.New("non-canonical signature scalar")
	errVerifyFailed    = errors.New("signature does not verify")
)

func validatePublicKey(pub ed25519.PublicKey) error {
	if len(pub) != ed25519.PublicKeySize {
		return errKeySize
	}
	point, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return errBadPoint
	}
	if isSmallOrder(point) {
		return errSmallOrderPoint
	}
	return nil
}

func isSmallOrder(p *edwards25519.Point) bool {
	var q edwards25519.Point
	return q.MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1
}

func verifyStrict(pub ed25519.PublicKey, msg, sig []byte) error {
	if len(sig) != ed25519.SignatureSize {
		return errVerifyFailed
	}
	if err := validatePublicKey(pub); err != nil {
		return err
	}

	nonce, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return errBadPoint
	}
	if isSmallOrder(nonce) {
		return errSmallOrderPoint
	}
	if _, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:]); err != nil {
		return errBadScalar
	}

	if !ed25519.Verify(pub, msg, sig) {
		return errVerifyFailed
	}
	return nil
}
