// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

// SignatureBytesLen is the length, in bytes, of a signature serialized by
// Signature.Serialize: two 32-byte little-endian field elements.
const SignatureBytesLen = 2 * feltByteLen

// Signature is a Starkware ECDSA-like signature: a pair (r, s), both
// elements of Fr. sign's acceptance predicate constrains r, and the w whose
// inverse is s, to [1, 2^251); s itself is only known to be nonzero.
type Signature struct {
	R, S Scalar
}

// Serialize returns the signature as 64 bytes: r's little-endian encoding
// followed by s's.
func (sig *Signature) Serialize() [SignatureBytesLen]byte {
	var out [SignatureBytesLen]byte
	r := scalarToLEBytes(&sig.R)
	s := scalarToLEBytes(&sig.S)
	copy(out[:feltByteLen], r[:])
	copy(out[feltByteLen:], s[:])
	return out
}

// ParseSignature parses a 64-byte signature produced by Serialize.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureBytesLen {
		return nil, signatureError(ErrIncorrectLength,
			"signature must be exactly 64 bytes")
	}

	r, err := bytesToScalar(b[:feltByteLen])
	if err != nil {
		return nil, err
	}
	s, err := bytesToScalar(b[feltByteLen:])
	if err != nil {
		return nil, err
	}
	return &Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid Starkware signature of message hash
// h under pub.
//
// This is a reference, non-production implementation kept only so this
// package's own tests can cross-check Sign end to end (spec.md's property
// P1). Production deployments verify on-chain or via an audited verifier;
// this routine performs no constant-time discipline and must not be relied
// on for anything security-sensitive.
func Verify(pub *PublicKey, h Felt, sig *Signature) bool {
	if sig.S.IsZero() {
		return false
	}
	if !isBelowTwoPow251(&h) {
		return false
	}

	var w Scalar
	w.Inverse(&sig.S)

	hScalar := feltToScalarChecked(&h)

	var u1, u2 Scalar
	u1.Mul(&hScalar, &w)
	u2.Mul(&sig.R, &w)

	genTerm := scalarMultJacobian(scalarBigInt(&u1), &pedersenConstants().generator)
	pubAffine := affinePoint{x: pub.X, y: pub.Y}
	pubTerm := scalarMultJacobian(scalarBigInt(&u2), &pubAffine)

	sum := addJacobian(&genTerm, &pubTerm)
	if sum.infinity() {
		return false
	}
	affine := sum.toAffine()

	// Compare raw integers rather than routing affine.x through
	// feltToScalarChecked: an invalid signature can legitimately produce
	// an x coordinate >= 2^251, which that helper assumes never happens.
	return feltBigInt(&affine.x).Cmp(scalarBigInt(&sig.R)) == 0
}
