// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// Felt is an element of Fq, the STARK curve's base field.  Field arithmetic
// (Add, Mul, Inverse, ...) is provided by gnark-crypto's generated,
// constant-time Montgomery field implementation; this package only adds the
// STARK-specific byte encoding, range checks, and group law built on top of
// it.
type Felt = fp.Element

// Scalar is an element of Fr, the STARK curve's scalar field (the group
// order).  See Felt for the arithmetic backend.
type Scalar = fr.Element

const feltByteLen = 32

// fqModulusDec and frModulusDec mirror spec.md's data model section
// verbatim; they are kept here (independently of gnark-crypto's internal
// modulus) so that incorrectLength/overflow checks are auditable against
// the spec text without having to trust a third-party constant.
const (
	fqModulusDec = "3618502788666131213697322783095070105623107215331596699973092056135872020481"
	frModulusDec = "3618502788666131213697322783095070105526743751716087489154079457884512865583"
)

var (
	fqModulus = mustBigFromDecimal(fqModulusDec)
	frModulus = mustBigFromDecimal(frModulusDec)
)

// bytesToFelt decodes a 32-byte little-endian integer representative into a
// canonical Fq element.  This is spec.md's bytes_to_field(b, Fq).
func bytesToFelt(b []byte) (Felt, error) {
	u, err := decodeCanonicalLE(b, fqModulus)
	if err != nil {
		return Felt{}, err
	}
	var f Felt
	f.SetBigInt(u)
	return f, nil
}

// bytesToScalar decodes a 32-byte little-endian integer representative into
// a canonical Fr element.  This is spec.md's bytes_to_field(b, Fr).
func bytesToScalar(b []byte) (Scalar, error) {
	u, err := decodeCanonicalLE(b, frModulus)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.SetBigInt(u)
	return s, nil
}

// decodeCanonicalLE implements the shared body of bytes_to_field: it
// decodes exactly feltByteLen little-endian bytes into an integer and
// rejects the input outright if that integer is not strictly less than the
// target modulus.  Explicit overflow rejection prevents accidental
// reduction, which would silently change the signed or hashed value.
func decodeCanonicalLE(b []byte, modulus *big.Int) (*big.Int, error) {
	if len(b) != feltByteLen {
		return nil, signatureError(ErrIncorrectLength,
			"field element must be exactly 32 bytes")
	}

	u := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		u.Lsh(u, 8)
		u.Or(u, big.NewInt(int64(b[i])))
	}

	if u.Cmp(modulus) >= 0 {
		return nil, signatureError(ErrOverflow,
			"value is not less than the field modulus")
	}
	return u, nil
}

// feltToLEBytes serializes a canonical Fq element as 32 little-endian
// bytes.
func feltToLEBytes(f *Felt) [feltByteLen]byte {
	return bigIntToLEBytes(feltBigInt(f))
}

// scalarToLEBytes serializes a canonical Fr element as 32 little-endian
// bytes.
func scalarToLEBytes(s *Scalar) [feltByteLen]byte {
	return bigIntToLEBytes(scalarBigInt(s))
}

func bigIntToLEBytes(v *big.Int) [feltByteLen]byte {
	var out [feltByteLen]byte
	be := v.Bytes()
	for i := 0; i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

func feltBigInt(f *Felt) *big.Int {
	var v big.Int
	f.BigInt(&v)
	return &v
}

func scalarBigInt(s *Scalar) *big.Int {
	var v big.Int
	s.BigInt(&v)
	return &v
}

// feltToScalarChecked embeds an Fq element into Fr.  This conversion is only
// safe when the caller has already established that the value fits, i.e. is
// strictly less than 2^251 < Fr's modulus; this package never performs an
// implicit Fq -> Fr coercion outside of that checked path, per spec.md's
// dual-field-embedding design note.
func feltToScalarChecked(f *Felt) Scalar {
	var s Scalar
	s.SetBigInt(feltBigInt(f))
	return s
}

// scalarToFelt embeds an Fr element into Fq.  This direction is always safe
// since Fr's modulus is strictly smaller than Fq's.
func scalarToFelt(s *Scalar) Felt {
	var f Felt
	f.SetBigInt(scalarBigInt(s))
	return f
}

// isBelowTwoPow251 reports whether the integer representative of f is
// strictly less than 2^251.
func isBelowTwoPow251(f *Felt) bool {
	return feltBigInt(f).Cmp(twoPow251) < 0
}

// scalarIsBelowTwoPow251 reports whether the integer representative of s is
// strictly less than 2^251.
func scalarIsBelowTwoPow251(s *Scalar) bool {
	return scalarBigInt(s).Cmp(twoPow251) < 0
}
