// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import "math/big"

// Signer wraps an optional private key and exposes the hashing and signing
// surface used by embedders: generate or load a key, hash messages into
// signable field elements, and produce Starkware-style signatures.
//
// A Signer with no loaded key can still call HashFelts/HashBytes and
// SignWithExternalKey; Sign and SignHashed return ErrNoKey.
type Signer struct {
	key *PrivateKey
}

// NewKey creates a Signer around a freshly generated private key.
func NewKey() (*Signer, error) {
	key, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Signer{key: key}, nil
}

// LoadKey creates a Signer around a private key parsed from its 32-byte
// little-endian encoding.
func LoadKey(b []byte) (*Signer, error) {
	key, err := PrivKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key}, nil
}

// Zero clears the Signer's loaded private key, if any, from memory and
// unloads it. A Signer with no loaded key holds no secret material, so
// calling Zero on one is a no-op. Callers that are done with a Signer
// should call Zero before letting it go out of scope, per this package's
// secret-material handling policy.
func (s *Signer) Zero() {
	if s.key == nil {
		return
	}
	s.key.Zero()
	s.key = nil
}

// GetPrivateKey returns the 32-byte little-endian encoding of the loaded
// private key.
func (s *Signer) GetPrivateKey() ([PrivKeyBytesLen]byte, error) {
	if s.key == nil {
		return [PrivKeyBytesLen]byte{}, signatureError(ErrNoKey, "signer has no loaded private key")
	}
	return s.key.Serialize(), nil
}

// GetPublicKey returns the public key corresponding to the loaded private
// key.
func (s *Signer) GetPublicKey() (*PublicKey, error) {
	if s.key == nil {
		return nil, signatureError(ErrNoKey, "signer has no loaded private key")
	}
	return s.key.PubKey(), nil
}

// HashFelts computes the Starkware Pedersen hash chain over xs.
func (s *Signer) HashFelts(xs []Felt) (Felt, error) {
	return computeHashOnElements(xs)
}

// HashBytes hashes an arbitrary-length byte message into a single signable
// field element: it splits data into 31-byte chunks (each guaranteed to fit
// below the field modulus without reduction), appends a final element
// carrying the bit length of data, and folds the result with HashFelts.
// This mirrors unsafe_hash_to_field in the Starkware reference
// implementation; as that name signals upstream, this is a convenience
// chunking scheme, not a general-purpose collision-resistant byte hash.
func (s *Signer) HashBytes(data []byte) (Felt, error) {
	return hashBytesToFelt(data)
}

func hashBytesToFelt(data []byte) (Felt, error) {
	if len(data) == 0 {
		return Felt{}, signatureError(ErrEmptyData, "cannot hash empty data")
	}

	const chunkSize = 31
	var elements []Felt
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		v := new(big.Int)
		for _, b := range chunk {
			v.Lsh(v, 8)
			v.Or(v, big.NewInt(int64(b)))
		}

		var f Felt
		f.SetBigInt(v)
		elements = append(elements, f)
	}

	var bitLen Felt
	bitLen.SetUint64(uint64(8 * len(data)))
	elements = append(elements, bitLen)

	return computeHashOnElements(elements)
}

// Sign hashes xs with HashFelts and signs the result using a freshly
// derived RFC 6979 nonce.
func (s *Signer) Sign(xs []Felt) (*Signature, error) {
	if s.key == nil {
		return nil, signatureError(ErrNoKey, "signer has no loaded private key")
	}
	h, err := computeHashOnElements(xs)
	if err != nil {
		return nil, err
	}
	return s.SignHashed(h)
}

// SignHashed signs an already-computed message hash h, which must satisfy
// 0 <= h < 2^251.
func (s *Signer) SignHashed(h Felt) (*Signature, error) {
	if s.key == nil {
		return nil, signatureError(ErrNoKey, "signer has no loaded private key")
	}
	return sign(s.key.d, h, nil)
}

// SignWithExternalKey signs xs using a caller-supplied private scalar d
// instead of the Signer's own loaded key, exactly as the Starkware
// reference adapter's sign_with_external_key allows a host embedder to
// keep the key outside of the Signer's lifecycle.
func (s *Signer) SignWithExternalKey(d Scalar, xs []Felt) (*Signature, error) {
	h, err := computeHashOnElements(xs)
	if err != nil {
		return nil, err
	}
	return sign(d, h, nil)
}

// maxSignAttempts bounds the retry loop in sign. Each iteration rejects
// with probability roughly 2^-5, so this cap is exhausted only if the
// HMAC-DRBG or the curve constants are broken; it exists purely as a
// defensive backstop against an infinite loop, not because the cap is
// expected to bind in practice.
const maxSignAttempts = 10_000

// sign implements the Starkware ECDSA-like signer's retry loop: draw a
// deterministic nonce k, reject it if the resulting r, t, or w values
// fail their acceptance predicate, and otherwise emit (r, s). This
// mirrors sign() in the Starkware reference implementation.
func sign(d Scalar, h Felt, seed *uint64) (*Signature, error) {
	if !isBelowTwoPow251(&h) {
		return nil, signatureError(ErrMessageOutOfRange,
			"message hash is not below 2^251")
	}

	// d and hScalar are this call's local copies of the private key and
	// signed hash; both are cleared on every exit path, per spec.md's
	// resource policy on intermediate scalars holding d or k.
	defer d.SetZero()
	hScalar := feltToScalarChecked(&h)
	defer hScalar.SetZero()

	// curSeed starts out exactly as the caller passed it in (nil means
	// "no seed bytes at all", not seed zero) and only becomes Some(1),
	// Some(2), ... once the first draw is rejected, matching the
	// Starkware reference's seed-increment retry scheme.
	curSeed := seed

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k := generateK(frModulus, &d, &hScalar, curSeed)

		var next uint64
		if curSeed == nil {
			next = 1
		} else {
			next = *curSeed + 1
		}
		curSeed = &next

		rPoint := scalarBaseMultJacobian(scalarBigInt(&k)).toAffine()
		if !isBelowTwoPow251(&rPoint.x) || rPoint.x.IsZero() {
			k.SetZero()
			continue
		}
		r := feltToScalarChecked(&rPoint.x)

		// t = h + r*d
		var t, rd Scalar
		rd.Mul(&r, &d)
		t.Add(&hScalar, &rd)
		rd.SetZero()
		if t.IsZero() {
			k.SetZero()
			t.SetZero()
			continue
		}

		var tInv, w Scalar
		tInv.Inverse(&t)
		t.SetZero()
		w.Mul(&k, &tInv)
		tInv.SetZero()
		k.SetZero()
		if !scalarIsBelowTwoPow251(&w) || w.IsZero() {
			w.SetZero()
			continue
		}

		// s and r become the emitted signature, not secret material: r is
		// a public x-coordinate and s = w^-1 is the value transmitted to
		// verifiers, so neither is cleared.
		var s Scalar
		s.Inverse(&w)
		w.SetZero()
		return &Signature{R: r, S: s}, nil
	}

	return nil, signatureError(ErrNonceExhaustion,
		"exhausted retry budget without producing an acceptable signature")
}
