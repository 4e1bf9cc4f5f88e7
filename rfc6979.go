// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// shiftBits is block_size - nElementBitsECDSA - 1, the number of low bits
// discarded from each 256-bit HMAC-DRBG output word by the Starkware
// RFC 6979 variant. The DRBG always emits 256 bits, one per SHA-256 block,
// while the STARK curve's order fits in 252 bits; this matches the
// Starkware reference's "shifting_factor" rather than a bit length derived
// from the curve order directly.
const shiftBits = 4

// generateK derives a deterministic nonce for signing msgHash under key,
// following the Starkware variant of RFC 6979: rather than RFC 6979's
// classic int2octets/bits2octets priming, the HMAC-DRBG is seeded directly
// from the 32-byte big-endian encodings of key and msgHash and the 8-byte
// big-endian encoding of an optional seed counter, and each 256-bit DRBG
// word is right-shifted by shiftBits
// before being checked against the group order.
//
// order is the upper bound the returned scalar must satisfy (0 < k <
// order); callers pass the STARK curve's group order n.
func generateK(order *big.Int, key, msgHash *Scalar, seed *uint64) Scalar {
	keyBytes := scalarToBEBytes(key)
	defer zeroizeBytes(keyBytes[:])
	msgBytes := scalarToBEBytes(msgHash)

	var seedBytes []byte
	if seed != nil {
		seedBytes = make([]byte, 8)
		putUint64BE(seedBytes, *seed)
	}

	drbg := newHMACDRBG(keyBytes[:], msgBytes[:], seedBytes)

	for {
		candidate := new(big.Int).SetBytes(drbg.generate())
		candidate.Rsh(candidate, shiftBits)

		if candidate.Sign() > 0 && candidate.Cmp(order) < 0 {
			var k Scalar
			k.SetBigInt(candidate)
			return k
		}
	}
}

// hmacDRBG is a minimal HMAC_DRBG (NIST SP 800-90A, SHA-256) instantiated
// directly from an (entropy, nonce, personalization) triple, with no
// reseed support: the signer only ever needs a small, bounded number of
// generate() calls per signature attempt.
type hmacDRBG struct {
	k, v []byte
}

func newHMACDRBG(entropy, nonce, personalization []byte) *hmacDRBG {
	d := &hmacDRBG{
		k: make([]byte, sha256.Size),
		v: make([]byte, sha256.Size),
	}
	for i := range d.v {
		d.v[i] = 0x01
	}

	d.update(entropy, nonce, personalization, 0x00)
	d.update(entropy, nonce, personalization, 0x01)
	return d
}

// update implements the HMAC_DRBG update step, folding in the fixed seed
// material together with a 0x00 or 0x01 marker byte.
func (d *hmacDRBG) update(entropy, nonce, personalization []byte, marker byte) {
	mac := hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	mac.Write([]byte{marker})
	mac.Write(entropy)
	mac.Write(nonce)
	mac.Write(personalization)
	d.k = mac.Sum(nil)

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)
}

// generate produces one 32-byte HMAC_DRBG output block and advances V.
func (d *hmacDRBG) generate() []byte {
	mac := hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	out := make([]byte, len(d.v))
	copy(out, d.v)

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x00})
	d.k = mac.Sum(nil)

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	return out
}

// scalarToBEBytes serializes a Scalar as 32 big-endian bytes. The
// HMAC-DRBG seed material is big-endian per the Starkware reference
// implementation; this is unrelated to, and distinct from, this package's
// little-endian wire format used everywhere else.
func scalarToBEBytes(s *Scalar) [feltByteLen]byte {
	le := scalarToLEBytes(s)
	var be [feltByteLen]byte
	for i, b := range le {
		be[feltByteLen-1-i] = b
	}
	return be
}

func putUint64BE(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// zeroizeBytes overwrites b with zeros. Used to scrub the local copy of the
// private key's byte encoding once it has been folded into the DRBG state.
func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
