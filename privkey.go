// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"crypto/rand"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = feltByteLen

// PrivateKey provides facilities for working with STARK curve private keys:
// serializing and parsing them, and computing their associated public key.
type PrivateKey struct {
	d Scalar
}

// PublicKey is a point on the STARK curve, expressed in affine coordinates.
type PublicKey struct {
	X, Y Felt
}

// NewPrivateKey instantiates a new private key from a scalar.
func NewPrivateKey(d *Scalar) *PrivateKey {
	return &PrivateKey{d: *d}
}

// PrivKeyFromBytes parses a private key from its 32-byte little-endian
// encoding, as produced by Serialize. It rejects inputs that are not
// exactly 32 bytes or that do not encode a value strictly less than the
// curve order.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	d, err := bytesToScalar(b)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(&d), nil
}

// GeneratePrivateKey returns a private key suitable for use with the STARK
// curve, drawing uniform 32-byte strings from crypto/rand and rejecting any
// draw that does not decode to a canonical scalar.
func GeneratePrivateKey() (*PrivateKey, error) {
	var buf [feltByteLen]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, signatureError(ErrIO, "failed to read randomness: "+err.Error())
		}

		d, err := bytesToScalar(buf[:])
		zeroizeBytes(buf[:])
		if err != nil {
			continue
		}
		if d.IsZero() {
			continue
		}
		return NewPrivateKey(&d), nil
	}
}

// PubKey computes and returns the public key corresponding to this private
// key.
func (p *PrivateKey) PubKey() *PublicKey {
	result := scalarBaseMultJacobian(scalarBigInt(&p.d))
	affine := result.toAffine()
	return &PublicKey{X: affine.x, Y: affine.y}
}

// Serialize returns the private key as its 32-byte little-endian encoding.
func (p *PrivateKey) Serialize() [PrivKeyBytesLen]byte {
	return scalarToLEBytes(&p.d)
}

// Scalar returns the private key's underlying Fr element.
func (p *PrivateKey) Scalar() Scalar {
	return p.d
}

// Zero clears the private key's underlying scalar from memory. Per this
// package's secret-material handling policy, callers that are done with a
// PrivateKey should call Zero before letting it go out of scope; Signer.Zero
// does this automatically for a Signer's loaded key.
func (p *PrivateKey) Zero() {
	p.d.SetZero()
}
