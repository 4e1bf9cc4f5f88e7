// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"testing"
)

func keyFromUint64(v uint64) *PrivateKey {
	var d Scalar
	d.SetUint64(v)
	return NewPrivateKey(&d)
}

// TestSignVector5 checks V5 from the reference test vectors: signing
// pedersen_chain([10]) under d = 10 succeeds and verifies.
func TestSignVector5(t *testing.T) {
	priv := keyFromUint64(10)
	pub := priv.PubKey()

	h, err := computeHashOnElements([]Felt{feltFromUint64(10)})
	if err != nil {
		t.Fatalf("computeHashOnElements: %v", err)
	}

	sig, err := sign(priv.Scalar(), h, nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if !Verify(pub, h, sig) {
		t.Fatal("Verify should accept a freshly produced signature")
	}
}

// TestSignVector6 checks V6: signing a message hash equal to 2^251 fails
// with ErrMessageOutOfRange.
func TestSignVector6(t *testing.T) {
	priv := keyFromUint64(10)

	var h Felt
	h.SetBigInt(twoPow251)

	_, err := sign(priv.Scalar(), h, nil)
	if !isErrKind(err, ErrMessageOutOfRange) {
		t.Fatalf("expected ErrMessageOutOfRange, got %v", err)
	}
}

// TestSignVerifyRoundTrip covers spec property P1 across several distinct
// keys and messages.
func TestSignVerifyRoundTrip(t *testing.T) {
	for i := uint64(1); i < 15; i++ {
		priv := keyFromUint64(i)
		pub := priv.PubKey()

		h, err := computeHashOnElements([]Felt{feltFromUint64(i), feltFromUint64(i * i)})
		if err != nil {
			t.Fatalf("computeHashOnElements: %v", err)
		}

		sig, err := sign(priv.Scalar(), h, nil)
		if err != nil {
			t.Fatalf("sign (i=%d): %v", i, err)
		}

		if !Verify(pub, h, sig) {
			t.Fatalf("Verify failed to accept a valid signature (i=%d)", i)
		}
	}
}

// TestSignDeterministic covers spec property P2's signer half: signing the
// same (d, h, seed) twice produces identical signatures.
func TestSignDeterministic(t *testing.T) {
	priv := keyFromUint64(7)
	h, err := computeHashOnElements([]Felt{feltFromUint64(1), feltFromUint64(2)})
	if err != nil {
		t.Fatalf("computeHashOnElements: %v", err)
	}

	sig1, err := sign(priv.Scalar(), h, nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig2, err := sign(priv.Scalar(), h, nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if !sig1.R.Equal(&sig2.R) || !sig1.S.Equal(&sig2.S) {
		t.Fatal("sign should be deterministic for identical (d, h, seed)")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv := keyFromUint64(55)
	pub := priv.PubKey()

	h, err := computeHashOnElements([]Felt{feltFromUint64(55)})
	if err != nil {
		t.Fatalf("computeHashOnElements: %v", err)
	}

	sig, err := sign(priv.Scalar(), h, nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	var one Scalar
	one.SetUint64(1)
	tampered := *sig
	tampered.R.Add(&tampered.R, &one)

	if Verify(pub, h, &tampered) {
		t.Fatal("Verify should reject a tampered r value")
	}
}

func TestSignerHighLevelAPI(t *testing.T) {
	signer, err := NewKey()
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}

	priv, err := signer.GetPrivateKey()
	if err != nil {
		t.Fatalf("GetPrivateKey: %v", err)
	}

	reloaded, err := LoadKey(priv[:])
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}

	pub1, err := signer.GetPublicKey()
	if err != nil {
		t.Fatalf("GetPublicKey: %v", err)
	}
	pub2, err := reloaded.GetPublicKey()
	if err != nil {
		t.Fatalf("GetPublicKey (reloaded): %v", err)
	}
	if !pub1.X.Equal(&pub2.X) || !pub1.Y.Equal(&pub2.Y) {
		t.Fatal("reloading a serialized private key should reproduce the same public key")
	}

	xs := []Felt{feltFromUint64(1), feltFromUint64(2), feltFromUint64(3)}
	sig, err := signer.Sign(xs)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	h, err := signer.HashFelts(xs)
	if err != nil {
		t.Fatalf("HashFelts: %v", err)
	}
	if !Verify(pub1, h, sig) {
		t.Fatal("Verify should accept the Signer-produced signature")
	}
}

func TestSignerNoKeyErrors(t *testing.T) {
	var signer Signer
	if _, err := signer.GetPrivateKey(); !isErrKind(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey from GetPrivateKey, got %v", err)
	}
	if _, err := signer.GetPublicKey(); !isErrKind(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey from GetPublicKey, got %v", err)
	}
	if _, err := signer.Sign([]Felt{feltFromUint64(1)}); !isErrKind(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey from Sign, got %v", err)
	}
}

func TestSignerZero(t *testing.T) {
	priv := keyFromUint64(77)
	b := priv.Serialize()

	signer, err := LoadKey(b[:])
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}

	signer.Zero()

	if _, err := signer.GetPrivateKey(); !isErrKind(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey from GetPrivateKey after Zero, got %v", err)
	}
	if _, err := signer.GetPublicKey(); !isErrKind(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey from GetPublicKey after Zero, got %v", err)
	}

	// Zero on a Signer with no loaded key is a harmless no-op.
	signer.Zero()
}

func TestHashBytes(t *testing.T) {
	var signer Signer
	h1, err := signer.HashBytes([]byte("hello starknet"))
	if err != nil {
		t.Fatalf("HashBytes: %v", err)
	}
	h2, err := signer.HashBytes([]byte("hello starknet"))
	if err != nil {
		t.Fatalf("HashBytes: %v", err)
	}
	if !h1.Equal(&h2) {
		t.Fatal("HashBytes should be deterministic")
	}

	h3, err := signer.HashBytes([]byte("different message"))
	if err != nil {
		t.Fatalf("HashBytes: %v", err)
	}
	if h1.Equal(&h3) {
		t.Fatal("HashBytes of distinct messages should (overwhelmingly likely) differ")
	}

	if _, err := signer.HashBytes(nil); !isErrKind(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}
