// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"crypto"
	"io"
)

// SignOptions is the crypto.SignerOpts implementation accepted by
// PrivateKey.Sign. The hash function it names is never actually invoked:
// a STARK curve digest is produced by HashBytes's Pedersen-chain scheme,
// not by a crypto.Hash. It exists solely to satisfy the crypto.Signer
// interface's opts parameter.
type SignOptions struct {
	Hash crypto.Hash
}

// HashFunc satisfies crypto.SignerOpts.
func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Sign implements crypto.Signer: it hashes the provided digest with
// HashBytes and produces a deterministic Starkware signature, serialized as
// the 64-byte little-endian (r, s) encoding used throughout this package.
//
// Unlike textbook crypto.Signer implementations, digest here is raw
// message bytes rather than a pre-computed hash: the STARK curve signer
// operates over Pedersen-chain hashes, not over arbitrary externally
// produced digests, so folding them in is this adapter's job.
func (p *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	h, err := hashBytesToFelt(digest)
	if err != nil {
		return nil, err
	}

	sig, err := sign(p.d, h, nil)
	if err != nil {
		return nil, err
	}

	out := sig.Serialize()
	return out[:], nil
}
