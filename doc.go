// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package starksig implements the Pedersen hash, RFC 6979 deterministic nonce
construction, and the Starkware ECDSA-like signature scheme used by the
Starknet L2 platform's STARK-friendly elliptic curve.

This package provides a pure Go implementation of signing and public-key
derivation for the STARK curve, a short-Weierstrass curve over a 252-bit
prime field distinct from secp256k1 and the NIST curves. The base field
(Fq) and scalar field (Fr) element types are supplied by
github.com/consensys/gnark-crypto's ecc/stark-curve subpackages; this
package builds Jacobian-coordinate group arithmetic, the Pedersen hash,
RFC 6979 nonce generation, and the Starkware signer on top of them.

An overview of the features provided by this package are as follows:

  - Private key generation, loading, and serialization as raw 32-byte
    little-endian integers
  - Public key derivation via scalar multiplication of the curve generator
  - Pedersen hashing of a single pair of field elements and of arbitrary
    length sequences of field elements, with a length-suffix step that
    defeats hash-chain collisions
  - Deterministic nonce generation per RFC 6979, adapted to the STARK
    curve's 251-bit acceptance bound via an HMAC-DRBG keyed by a
    (private key, message hash, seed) personalization triple
  - The Starkware ECDSA-like signer, whose acceptance predicates on
    candidate r, w, and s values differ from textbook ECDSA
  - A reference, non-production Verify used only to cross-check Sign in
    this package's own tests

Byte-range validation, zeroization of secret material, and the error
taxonomy shared by all of the above are also provided. Foreign-ABI
wrappers, on-chain verification, and non-raw key serialization formats
are explicitly out of scope.
*/
package starksig
