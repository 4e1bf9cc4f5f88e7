// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import "math/big"

// pedersenHash computes the two-element Starkware Pedersen hash of x and y.
//
// The construction runs a fixed shift point through four scaled additions
// (splitting each of x and y into a low 248-bit half and a high 4-bit half,
// each multiplied by its own hard-coded constant point) and returns the
// resulting point's x coordinate. This mirrors process_single_element /
// pedersen_hash in the Starkware reference implementation.
func pedersenHash(x, y Felt) (Felt, error) {
	c := pedersenConstants()

	acc := c.shift
	acc = processSingleElement(&x, &acc, &c.p0, &c.p1)
	acc = processSingleElement(&y, &acc, &c.p2, &c.p3)

	if !isOnCurve(&acc.x, &acc.y) {
		// Unreachable for honestly-generated constants; guards against a
		// corrupted constant table rather than a caller error.
		return Felt{}, signatureError(ErrHashOutOfRange,
			"pedersen accumulator left the curve")
	}

	if !isBelowTwoPow251(&acc.x) {
		return Felt{}, signatureError(ErrHashOutOfRange,
			"pedersen hash output is not below 2^251")
	}
	return acc.x, nil
}

// processSingleElement folds one field element into the running Pedersen
// accumulator by splitting it into a low 248-bit half and a high 4-bit half
// and adding low*lowPoint + high*highPoint to acc.
func processSingleElement(e *Felt, acc, lowPoint, highPoint *affinePoint) affinePoint {
	v := feltBigInt(e)

	low := new(big.Int).And(v, lowMask)
	high := new(big.Int).Rsh(v, lowPartBits)

	lowTerm := scalarMultJacobian(low, lowPoint)
	highTerm := scalarMultJacobian(high, highPoint)

	// A zero half yields the point at infinity, which has no affine form
	// and contributes nothing to the sum.
	sum := *acc
	if !lowTerm.infinity() {
		lowAffine := lowTerm.toAffine()
		sum = addAffine(&sum, &lowAffine)
	}
	if !highTerm.infinity() {
		highAffine := highTerm.toAffine()
		sum = addAffine(&sum, &highAffine)
	}
	return sum
}

// lowMask is (1 << lowPartBits) - 1, the mask isolating the low 248 bits of
// a field element's integer representative.
var lowMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), lowPartBits), big.NewInt(1))

// computeHashOnElements chains pedersenHash over xs, folding in a final
// length element so that, e.g., hashing [a, b, c] cannot collide with
// hashing [a, b] followed by an element equal to c's hash. This mirrors
// compute_hash_on_elements in the Starkware reference implementation.
func computeHashOnElements(xs []Felt) (Felt, error) {
	if len(xs) == 0 {
		return Felt{}, signatureError(ErrEmptyData,
			"cannot hash an empty element sequence")
	}

	var acc Felt // starts at 0
	for _, x := range xs {
		h, err := pedersenHash(acc, x)
		if err != nil {
			return Felt{}, err
		}
		acc = h
	}

	var length Felt
	length.SetUint64(uint64(len(xs)))
	return pedersenHash(acc, length)
}
