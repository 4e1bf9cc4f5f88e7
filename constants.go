// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"math/big"
	"sync"
)

// Bit-width constants from the Starkware reference implementation.
const (
	// lowPartBits is the number of low bits of a field element's
	// big-endian representative that pedersenHash treats as the "low"
	// half of the Pedersen split.  The remaining (high) bits are taken
	// as a separate scalar multiplier.
	lowPartBits = 248

	// nElementBitsECDSA is the acceptance bound used throughout the
	// signer: signable hashes must fall in [0, 2^nElementBitsECDSA), and
	// the r and w values of a signature in [1, 2^nElementBitsECDSA).
	nElementBitsECDSA = 251
)

// twoPow251 decimal string matches spec.md's literal TWO_POW_251 constant.
const twoPow251Dec = "3618502788666131106986593281521497120414687020801267626233049500247285301248"

// twoPow251 is 2^251, the acceptance bound shared by signable hashes and by
// the signer's r and w candidates.
var twoPow251 = mustBigFromDecimal(twoPow251Dec)

// affinePoint is a fixed point on the STARK curve expressed in affine
// coordinates over Fq.  It is used only for the hard-coded Pedersen
// constants and the curve generator; points produced by arithmetic flow
// through jacobianPoint instead.
type affinePoint struct {
	x, y Felt
}

// Pedersen hash constants, matching the Starkware reference (derived from
// the digits of pi).  See the Starkware pedersen_params reference data;
// these literal coordinates must match bit-for-bit or every hash produced
// by this package will silently diverge from the Starknet verifier.
const (
	shiftPointXDec = "2089986280348253421170679821480865132823066470938446095505822317253594081284"
	shiftPointYDec = "1713931329540660377023406109199410414810705867260802078187082345529207694986"

	p0XDec = "996781205833008774514500082376783249102396023663454813447423147977397232763"
	p0YDec = "1668503676786377725805489344771023921079126552019160156920634619255970485781"

	p1XDec = "2251563274489750535117886426533222435294046428347329203627021249169616184184"
	p1YDec = "1798716007562728905295480679789526322175868328062420237419143593021674992973"

	p2XDec = "2138414695194151160943305727036575959195309218611738193261179310511854807447"
	p2YDec = "113410276730064486255102093846540133784865286929052426931474106396135072156"

	p3XDec = "2379962749567351885752724891227938183011949129833673362440656643086021394946"
	p3YDec = "776496453633298175483985398648758586525933525923452404919106959517294359493"

	// genXDec, genYDec are the coordinates of G, the prime-subgroup
	// generator used for public key derivation and signing.
	genXDec = "874739451078007766457464989774322083649278607533249481151382481072868806602"
	genYDec = "152666792071518830868575557812948353041420400780739481342941381225525861407"

	// alphaDec, betaDec are the short-Weierstrass coefficients of the
	// STARK curve: y^2 = x^3 + alpha*x + beta (mod Fq).
	alphaDec = "1"
	betaDec  = "3141592653589793238462643383279502884197169399375105820974944592307816406665"
)

// pedersenConstants holds the five fixed points used by pedersenHash, lazily
// initialized on first use so that importers who never call a hashing or
// signing routine never pay for the conversions.
type pedersenConstantsT struct {
	shift, p0, p1, p2, p3 affinePoint
	generator             affinePoint
	alpha, beta           Felt
}

var (
	pedersenOnce sync.Once
	pc           pedersenConstantsT
)

func initPedersenConstants() {
	pc.shift = newAffine(shiftPointXDec, shiftPointYDec)
	pc.p0 = newAffine(p0XDec, p0YDec)
	pc.p1 = newAffine(p1XDec, p1YDec)
	pc.p2 = newAffine(p2XDec, p2YDec)
	pc.p3 = newAffine(p3XDec, p3YDec)
	pc.generator = newAffine(genXDec, genYDec)
	pc.alpha.SetBigInt(mustBigFromDecimal(alphaDec))
	pc.beta.SetBigInt(mustBigFromDecimal(betaDec))
}

// pedersenConstants returns the process-wide Pedersen and curve constants,
// initializing them on first use.  The returned struct is never mutated
// after initialization.
func pedersenConstants() *pedersenConstantsT {
	pedersenOnce.Do(initPedersenConstants)
	return &pc
}

// newAffine builds an affinePoint from base-10 literal coordinates.  It is
// only used for initialization purposes and panics on malformed literals so
// that a typo in the source is caught immediately rather than silently
// producing a wrong curve point.
func newAffine(xDec, yDec string) affinePoint {
	var p affinePoint
	p.x.SetBigInt(mustBigFromDecimal(xDec))
	p.y.SetBigInt(mustBigFromDecimal(yDec))
	return p
}

// mustBigFromDecimal converts the passed base-10 string into a big integer
// pointer and will panic if there is an error.  This is only provided for
// the hard-coded constants so errors in the source code can be detected; it
// will only (and must only) be called for initialization purposes.
func mustBigFromDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("starksig: invalid decimal literal in source: " + s)
	}
	return v
}
