// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import "math/big"

// jacobianPoint is a STARK curve point in Jacobian projective coordinates:
// it represents the affine point (X/Z^2, Y/Z^3).  The point at infinity is
// represented by Z == 0, in which case X and Y are not meaningful.
//
// Jacobian coordinates let scalarMultJacobian avoid a field inversion per
// addition/doubling step; only the final conversion back to affine pays for
// one.
type jacobianPoint struct {
	x, y, z Felt
}

// infinity reports whether p is the point at infinity.
func (p *jacobianPoint) infinity() bool {
	return p.z.IsZero()
}

// fromAffine lifts an affine point into Jacobian coordinates with Z = 1.
func fromAffine(a *affinePoint) jacobianPoint {
	var one Felt
	one.SetOne()
	return jacobianPoint{x: a.x, y: a.y, z: one}
}

// toAffine converts p back to affine coordinates.  It returns (0, 0) for the
// point at infinity; callers that need to distinguish infinity from the
// (extremely unlikely) affine point (0, 0) must check infinity() first.
func (p *jacobianPoint) toAffine() affinePoint {
	if p.infinity() {
		return affinePoint{}
	}

	var zInv, zInv2, zInv3, x, y Felt
	zInv.Inverse(&p.z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	x.Mul(&p.x, &zInv2)
	y.Mul(&p.y, &zInv3)
	return affinePoint{x: x, y: y}
}

// doubleJacobian doubles p.
//
// The formula below is the general a-dependent Jacobian doubling (EFD
// dbl-2009-l). Every curve-coefficient-independent term carries over from a
// secp256k1-style curve unchanged; the STARK curve's alpha = 1 term (which
// secp256k1's alpha = 0 lets a generic doubling routine drop) is added back
// into M.
func doubleJacobian(p *jacobianPoint) jacobianPoint {
	if p.infinity() || p.y.IsZero() {
		return jacobianPoint{}
	}

	var xx, yy, yyyy, zz, zz2, m, s, t, x3, y3, z3, tmp, tmp2 Felt

	xx.Square(&p.x)
	yy.Square(&p.y)
	yyyy.Square(&yy)
	zz.Square(&p.z)

	// S = 4*X*YY, computed as 2*((X+YY)^2 - XX - YYYY).
	tmp.Add(&p.x, &yy)
	tmp.Square(&tmp)
	tmp.Sub(&tmp, &xx)
	tmp.Sub(&tmp, &yyyy)
	s.Double(&tmp)

	// M = 3*XX + alpha*ZZ^2; alpha is 1 for the STARK curve, so the
	// second term reduces to Z^4.
	zz2.Square(&zz)
	m.Double(&xx)
	m.Add(&m, &xx)
	m.Add(&m, &zz2)

	// X3 = M^2 - 2*S.
	t.Square(&m)
	tmp.Double(&s)
	x3.Sub(&t, &tmp)

	// Y3 = M*(S - X3) - 8*YYYY.
	tmp.Sub(&s, &x3)
	y3.Mul(&m, &tmp)
	tmp2.Double(&yyyy)
	tmp2.Double(&tmp2)
	tmp2.Double(&tmp2)
	y3.Sub(&y3, &tmp2)

	// Z3 = (Y+Z)^2 - YY - ZZ.
	tmp.Add(&p.y, &p.z)
	tmp.Square(&tmp)
	tmp.Sub(&tmp, &yy)
	z3.Sub(&tmp, &zz)

	return jacobianPoint{x: x3, y: y3, z: z3}
}

// addJacobian adds p1 and p2.
//
// The chord-and-tangent addition law (EFD add-2007-bl) never involves the
// curve's a coefficient, so unlike doubleJacobian this formula carries over
// from a secp256k1-style curve completely unchanged.
func addJacobian(p1, p2 *jacobianPoint) jacobianPoint {
	if p1.infinity() {
		return *p2
	}
	if p2.infinity() {
		return *p1
	}

	var z1z1, z2z2, u1, u2, s1, s2 Felt
	z1z1.Square(&p1.z)
	z2z2.Square(&p2.z)
	u1.Mul(&p1.x, &z2z2)
	u2.Mul(&p2.x, &z1z1)
	s1.Mul(&p1.y, &z2z2)
	s1.Mul(&s1, &p2.z)
	s2.Mul(&p2.y, &z1z1)
	s2.Mul(&s2, &p1.z)

	if u1.Equal(&u2) {
		if s1.Equal(&s2) {
			return doubleJacobian(p1)
		}
		// u1 == u2 but s1 != s2: p1 == -p2, the sum is infinity.
		return jacobianPoint{}
	}

	var h, hh, i, j, r, v, x3, y3, z3, tmp, tmp2 Felt
	h.Sub(&u2, &u1)
	hh.Square(&h)
	i.Double(&hh)
	i.Double(&i)
	j.Mul(&h, &i)
	tmp.Sub(&s2, &s1)
	r.Double(&tmp)
	v.Mul(&u1, &i)

	// X3 = r^2 - J - 2*V.
	x3.Square(&r)
	x3.Sub(&x3, &j)
	tmp2.Double(&v)
	x3.Sub(&x3, &tmp2)

	// Y3 = r*(V - X3) - 2*S1*J.
	tmp.Sub(&v, &x3)
	y3.Mul(&r, &tmp)
	tmp2.Mul(&s1, &j)
	tmp2.Double(&tmp2)
	y3.Sub(&y3, &tmp2)

	// Z3 = ((Z1+Z2)^2 - Z1Z1 - Z2Z2)*H.
	tmp.Add(&p1.z, &p2.z)
	tmp.Square(&tmp)
	tmp.Sub(&tmp, &z1z1)
	tmp.Sub(&tmp, &z2z2)
	z3.Mul(&tmp, &h)

	return jacobianPoint{x: x3, y: y3, z: z3}
}

// scalarMultJacobian multiplies the affine point p by the non-negative
// integer k using left-to-right double-and-add.
//
// k is accepted as a raw *big.Int rather than a Scalar: the Pedersen split
// multiplies curve points by the low/high halves of an Fq element, and
// neither half is a group-order (Fr) quantity. Routing them through Scalar
// would silently (and here harmlessly, since both halves are far smaller
// than Fr's modulus, but misleadingly) reduce them mod the group order.
//
// This is a plain double-and-add, not a constant-time ladder: it branches
// on k's bits. This is a known, documented risk rather than an oversight;
// see the carried-over constant-time Open Question in DESIGN.md.
func scalarMultJacobian(k *big.Int, p *affinePoint) jacobianPoint {
	var result jacobianPoint // point at infinity
	if k.Sign() == 0 {
		return result
	}

	base := fromAffine(p)
	for bit := k.BitLen() - 1; bit >= 0; bit-- {
		result = doubleJacobian(&result)
		if k.Bit(bit) == 1 {
			result = addJacobian(&result, &base)
		}
	}
	return result
}

// scalarBaseMultJacobian multiplies the curve generator by k.
func scalarBaseMultJacobian(k *big.Int) jacobianPoint {
	gen := pedersenConstants().generator
	return scalarMultJacobian(k, &gen)
}

// addAffine adds two affine points and returns the affine sum, routing the
// computation through Jacobian coordinates. It is the building block for
// pedersenHash's running sum of scaled constant points.
func addAffine(a, b *affinePoint) affinePoint {
	j1 := fromAffine(a)
	j2 := fromAffine(b)
	sum := addJacobian(&j1, &j2)
	return sum.toAffine()
}

// isOnCurve reports whether (x, y) satisfies y^2 = x^3 + alpha*x + beta. It
// is used by tests that sanity-check the hard-coded constants and derived
// points.
func isOnCurve(x, y *Felt) bool {
	c := pedersenConstants()

	var lhs, rhs, tmp Felt
	lhs.Square(y)

	rhs.Square(x)
	rhs.Mul(&rhs, x)
	tmp.Mul(&c.alpha, x)
	rhs.Add(&rhs, &tmp)
	rhs.Add(&rhs, &c.beta)

	return lhs.Equal(&rhs)
}
