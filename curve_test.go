// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"math/big"
	"testing"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	g := pedersenConstants().generator
	if !isOnCurve(&g.x, &g.y) {
		t.Fatal("hard-coded generator does not satisfy the curve equation")
	}
}

func TestPedersenConstantsAreOnCurve(t *testing.T) {
	c := pedersenConstants()
	points := []struct {
		name string
		p    affinePoint
	}{
		{"shift", c.shift},
		{"p0", c.p0},
		{"p1", c.p1},
		{"p2", c.p2},
		{"p3", c.p3},
	}
	for _, pt := range points {
		if !isOnCurve(&pt.p.x, &pt.p.y) {
			t.Fatalf("%s is not on the curve", pt.name)
		}
	}
}

func TestScalarMultIdentities(t *testing.T) {
	g := pedersenConstants().generator

	zero := scalarMultJacobian(big.NewInt(0), &g)
	if !zero.infinity() {
		t.Fatal("0*G should be the point at infinity")
	}

	one := scalarMultJacobian(big.NewInt(1), &g).toAffine()
	if !one.x.Equal(&g.x) || !one.y.Equal(&g.y) {
		t.Fatal("1*G should equal G")
	}

	doubled := doubleJacobian(&jacobianPoint{x: g.x, y: g.y, z: feltOne()})
	two := scalarMultJacobian(big.NewInt(2), &g)
	doubledAffine := doubled.toAffine()
	twoAffine := two.toAffine()
	if !doubledAffine.x.Equal(&twoAffine.x) || !doubledAffine.y.Equal(&twoAffine.y) {
		t.Fatal("doubleJacobian(G) should equal 2*G via scalarMultJacobian")
	}
}

func TestScalarMultMatchesRepeatedAddition(t *testing.T) {
	g := pedersenConstants().generator
	base := fromAffine(&g)

	var sum jacobianPoint
	for i := 0; i < 7; i++ {
		sum = addJacobian(&sum, &base)
	}

	want := scalarMultJacobian(big.NewInt(7), &g)
	sumAffine := sum.toAffine()
	wantAffine := want.toAffine()
	if !sumAffine.x.Equal(&wantAffine.x) || !sumAffine.y.Equal(&wantAffine.y) {
		t.Fatal("7*G via repeated addition should match scalarMultJacobian")
	}
}

func TestAddJacobianInfinityIdentity(t *testing.T) {
	g := pedersenConstants().generator
	base := fromAffine(&g)
	var inf jacobianPoint

	sum := addJacobian(&inf, &base)
	sumAffine := sum.toAffine()
	if !sumAffine.x.Equal(&g.x) || !sumAffine.y.Equal(&g.y) {
		t.Fatal("infinity + G should equal G")
	}

	sum = addJacobian(&base, &inf)
	sumAffine = sum.toAffine()
	if !sumAffine.x.Equal(&g.x) || !sumAffine.y.Equal(&g.y) {
		t.Fatal("G + infinity should equal G")
	}
}

func TestAddJacobianOppositePointsIsInfinity(t *testing.T) {
	g := pedersenConstants().generator
	base := fromAffine(&g)

	var neg Felt
	neg.Neg(&g.y)
	negPoint := jacobianPoint{x: g.x, y: neg, z: feltOne()}

	sum := addJacobian(&base, &negPoint)
	if !sum.infinity() {
		t.Fatal("G + (-G) should be the point at infinity")
	}
}

func feltOne() Felt {
	var one Felt
	one.SetOne()
	return one
}
