// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"crypto/elliptic"
	"sync"
)

// CurveParams holds the STARK curve's domain parameters in the same shape
// as crypto/elliptic.CurveParams, for embedders that want to log or
// cross-check them against an external reference without linking against
// this package's arithmetic.
//
// This package deliberately does not implement the elliptic.Curve
// interface: that interface's IsOnCurve/Add/ScalarMult contract is built
// around curves with a = -3 or a = 0, and coercing the STARK curve's
// alpha = 1 group law through it would invite exactly the kind of subtle
// mismatch this package's own curve.go works hard to avoid. Callers needing
// STARK curve arithmetic should use Signer, pedersenHash, and the
// jacobianPoint helpers directly.
type CurveParams struct {
	*elliptic.CurveParams
}

var (
	curveParamsOnce sync.Once
	stdParams       CurveParams
)

func initCurveParams() {
	c := pedersenConstants()
	stdParams.CurveParams = &elliptic.CurveParams{
		P:       fqModulus,
		N:       frModulus,
		B:       feltBigInt(&c.beta),
		Gx:      feltBigInt(&c.generator.x),
		Gy:      feltBigInt(&c.generator.y),
		BitSize: fqModulus.BitLen(),
		Name:    "stark-curve",
	}
}

// Params returns the STARK curve's domain parameters, computing them on
// first use.
func Params() *CurveParams {
	curveParamsOnce.Do(initCurveParams)
	return &stdParams
}
