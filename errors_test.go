// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starksig

import (
	"errors"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := signatureError(ErrOverflow, "value too large")

	if !errors.Is(err, ErrOverflow) {
		t.Fatal("errors.Is should match against the wrapped ErrorKind")
	}
	if errors.Is(err, ErrIncorrectLength) {
		t.Fatal("errors.Is should not match a different ErrorKind")
	}

	other := signatureError(ErrOverflow, "a different message")
	if !errors.Is(err, other) {
		t.Fatal("errors.Is should match another Error with the same kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := signatureError(ErrEmptyData, "no elements")
	if got := errors.Unwrap(err); got != ErrEmptyData {
		t.Fatalf("Unwrap should return the underlying ErrorKind, got %v", got)
	}
}
