package tween

import (
	"errors"
	"fmt"
)

// ErrUnboundVector is returned when reconstructing from a [Vector] that was
// not produced by a Vectorize call and therefore has no reconstruction
// function bound to it.
var ErrUnboundVector = errors.New("vector has no bound reconstruction function")

// ErrTransparentColor is returned when converting a fully transparent
// [color.Color], whose premultiplied channels cannot be recovered.
var ErrTransparentColor = errors.New("cannot convert fully transparent color")

// ErrArityMismatch indicates that a numeric sequence has the wrong number of
// entries for the type it is supposed to encode.
type ErrArityMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d values, got %d", e.Expected, e.Actual)
}

// ErrUnsupportedColorModel indicates a [Color] whose model is outside the
// supported RGBA/grayscale/HSB set and that can therefore not be encoded.
type ErrUnsupportedColorModel struct {
	Model ColorModel
}

func (e *ErrUnsupportedColorModel) Error() string {
	return fmt.Sprintf("unsupported color model: %d", uint8(e.Model))
}

// checkArity validates the length of a numeric sequence against the arity the
// decoding type requires. Every FromValues function goes through here; values
// are never indexed before the length has been checked.
func checkArity(expected, actual int) error {
	if actual != expected {
		return &ErrArityMismatch{Expected: expected, Actual: actual}
	}
	return nil
}
