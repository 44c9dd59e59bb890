// Package tween interpolates graphical values for custom animations. It
// converts typed values — transforms, points, rectangles, sizes, colors,
// scalars, edge insets — into a uniform numeric vector representation, blends
// vectors linearly between a start and an end state, and converts the result
// back into a value of the original type.
//
// # Vectorize, blend, reconstruct
//
// Every supported type implements [Interpolatable]: it declares the fixed
// number of numeric slots its encoding occupies ([Interpolatable.Components])
// and encodes itself as a [Vector] ([Interpolatable.Vectorize]). A Vector
// pairs the numeric values with a reconstruction function bound to the type
// that produced them, so a blending engine can operate on heterogeneous
// values without knowing their types: overwrite [Vector.Values] with a blend
// of two encodings, then call [Vector.Interpolatable] to get the typed value
// back.
//
// The field order of each encoding is a contract. Rectangles, for example,
// always encode as [origin.x, origin.y, width, height]; colors encode their
// native model's channels with alpha last, grayscale padding to four slots
// with trailing zeros. See the Vectorize documentation on each type.
//
// Reconstruction validates lengths: a sequence whose length does not match
// the type's component count yields an [ErrArityMismatch] rather than reading
// out of bounds.
//
// # Driving an animation
//
// The package is deliberately free of timers and easing curves. An animation
// driver samples progress however it likes — [Lerp] blends two vectors at a
// progress value, [Interpolate] does the full round trip for one sample, and
// [Tween] holds a start/end pair for repeated sampling, optionally warping
// progress through an easing function of the form func(float64) float64.
// Progress is conventionally in [0, 1] but is never clamped; values outside
// that range extrapolate.
//
// Everything here is pure, synchronous value transformation. There is no
// shared state beyond the vectors a caller chooses to retain; concurrent
// animations must each own their own [Vector] or [Tween].
package tween
