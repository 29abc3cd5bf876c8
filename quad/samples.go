package quad

// SimpsonSamples approximates the integral of a discretized function given as
// paired samples x, y with possibly non-uniform spacing. x must be strictly
// monotonic; x and y must have equal length >= 3. Violations are undefined
// behavior and are not checked.
//
// Samples are consumed in consecutive triples {i, i+1, i+2} for
// i = 0, 2, 4, ... Each triple spans [x[i], x[i+2]]; the function value at the
// true midpoint (x[i]+x[i+2])/2 — which generally differs from x[i+1] under
// non-uniform spacing — is interpolated by the quadratic through the three
// samples before the 1/3 rule is applied.
//
// An even sample count leaves one trailing pair uncovered. That pair is
// integrated with a quadratic fitted through the last three samples and
// evaluated at the midpoint of the last two points only, so every consecutive
// pair of samples is covered by exactly one contribution.
func SimpsonSamples[T Float](x, y Sequence[T]) T {
	var sum T
	n := x.Len()
	for i := 0; i+2 < n; i += 2 {
		// ∫ over [x[i], x[i+2]] ≈ (x[i+2]-x[i])/6 * (y[i] + 4*ym + y[i+2])
		m := (x.At(i) + x.At(i+2)) / 2
		ym := Lagrange3(m,
			x.At(i), y.At(i),
			x.At(i+1), y.At(i+1),
			x.At(i+2), y.At(i+2))
		sum += (x.At(i+2) - x.At(i)) / 6 * (y.At(i) + 4*ym + y.At(i+2))
	}

	// An even count means the last index is odd: one pair remains. Fit the
	// quadratic through the last three points but integrate over the last
	// two only.
	if n%2 == 0 && n > 2 {
		i := n - 3
		m := (x.At(i+1) + x.At(i+2)) / 2
		ym := Lagrange3(m,
			x.At(i), y.At(i),
			x.At(i+1), y.At(i+1),
			x.At(i+2), y.At(i+2))
		sum += (x.At(i+2) - x.At(i+1)) / 6 * (y.At(i+1) + 4*ym + y.At(i+2))
	}

	return sum
}

// SimpsonSlices is SimpsonSamples for plain slices.
func SimpsonSlices[T Float](x, y []T) T {
	return SimpsonSamples[T](Slice[T](x), Slice[T](y))
}

// SimpsonUniform approximates the integral of a discretized function given as
// y samples with uniform spacing dx (pass 1 for unit spacing). y must have
// length >= 3; fewer samples are undefined behavior and not checked.
//
// Uniform spacing lets each full triple reduce to the closed form
// y[i] + 4*y[i+1] + y[i+2], with a single dx/3 scale applied at the end. The
// trailing pair of an even sample count is handled as in SimpsonSamples —
// quadratic through the last three samples, evaluated at the midpoint of the
// last two, in local offset coordinates 0, dx, 2dx — and added as a separate
// dx/6-scaled term since it covers a narrower span.
func SimpsonUniform[T Float](y Sequence[T], dx T) T {
	var sum T
	n := y.Len()
	for i := 0; i+2 < n; i += 2 {
		sum += y.At(i) + 4*y.At(i+1) + y.At(i+2)
	}
	sum *= dx / 3

	if n%2 == 0 {
		i := n - 3
		ym := Lagrange3(3*dx/2,
			0, y.At(i),
			dx, y.At(i+1),
			2*dx, y.At(i+2))
		sum += dx / 6 * (y.At(i+1) + 4*ym + y.At(i+2))
	}

	return sum
}

// SimpsonUniformSlice is SimpsonUniform for a plain slice.
func SimpsonUniformSlice[T Float](y []T, dx T) T {
	return SimpsonUniform[T](Slice[T](y), dx)
}
