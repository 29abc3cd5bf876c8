package quad

// lagrangeBasis evaluates one Lagrange basis term at x: the product of
// (x - other abscissas) over (this abscissa - other abscissas), where c is
// this abscissa and a, b are the other two. Coincident abscissas divide by
// zero; that is the caller's contract to avoid.
func lagrangeBasis[T Float](x, a, b, c T) T {
	return (x - a) * (x - b) / (c - a) / (c - b)
}

// Lagrange3 evaluates at x the unique polynomial of degree <= 2 passing
// through the three points (xa, ya), (xb, yb), (xc, yc). The abscissas must
// be pairwise distinct.
func Lagrange3[T Float](x, xa, ya, xb, yb, xc, yc T) T {
	return ya*lagrangeBasis(x, xb, xc, xa) +
		yb*lagrangeBasis(x, xa, xc, xb) +
		yc*lagrangeBasis(x, xa, xb, xc)
}
