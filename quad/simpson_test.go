package quad

import (
	"math"
	"testing"
)

func TestSimpson_ExactForLowDegreePolynomials(t *testing.T) {
	// Simpson's rule integrates polynomials up to degree 3 exactly for any
	// subdivision count.
	tests := []struct {
		name string
		f    Func[float64]
		a, b float64
		want float64
	}{
		{"constant 2 over [0,5]", func(x float64) float64 { return 2 }, 0, 5, 10},
		{"x over [0,4]", func(x float64) float64 { return x }, 0, 4, 8},
		{"x^2 over [0,3]", func(x float64) float64 { return x * x }, 0, 3, 9},
		{"x^3 over [0,2]", func(x float64) float64 { return x * x * x }, 0, 2, 4},
		{"x^3-2x^2+x-1 over [-1,2]", func(x float64) float64 {
			return x*x*x - 2*x*x + x - 1
		}, -1, 2, -15.0 / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 10, 101} {
				got := Simpson(tt.f, tt.a, tt.b, n)
				if math.Abs(got-tt.want) > 1e-12 {
					t.Errorf("Simpson(n=%d) = %v, want %v", n, got, tt.want)
				}
			}
		})
	}
}

func TestSimpson_XSquaredSingleSubInterval(t *testing.T) {
	got := Simpson(func(x float64) float64 { return x * x }, 0, 1, 1)
	if math.Abs(got-1.0/3) > 1e-15 {
		t.Errorf("Simpson(x^2, 0, 1, 1) = %v, want 1/3", got)
	}
}

func TestSimpson_ReversedBounds(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) }
	fwd := Simpson(f, 0, 2, 64)
	rev := Simpson(f, 2, 0, 64)
	if math.Abs(fwd+rev) > 1e-12 {
		t.Errorf("Simpson over [0,2] = %v, over [2,0] = %v; want negations", fwd, rev)
	}
}

func TestSimpson_ConvergesForSmoothIntegrands(t *testing.T) {
	tests := []struct {
		name string
		f    Func[float64]
		a, b float64
		want float64
	}{
		{"sin over [0,pi]", math.Sin, 0, math.Pi, 2},
		{"exp over [0,1]", math.Exp, 0, 1, math.E - 1},
		{"1/(1+x^2) over [0,1]", func(x float64) float64 { return 1 / (1 + x*x) }, 0, 1, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simpson(tt.f, tt.a, tt.b, 100)
			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("Simpson(n=100) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimpson_EvaluationOrderIsLeftToRight(t *testing.T) {
	var xs []float64
	f := func(x float64) float64 {
		xs = append(xs, x)
		return x
	}
	Simpson(f, 0, 1, 4)

	if len(xs) != 12 {
		t.Fatalf("got %d evaluations, want 12", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			t.Fatalf("evaluation order not increasing at %d: %v then %v", i, xs[i-1], xs[i])
		}
	}
}

func TestSimpson_Float32(t *testing.T) {
	got := Simpson(func(x float32) float32 { return x * x }, 0, 3, 8)
	if math.Abs(float64(got)-9) > 1e-4 {
		t.Errorf("Simpson[float32](x^2, 0, 3, 8) = %v, want 9", got)
	}
}

func TestRule_MatchesSimpson(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) * math.Exp(-x) }
	for _, n := range []int{1, 7, 50} {
		r := NewRule[float64](n)
		if got, want := r.Integrate(f, 0, 3), Simpson(f, 0, 3, n); got != want {
			t.Errorf("Rule(n=%d).Integrate = %v, Simpson = %v; want identical", n, got, want)
		}
	}
}

func TestRule_Subdivisions(t *testing.T) {
	r := NewRule[float64](42)
	if r.Subdivisions() != 42 {
		t.Errorf("Subdivisions() = %d, want 42", r.Subdivisions())
	}
}

func BenchmarkSimpson(b *testing.B) {
	f := func(x float64) float64 { return math.Sin(x) }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Simpson(f, 0, math.Pi, 1000)
	}
}
