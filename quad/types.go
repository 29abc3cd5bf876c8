package quad

// Float is a constraint for floating-point scalar types.
type Float interface {
	~float32 | ~float64
}

// Func is a unary scalar function, the integrand of the continuous modes.
type Func[T Float] func(T) T

// Sequence is the capability contract of the discretized modes: a size query
// plus read-only indexed access. Any type with these two methods participates;
// no library-defined base type is required.
type Sequence[T Float] interface {
	// Len returns the number of samples.
	Len() int
	// At returns the sample at index i, 0 <= i < Len().
	At(i int) T
}

// Slice adapts a plain float slice to the Sequence interface.
type Slice[T Float] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }
