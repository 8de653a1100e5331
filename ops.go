package size

// Arithmetic on Size works on the byte counts and follows Go's int64
// semantics: results that leave the int64 range wrap around.

// Add returns s + other.
func (s Size) Add(other Size) Size {
	return FromBytes(s.bytes + other.bytes)
}

// Sub returns s - other.
func (s Size) Sub(other Size) Size {
	return FromBytes(s.bytes - other.bytes)
}

// Mul returns s scaled by n.
func (s Size) Mul(n int64) Size {
	return FromBytes(s.bytes * n)
}

// MulFloat returns s scaled by f, truncated toward zero.
func (s Size) MulFloat(f float64) Size {
	return FromBytes(truncate(float64(s.bytes) * f))
}

// Div returns s divided by n, truncated toward zero. It panics if n is zero,
// like integer division.
func (s Size) Div(n int64) Size {
	return FromBytes(s.bytes / n)
}

// DivFloat returns s divided by f, truncated toward zero. Dividing by zero
// saturates at the int64 bounds (or yields zero for a zero size).
func (s Size) DivFloat(f float64) Size {
	return FromBytes(truncate(float64(s.bytes) / f))
}

// Neg returns -s.
func (s Size) Neg() Size {
	return FromBytes(-s.bytes)
}

// Abs returns the magnitude of s. The absolute value of the smallest Size
// is itself, as with int64.
func (s Size) Abs() Size {
	if s.bytes < 0 {
		return s.Neg()
	}

	return s
}

// Sum adds up sizes.
func Sum(sizes ...Size) Size {
	var total int64
	for _, s := range sizes {
		total += s.bytes
	}

	return FromBytes(total)
}
