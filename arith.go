package vecn

import "golang.org/x/exp/constraints"

// Number is the set of element types supporting + and -.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Add returns the componentwise sum a + b. Neither operand is modified.
//
// Overflow follows the element type: integers wrap, floats follow IEEE 754.
func Add[T Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	AddAssign(&a, b)
	return a
}

// AddAssign sets dst to the componentwise sum dst + b.
// Elements are updated in ascending index order.
func AddAssign[T Number, A Array[T]](dst *Vector[T, A], b Vector[T, A]) {
	for i := 0; i < len(dst.elems); i++ {
		dst.elems[i] += b.elems[i]
	}
}

// Sub returns the componentwise difference a - b. Neither operand is modified.
func Sub[T Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	SubAssign(&a, b)
	return a
}

// SubAssign sets dst to the componentwise difference dst - b.
// Elements are updated in ascending index order.
func SubAssign[T Number, A Array[T]](dst *Vector[T, A], b Vector[T, A]) {
	for i := 0; i < len(dst.elems); i++ {
		dst.elems[i] -= b.elems[i]
	}
}
