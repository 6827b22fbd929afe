package vecn

// Array is the set of array types that can back a Vector of T.
//
// The array length is the vector's dimension. Because the length is part of
// the type, vectors of different dimensions are distinct types and cannot be
// combined.
type Array[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[32]T | ~[64]T | ~[128]T | ~[256]T | ~[384]T | ~[512]T | ~[768]T |
		~[1024]T | ~[1536]T | ~[2048]T | ~[3072]T | ~[4096]T
}

// Vector is a fixed-length vector of T backed by the array type A.
//
// Vector is a value type: assignment copies all elements. When T is
// comparable, two vectors can be compared with ==.
type Vector[T any, A Array[T]] struct {
	elems A
}

// Vec2 is a two-dimensional vector.
type Vec2[T any] = Vector[T, [2]T]

// Vec3 is a three-dimensional vector.
type Vec3[T any] = Vector[T, [3]T]

// Vec4 is a four-dimensional vector.
type Vec4[T any] = Vector[T, [4]T]

// From returns a vector whose i-th element is elems[i].
//
//	v := vecn.From[int]([...]int{1, 2, 3})
func From[T any, A Array[T]](elems A) Vector[T, A] {
	return Vector[T, A]{elems: elems}
}

// Zero returns the vector whose elements are all the zero value of T.
func Zero[T any, A Array[T]]() Vector[T, A] {
	return Vector[T, A]{}
}

// Of2 returns the vector (x; y).
func Of2[T any](x, y T) Vec2[T] {
	return From[T]([2]T{x, y})
}

// Of3 returns the vector (x; y; z).
func Of3[T any](x, y, z T) Vec3[T] {
	return From[T]([3]T{x, y, z})
}

// Of4 returns the vector (x; y; z; w).
func Of4[T any](x, y, z, w T) Vec4[T] {
	return From[T]([4]T{x, y, z, w})
}

// Len returns the dimension of v.
func (v Vector[T, A]) Len() int {
	return len(v.elems)
}

// Array returns a copy of the elements of v.
func (v Vector[T, A]) Array() A {
	return v.elems
}

// Clone returns an independent copy of v.
func (v Vector[T, A]) Clone() Vector[T, A] {
	return v
}

// At returns the element at index i.
// It panics with an *IndexError if i is outside [0, Len()).
func (v Vector[T, A]) At(i int) T {
	v.mustContain(i)
	return v.elems[i]
}

// Set replaces the element at index i with x.
// It panics with an *IndexError if i is outside [0, Len()).
func (v *Vector[T, A]) Set(i int, x T) {
	v.mustContain(i)
	v.elems[i] = x
}

// Ref returns a pointer to the element at index i. Writes through the
// pointer modify v.
// It panics with an *IndexError if i is outside [0, Len()).
func (v *Vector[T, A]) Ref(i int) *T {
	v.mustContain(i)
	return &v.elems[i]
}

// Get returns the element at index i, or an error matching
// ErrIndexOutOfRange if i is outside [0, Len()).
func (v Vector[T, A]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.elems[i], nil
}

// Put replaces the element at index i with x, or returns an error matching
// ErrIndexOutOfRange if i is outside [0, Len()). v is unchanged on error.
func (v *Vector[T, A]) Put(i int, x T) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.elems[i] = x
	return nil
}

// Equal reports whether a and b hold equal elements at every index.
func Equal[T comparable, A Array[T]](a, b Vector[T, A]) bool {
	for i := 0; i < len(a.elems); i++ {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

func (v *Vector[T, A]) check(i int) error {
	if n := len(v.elems); i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

func (v *Vector[T, A]) mustContain(i int) {
	if err := v.check(i); err != nil {
		panic(err)
	}
}
