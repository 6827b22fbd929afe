// Package vecn provides a fixed-length generic vector for Go.
//
// A Vector[T, A] holds exactly len(A) elements of type T in an array A. The
// dimension is part of the type, so vectors of different dimensions cannot be
// added, subtracted or compared; the compiler rejects it.
//
// # Construction
//
//	v := vecn.From[int]([...]int{1, 2, 3}) // Vector[int, [3]int]
//	w := vecn.Of3(1, 2, 3)                  // Vec3[int], same type
//	z := vecn.Zero[float32, [768]float32]()
//
// # Access
//
//	x := v.At(0)      // panics with *IndexError when out of range
//	v.Set(1, 0)
//	*v.Ref(2) += 10
//	y, err := v.Get(5) // errors.Is(err, vecn.ErrIndexOutOfRange)
//
// # Arithmetic
//
// Add and Sub return new vectors; AddAssign and SubAssign update the first
// operand in place. Elements are processed in ascending index order.
//
//	sum := vecn.Add(v, w)
//	vecn.SubAssign(&v, w)
//
// # Rendering
//
// Vectors render as a parenthesised, semicolon-separated list:
//
//	fmt.Println(vecn.Of3(1, 2, 3))              // (1; 2; 3)
//	fmt.Printf("%.1f\n", vecn.Of2(1.0, 2.5))   // (1.0; 2.5)
//	fmt.Println(vecn.Zero[int, [0]int]())       // ()
//
// Vectors are plain values. Assignment copies the elements and no operation
// allocates.
package vecn
