// Package testutil provides deterministic random element data for vecn tests.
//
//	rng := testutil.NewRNG(4711)
//	var a [8]int
//	rng.FillInts(a[:], -1000, 1000)
package testutil
