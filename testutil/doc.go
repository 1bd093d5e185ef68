// Package testutil provides testing utilities for veclist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for reproducible workloads and a
// slice-backed reference model for differential testing.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Ints(100, 1000)   // 100 values in [0, 1000)
//	pos := rng.Intn(len(vals))
//
// # Reference Model
//
//	m := testutil.NewModel(vals...)
//	m.InsertAfter(pos, 42)
//	m.RemoveAt(0)
//	want := m.Values()
package testutil
