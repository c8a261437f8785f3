// SPDX-License-Identifier: MIT
package coo_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/coo"
)

// sink defeats dead-code elimination in the benchmarks.
var sink float64

// benchAssembler stages an n x n tridiagonal system.
func benchAssembler(b *testing.B, n int) *coo.Assembler[float64] {
	b.Helper()
	a := coo.NewAssembler[float64]()
	for i := 0; i < n; i++ {
		_ = a.Insert(i, i, 4)
		if i+1 < n {
			_ = a.Insert(i, i+1, -1)
			_ = a.Insert(i+1, i, -1)
		}
	}

	return a
}

func BenchmarkMaterialize(b *testing.B) {
	const n = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := benchAssembler(b, n)
		b.StartTimer()
		m, err := a.Materialize()
		if err != nil {
			b.Fatal(err)
		}
		sink = float64(m.NNZ())
	}
}

func BenchmarkMulVec(b *testing.B) {
	const n = 1000
	a := benchAssembler(b, n)
	if _, err := a.Materialize(); err != nil {
		b.Fatal(err)
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.MulVec(x, y); err != nil {
			b.Fatal(err)
		}
	}
	sink = y[0]
}

func BenchmarkMulVecTranspose(b *testing.B) {
	const n = 1000
	a := benchAssembler(b, n)
	if _, err := a.Materialize(); err != nil {
		b.Fatal(err)
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.MulVec(x, y, coo.WithTranspose()); err != nil {
			b.Fatal(err)
		}
	}
	sink = y[0]
}

func BenchmarkSolve(b *testing.B) {
	const n = 200
	a := benchAssembler(b, n)
	if _, err := a.Materialize(); err != nil {
		b.Fatal(err)
	}
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := make([]float64, n)
		res, err := a.Solve(x, rhs)
		if err != nil {
			b.Fatal(err)
		}
		sink = res
	}
}
