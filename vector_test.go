package supercalc

import (
	"math"
	"testing"
)

func ints(ns ...int64) *Value {
	r := make(ArgList, len(ns))
	for i, n := range ns {
		r[i] = Int(n)
	}
	return &Value{kind: KindVec, args: r}
}

func TestVectorOp(t *testing.T) {
	cases := []struct {
		name string
		op   BinOpKind
		l, r *Value
		want *Value
	}{
		{"add", BinAdd, ints(1, 2), ints(3, 4), ints(4, 6)},
		{"sub", BinSub, ints(1, 2), ints(3, 4), ints(-2, -2)},
		{"mul", BinMul, ints(1, 2), ints(3, 4), ints(3, 8)},
		{"div", BinDiv, ints(1, 2), ints(3, 4), Vec(Frac(1, 3), Frac(1, 2))},
		{"pow", BinPow, ints(1, 2), ints(3, 4), ints(1, 16)},
		{"mod", BinMod, ints(7, 9), ints(3, 4), ints(1, 1)},
		{"scalarright", BinMul, ints(1, 2), Int(3), ints(3, 6)},
		{"scalarleft", BinSub, Int(10), ints(1, 2), ints(9, 8)},
		{"scalardiv", BinDiv, Int(1), ints(2, 4), Vec(Frac(1, 2), Frac(1, 4))},
		{"scalarpow", BinPow, Int(2), ints(3, 4), ints(8, 16)},
		{"nested", BinAdd, Vec(ints(1, 2), Int(3)), Int(1), Vec(ints(2, 3), Int(4))},
		{"dot", BinDot, ints(1, 2, 3), ints(4, 5, 6), Int(32)},
		{"dotfrac", BinDot, Vec(Frac(1, 2)), Vec(Frac(1, 2)), Frac(1, 4)},
		{"dotempty", BinDot, ints(), ints(), Int(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := binary(c.op, c.l, c.r)
			if !got.Equal(c.want) {
				t.Errorf("%v %v %v: want %v, got %v", c.l, c.op, c.r, c.want, got)
			}
		})
	}
}

func TestVectorOpErrors(t *testing.T) {
	cases := []struct {
		name string
		op   BinOpKind
		l, r *Value
		kind ErrorKind
	}{
		{"size", BinAdd, ints(1, 2), ints(1, 2, 3), TypeError},
		{"dotsize", BinDot, ints(1, 2), ints(1, 2, 3), TypeError},
		{"dotscalar", BinDot, ints(1, 2), Int(2), TypeError},
		{"dotnumbers", BinDot, Int(1), Int(2), TypeError},
		{"divzero", BinDiv, ints(1, 2), ints(1, 0), MathError},
		{"func", BinAdd, ints(1), Var("f"), TypeError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := binary(c.op, c.l, c.r)
			if !got.IsErr() || got.Err().Kind != c.kind {
				t.Errorf("%v %v %v: want %v, got %v", c.l, c.op, c.r, c.kind, got)
			}
		})
	}
}

func TestCross(t *testing.T) {
	cases := []struct {
		a, b, want *Value
	}{
		{ints(1, 0, 0), ints(0, 1, 0), ints(0, 0, 1)},
		{ints(0, 1, 0), ints(1, 0, 0), ints(0, 0, -1)},
		{ints(1, 2, 3), ints(4, 5, 6), ints(-3, 6, -3)},
		{ints(1, 2, 3), ints(1, 2, 3), ints(0, 0, 0)},
	}
	for _, c := range cases {
		if got := cross(c.a.args, c.b.args); !got.Equal(c.want) {
			t.Errorf("%v × %v: want %v, got %v", c.a, c.b, c.want, got)
		}
	}
	if got := cross(ints(1, 2).args, ints(3, 4).args); !got.IsErr() {
		t.Errorf("cross of 2-vectors gave %v", got)
	}
}

func TestMagnitude(t *testing.T) {
	m, err := magnitude(ints(3, 4).args)
	if err != nil || m != 5 {
		t.Errorf("|<3, 4>|: got %v, %v", m, err)
	}
	m, err = magnitude(Vec(Frac(1, 2), Real(0.5), Int(0)).args)
	if err != nil || math.Abs(m-math.Sqrt(0.5)) > 1e-15 {
		t.Errorf("|<1/2, 0.5, 0>|: got %v, %v", m, err)
	}
	if _, err := magnitude(Vec(ints(1)).args); err == nil {
		t.Error("magnitude of nested vector succeeded")
	}

	if got, want := normalize(ints(3, 4).args), Vec(Real(0.6), Real(0.8)); !got.Equal(want) {
		t.Errorf("norm <3, 4>: want %v, got %v", want, got)
	}
	if got := normalize(ints(0, 0).args); !got.IsErr() || got.Err().Kind != MathError {
		t.Errorf("norm <0, 0>: got %v", got)
	}
}

func TestElem(t *testing.T) {
	v := ints(10, 20, 30)
	cases := []struct {
		idx  *Value
		want *Value
	}{
		{Int(0), Int(10)},
		{Int(2), Int(30)},
		{Int(-1), Int(30)},
		{Int(-3), Int(10)},
	}
	for _, c := range cases {
		if got := elem(v, c.idx); !got.Equal(c.want) {
			t.Errorf("%v[%v]: want %v, got %v", v, c.idx, c.want, got)
		}
	}
	errs := []struct {
		v, idx *Value
		kind   ErrorKind
	}{
		{v, Int(3), MathError},
		{v, Int(-4), MathError},
		{v, Real(0.5), TypeError},
		{v, Frac(1, 2), TypeError},
		{Int(1), Int(0), TypeError},
		{ints(), Int(0), MathError},
	}
	for _, c := range errs {
		if got := elem(c.v, c.idx); !got.IsErr() || got.Err().Kind != c.kind {
			t.Errorf("%v[%v]: want %v, got %v", c.v, c.idx, c.kind, got)
		}
	}
}
