package supercalc

import "math"

// arith applies op to two numbers. Any real operand makes the result real.
// Otherwise fractions make the result a fraction, and two integers stay an
// integer except where division or a negative power needs a fraction.
func arith(op BinOpKind, l, r *Value) *Value {
	switch {
	case l.kind == KindReal || r.kind == KindReal:
		x, _ := l.Real()
		y, _ := r.Real()
		return realArith(op, x, y)
	case l.kind == KindFrac || r.kind == KindFrac:
		return fracArith(op, l, r)
	default:
		return intArith(op, l.ival, r.ival)
	}
}

func intArith(op BinOpKind, a, b int64) *Value {
	switch op {
	case BinAdd:
		if s, ok := addInt(a, b); ok {
			return Int(s)
		}
		return overflow()
	case BinSub:
		if s, ok := subInt(a, b); ok {
			return Int(s)
		}
		return overflow()
	case BinMul:
		if p, ok := mulInt(a, b); ok {
			return Int(p)
		}
		return overflow()
	case BinDiv:
		// Frac reduces and turns exact quotients back into integers.
		return Frac(a, b)
	case BinMod:
		if b == 0 {
			return divZero()
		}
		return Int(a % b)
	case BinPow:
		switch {
		case b >= 0:
			if p, ok := powInt(a, b); ok {
				return Int(p)
			}
		case a == 0:
			return divZero()
		case b != math.MinInt64:
			if p, ok := powInt(a, -b); ok {
				return Frac(1, p)
			}
		}
		return realArith(op, float64(a), float64(b))
	default:
		panic("supercalc: invalid arithmetic operator " + op.String())
	}
}

// fracOf returns v as a fraction. v must be an integer or fraction.
func fracOf(v *Value) (num, den int64) {
	if v.kind == KindInt {
		return v.ival, 1
	}
	return v.num, v.den
}

func fracArith(op BinOpKind, l, r *Value) *Value {
	a, b := fracOf(l)
	c, d := fracOf(r)
	switch op {
	case BinAdd:
		return fracAdd(a, b, c, d)
	case BinSub:
		if c == math.MinInt64 {
			return overflow()
		}
		return fracAdd(a, b, -c, d)
	case BinMul:
		return fracMul(a, b, c, d)
	case BinDiv:
		if c == 0 {
			return divZero()
		}
		return fracMul(a, b, d, c)
	case BinMod:
		if c == 0 {
			return divZero()
		}
		// a/b mod c/d = (ad mod cb) / bd
		ad, ok1 := mulInt(a, d)
		cb, ok2 := mulInt(c, b)
		bd, ok3 := mulInt(b, d)
		if !ok1 || !ok2 || !ok3 {
			return overflow()
		}
		return Frac(ad%cb, bd)
	case BinPow:
		e, ok := r.Int()
		if !ok {
			x, _ := l.Real()
			y, _ := r.Real()
			return realArith(op, x, y)
		}
		if e < 0 {
			if a == 0 {
				return divZero()
			}
			if e == math.MinInt64 {
				return overflow()
			}
			a, b, e = b, a, -e
		}
		n, ok1 := powInt(a, e)
		m, ok2 := powInt(b, e)
		if !ok1 || !ok2 {
			x, _ := l.Real()
			y, _ := r.Real()
			return realArith(op, x, y)
		}
		return Frac(n, m)
	default:
		panic("supercalc: invalid arithmetic operator " + op.String())
	}
}

// fracAdd returns a/b + c/d. b and d are positive.
func fracAdd(a, b, c, d int64) *Value {
	g := gcd(b, d)
	// a/b + c/d = (a(d/g) + c(b/g)) / (b(d/g))
	x, ok1 := mulInt(a, d/g)
	y, ok2 := mulInt(c, b/g)
	den, ok3 := mulInt(b, d/g)
	if !ok1 || !ok2 || !ok3 {
		return overflow()
	}
	num, ok := addInt(x, y)
	if !ok {
		return overflow()
	}
	return Frac(num, den)
}

// fracMul returns (a/b)(c/d).
func fracMul(a, b, c, d int64) *Value {
	if a == 0 || c == 0 {
		return Int(0)
	}
	g1, g2 := gcd(a, d), gcd(c, b)
	num, ok1 := mulInt(a/g1, c/g2)
	den, ok2 := mulInt(b/g2, d/g1)
	if !ok1 || !ok2 {
		return overflow()
	}
	return Frac(num, den)
}

func realArith(op BinOpKind, x, y float64) *Value {
	switch op {
	case BinAdd:
		return Real(x + y)
	case BinSub:
		return Real(x - y)
	case BinMul:
		return Real(x * y)
	case BinDiv:
		if y == 0 {
			return divZero()
		}
		return Real(x / y)
	case BinMod:
		if y == 0 {
			return divZero()
		}
		return Real(math.Mod(x, y))
	case BinPow:
		p := math.Pow(x, y)
		if math.IsNaN(p) && !math.IsNaN(x) && !math.IsNaN(y) {
			return mathErr("Power has no real value.")
		}
		return Real(p)
	default:
		panic("supercalc: invalid arithmetic operator " + op.String())
	}
}

// reduce reduces n/d to lowest terms with a positive denominator. d must not
// be zero. The result is false if the reduced fraction is not representable.
func reduce(n, d int64) (int64, int64, bool) {
	if n == d {
		return 1, 1, true
	}
	g := gcd(n, d)
	n /= g
	d /= g
	if d < 0 {
		if n == math.MinInt64 || d == math.MinInt64 {
			return 0, 0, false
		}
		n, d = -n, -d
	}
	return n, d, true
}

// gcd returns the greatest common divisor of |a| and |b|. At least one of a
// and b must be nonzero, and they must not both be math.MinInt64.
func gcd(a, b int64) int64 {
	x, y := uabs(a), uabs(b)
	for y != 0 {
		x, y = y, x%y
	}
	return int64(x)
}

func uabs(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}
	return uint64(a)
}

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt(a, b int64) (int64, bool) {
	s := a - b
	if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, false
	}
	return p, true
}

// powInt computes a^e for e >= 0 by repeated squaring.
func powInt(a, e int64) (int64, bool) {
	r := int64(1)
	for e > 0 {
		if e&1 != 0 {
			var ok bool
			if r, ok = mulInt(r, a); !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			var ok bool
			if a, ok = mulInt(a, a); !ok {
				return 0, false
			}
		}
	}
	return r, true
}
