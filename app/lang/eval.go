package lang

import (
	"math"
	"strconv"
)

// MaxExponent is the largest exponent magnitude ** accepts. Anything
// bigger fails before the operation runs, bounding the work a single
// expression can demand.
const MaxExponent = 1000

// Eval evaluates an AST node to a single numeric value. It is pure: the
// tree is the only input, the value or error the only output. The left
// operand is always evaluated before the right one.
func Eval(node Node) (Value, error) {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value, nil

	case *UnaryExpr:
		operand, err := Eval(n.Operand)
		if err != nil {
			return Value{}, err
		}
		switch n.Op {
		case OpPos:
			return operand, nil
		case OpNeg:
			if operand.IsFloat {
				return FloatValue(-operand.Float), nil
			}
			return IntValue(-operand.Int), nil
		}
		panic("lang: invalid unary operator " + strconv.Itoa(int(n.Op)))

	case *BinaryExpr:
		left, err := Eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return applyBinary(n.Op, left, right)
	}
	panic("lang: invalid AST node")
}

// applyBinary dispatches a binary operator with its safety checks. The
// result is integer-tagged only when both operands are, except that / is
// always float and ** follows the rules in evalPow.
func applyBinary(op BinaryOp, left, right Value) (Value, error) {
	switch op {
	case OpAdd:
		if bothInt(left, right) {
			return IntValue(left.Int + right.Int), nil
		}
		return FloatValue(left.AsFloat() + right.AsFloat()), nil

	case OpSub:
		if bothInt(left, right) {
			return IntValue(left.Int - right.Int), nil
		}
		return FloatValue(left.AsFloat() - right.AsFloat()), nil

	case OpMul:
		if bothInt(left, right) {
			return IntValue(left.Int * right.Int), nil
		}
		return FloatValue(left.AsFloat() * right.AsFloat()), nil

	case OpDiv:
		if right.IsZero() {
			return Value{}, &DivisionByZeroError{Op: "/"}
		}
		return FloatValue(left.AsFloat() / right.AsFloat()), nil

	case OpFloorDiv:
		if right.IsZero() {
			return Value{}, &DivisionByZeroError{Op: "//"}
		}
		if bothInt(left, right) {
			return IntValue(floorDivInt(left.Int, right.Int)), nil
		}
		return FloatValue(math.Floor(left.AsFloat() / right.AsFloat())), nil

	case OpMod:
		if right.IsZero() {
			return Value{}, &DivisionByZeroError{Op: "%"}
		}
		if bothInt(left, right) {
			return IntValue(floorModInt(left.Int, right.Int)), nil
		}
		return FloatValue(floorModFloat(left.AsFloat(), right.AsFloat())), nil

	case OpPow:
		return evalPow(left, right)
	}
	panic("lang: invalid binary operator " + strconv.Itoa(int(op)))
}

func bothInt(a, b Value) bool {
	return !a.IsFloat && !b.IsFloat
}

// floorDivInt divides rounding toward negative infinity.
func floorDivInt(a, b int64) int64 {
	if b == -1 {
		// Avoids the MinInt64 / -1 overflow trap.
		return -a
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorModInt computes the remainder whose sign follows the divisor.
func floorModInt(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func floorModFloat(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// evalPow applies ** after checking the exponent cap. The cap applies to
// the raw numeric magnitude of the exponent whether or not it is
// integral.
func evalPow(base, exp Value) (Value, error) {
	if math.Abs(exp.AsFloat()) > MaxExponent {
		return Value{}, &ExponentError{Exp: exp.AsFloat()}
	}
	if bothInt(base, exp) && exp.Int >= 0 {
		if r, ok := ipow(base.Int, exp.Int); ok {
			return IntValue(r), nil
		}
		// Out of int64 range. Carry on with the float result so large
		// powers like 2**1000 still evaluate.
	}
	return FloatValue(math.Pow(base.AsFloat(), exp.AsFloat())), nil
}

// ipow computes base**exp by binary exponentiation, reporting false if
// any intermediate product leaves the int64 range.
func ipow(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			result, ok = mulCheck(result, base)
			if !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		var ok bool
		base, ok = mulCheck(base, base)
		if !ok {
			return 0, false
		}
	}
	return result, true
}

func mulCheck(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}
