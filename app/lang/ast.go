package lang

import "strconv"

// Node is the interface all AST nodes implement. The three concrete node
// types below are the only shapes the parser produces; the evaluator
// treats any other shape as a bug.
type Node interface {
	nodeTag()
	// String renders the node as a fully parenthesized expression.
	String() string
}

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	OpPos UnaryOp = iota
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpPos:
		return "+"
	case OpNeg:
		return "-"
	}
	panic("lang: invalid unary operator " + strconv.Itoa(int(op)))
}

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	}
	panic("lang: invalid binary operator " + strconv.Itoa(int(op)))
}

// NumberLit represents a number literal (integer or decimal).
type NumberLit struct {
	Value Value
}

// UnaryExpr represents a unary + or - applied to an operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Node
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (*NumberLit) nodeTag()  {}
func (*UnaryExpr) nodeTag()  {}
func (*BinaryExpr) nodeTag() {}

func (n *NumberLit) String() string {
	return n.Value.String()
}

func (n *UnaryExpr) String() string {
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}
