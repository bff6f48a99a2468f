package ast

import "fmt"

// VarType is the closed set of source type keywords.
type VarType int

const (
	NumberType VarType = iota
	BooleanType
	StringType
	ArrayType
	NumberArrayType
	StringArrayType
)

func VarTypes() []VarType {
	return []VarType{
		NumberType,
		BooleanType,
		StringType,
		ArrayType,
		NumberArrayType,
		StringArrayType,
	}
}

func (t VarType) IsValid() bool {
	return t >= NumberType && t <= StringArrayType
}

func (t VarType) String() string {
	switch t {
	case NumberType:
		return "সংখ্যা"
	case BooleanType:
		return "হাছামিছা"
	case StringType:
		return "দড়ি"
	case ArrayType:
		return "বিন্যাস"
	case NumberArrayType:
		return "সংখ্যা_বিন্যাস"
	case StringArrayType:
		return "দড়ি_বিন্যাস"
	default:
		panic(fmt.Sprintf("VarType.String(): received illegal var type: %d", t))
	}
}

type Operator int

const (
	OpNone Operator = iota

	OpEq  // ==
	OpNeq // !=
	OpLt  // <
	OpGt  // >
	OpLeq // <=
	OpGeq // >=

	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
	OpMod // %
)

func (op Operator) IsComparison() bool {
	return op >= OpEq && op <= OpGeq
}

func (op Operator) IsArithmetic() bool {
	return op >= OpAdd && op <= OpMod
}

func (op Operator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLeq:
		return "<="
	case OpGeq:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		panic(fmt.Sprintf("Operator.String(): received illegal operator: %d", op))
	}
}
