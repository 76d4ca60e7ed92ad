package odata

import (
	"fmt"
)

type BinaryOperatorKind int

const (
	OpOr BinaryOperatorKind = iota
	OpAnd
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpHas
)

var binaryOperatorNames = [...]string{
	OpOr:                 "Or",
	OpAnd:                "And",
	OpEqual:              "Equal",
	OpNotEqual:           "NotEqual",
	OpGreaterThan:        "GreaterThan",
	OpGreaterThanOrEqual: "GreaterThanOrEqual",
	OpLessThan:           "LessThan",
	OpLessThanOrEqual:    "LessThanOrEqual",
	OpAdd:                "Add",
	OpSubtract:           "Subtract",
	OpMultiply:           "Multiply",
	OpDivide:             "Divide",
	OpModulo:             "Modulo",
	OpHas:                "Has",
}

func (k BinaryOperatorKind) String() string {
	if k < 0 || int(k) >= len(binaryOperatorNames) {
		return fmt.Sprintf("BinaryOperatorKind(%d)", int(k))
	}
	return binaryOperatorNames[k]
}

type UnaryOperatorKind int

const (
	OpNegate UnaryOperatorKind = iota
	OpNot
)

func (k UnaryOperatorKind) String() string {
	switch k {
	case OpNegate:
		return "Negate"
	case OpNot:
		return "Not"
	default:
		return fmt.Sprintf("UnaryOperatorKind(%d)", int(k))
	}
}
