package binder

import (
	"github.com/startdusk/go-odata/odata"
)

// 运算符对照表, 初始化之后只读, 多个绑定器可以并发查
var binaryOperators = map[odata.BinaryOperatorKind]string{
	odata.OpAdd:                "+",
	odata.OpAnd:                "AND",
	odata.OpDivide:             "/",
	odata.OpEqual:              "=",
	odata.OpGreaterThan:        ">",
	odata.OpGreaterThanOrEqual: ">=",
	odata.OpHas:                "=",
	odata.OpLessThan:           "<",
	odata.OpLessThanOrEqual:    "<=",
	odata.OpModulo:             "%",
	odata.OpMultiply:           "*",
	odata.OpNotEqual:           "<>",
	odata.OpOr:                 "OR",
	odata.OpSubtract:           "-",
}

var unaryOperators = map[odata.UnaryOperatorKind]string{
	odata.OpNot: "NOT",
}

func binaryOperator(kind odata.BinaryOperatorKind) (string, error) {
	op, ok := binaryOperators[kind]
	if !ok {
		return "", odata.NewErrUnsupportedBinaryOperator(kind)
	}
	return op, nil
}

func unaryOperator(kind odata.UnaryOperatorKind) (string, error) {
	op, ok := unaryOperators[kind]
	if !ok {
		return "", odata.NewErrUnsupportedUnaryOperator(kind)
	}
	return op, nil
}
