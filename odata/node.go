package odata

import (
	"strings"
)

// Node 是 $filter 表达式树的节点
// 由 OData 解析器生成, 绑定过程只读不写
// 只有本包里的五种节点实现了它
type Node interface {
	node()
}

// BinaryOperatorNode 二元运算, 如 Age gt 18, A and B
type BinaryOperatorNode struct {
	Kind  BinaryOperatorKind
	Left  Node
	Right Node
}

func (*BinaryOperatorNode) node() {}

// UnaryOperatorNode 一元运算, 如 not contains(Name,'x')
type UnaryOperatorNode struct {
	Kind    UnaryOperatorKind
	Operand Node
}

func (*UnaryOperatorNode) node() {}

// FunctionCallNode 函数调用, 函数名区分大小写
type FunctionCallNode struct {
	Name string
	Args []Node
}

func (*FunctionCallNode) node() {}

// PropertyAccessNode 访问实体属性
type PropertyAccessNode struct {
	Path PropertyPath
}

func (*PropertyAccessNode) node() {}

// ConstantNode 字面量
// Type 为 EdmNull 时代表 SQL 的 NULL
type ConstantNode struct {
	Value any
	Type  EdmType
}

func (*ConstantNode) node() {}

// IsNull 没有声明类型的字面量就是 null
func (c *ConstantNode) IsNull() bool {
	return c.Type == EdmNull
}

// PropertyPath 属性路径, 如 Name 或 Address/City
type PropertyPath []string

func (p PropertyPath) String() string {
	return strings.Join(p, "/")
}

func Binary(kind BinaryOperatorKind, left, right Node) *BinaryOperatorNode {
	return &BinaryOperatorNode{
		Kind:  kind,
		Left:  left,
		Right: right,
	}
}

func Not(operand Node) *UnaryOperatorNode {
	return &UnaryOperatorNode{
		Kind:    OpNot,
		Operand: operand,
	}
}

func Negate(operand Node) *UnaryOperatorNode {
	return &UnaryOperatorNode{
		Kind:    OpNegate,
		Operand: operand,
	}
}

func Call(name string, args ...Node) *FunctionCallNode {
	return &FunctionCallNode{
		Name: name,
		Args: args,
	}
}

// Property("Address", "City") => Address/City
func Property(segments ...string) *PropertyAccessNode {
	return &PropertyAccessNode{
		Path: segments,
	}
}

// Constant 根据 Go 类型推断 Edm 类型, nil 就是 null
func Constant(val any) *ConstantNode {
	return &ConstantNode{
		Value: val,
		Type:  EdmTypeOf(val),
	}
}

func TypedConstant(val any, typ EdmType) *ConstantNode {
	return &ConstantNode{
		Value: val,
		Type:  typ,
	}
}

func Null() *ConstantNode {
	return &ConstantNode{}
}
