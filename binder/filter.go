package binder

import (
	"fmt"
	"strings"

	"github.com/startdusk/go-odata/odata"
)

// BindFilter 把 $filter 表达式树翻译成 WHERE 条件
// expr 为 nil 时返回空片段
func BindFilter(expr odata.Node, r ColumnResolver, opts ...Option) (*Fragment, error) {
	if r == nil {
		return nil, odata.NewErrInvalidArgument("ColumnResolver")
	}
	if expr == nil {
		return &Fragment{}, nil
	}
	b := &filterBinder{
		fragmentBuilder: newFragmentBuilder(opts),
		resolver:        r,
	}
	if err := b.bind(expr); err != nil {
		return nil, err
	}
	return b.fragment(), nil
}

type filterBinder struct {
	*fragmentBuilder
	resolver ColumnResolver
}

func (b *filterBinder) bind(expr odata.Node) error {
	// 接口里装着 nil 指针和 nil 接口一样处理
	switch node := expr.(type) {
	case *odata.BinaryOperatorNode:
		if node == nil {
			return odata.NewErrUnsupportedExpression(expr)
		}
		return b.bindBinary(node)
	case *odata.UnaryOperatorNode:
		if node == nil {
			return odata.NewErrUnsupportedExpression(expr)
		}
		return b.bindUnary(node)
	case *odata.FunctionCallNode:
		if node == nil {
			return odata.NewErrUnsupportedExpression(expr)
		}
		return b.bindFunctionCall(node)
	case *odata.PropertyAccessNode:
		if node == nil {
			return odata.NewErrUnsupportedExpression(expr)
		}
		return b.bindProperty(node)
	case *odata.ConstantNode:
		if node == nil {
			return odata.NewErrUnsupportedExpression(expr)
		}
		b.bindConstant(node)
		return nil
	default:
		return odata.NewErrUnsupportedExpression(expr)
	}
}

func (b *filterBinder) bindBinary(node *odata.BinaryOperatorNode) error {
	// startswith(Name,'Fred') eq true 等价于 startswith(Name,'Fred')
	if fn, ok := node.Left.(*odata.FunctionCallNode); ok && fn != nil && node.Kind == odata.OpEqual && isTrue(node.Right) {
		b.sb.WriteByte('(')
		if err := b.bind(node.Left); err != nil {
			return err
		}
		b.sb.WriteByte(')')
		return nil
	}

	var op string
	if isNull(node.Right) && (node.Kind == odata.OpEqual || node.Kind == odata.OpNotEqual) {
		// SQL 里和 NULL 比较要用 IS
		op = "IS"
		if node.Kind == odata.OpNotEqual {
			op = "IS NOT"
		}
	} else {
		var err error
		if op, err = binaryOperator(node.Kind); err != nil {
			return err
		}
	}

	b.sb.WriteByte('(')
	if err := b.bind(node.Left); err != nil {
		return err
	}
	b.sb.WriteByte(' ')
	b.sb.WriteString(op)
	b.sb.WriteByte(' ')
	if err := b.bind(node.Right); err != nil {
		return err
	}
	b.sb.WriteByte(')')
	return nil
}

func (b *filterBinder) bindUnary(node *odata.UnaryOperatorNode) error {
	op, err := unaryOperator(node.Kind)
	if err != nil {
		return err
	}
	b.sb.WriteString(op)
	b.sb.WriteByte(' ')
	return b.bind(node.Operand)
}

func (b *filterBinder) bindFunctionCall(node *odata.FunctionCallNode) error {
	switch node.Name {
	case "substring", "tolower", "toupper", "day", "month", "year", "ceiling", "floor", "round":
		return b.bindSQLFunction(node)
	case "contains":
		return b.bindLike(node, "%", "%")
	case "endswith":
		return b.bindLike(node, "%", "")
	case "startswith":
		return b.bindLike(node, "", "%")
	case "trim":
		if len(node.Args) != 1 {
			return odata.NewErrInvalidFunctionArgument(node.Name)
		}
		b.sb.WriteString("LTRIM(RTRIM(")
		if err := b.bind(node.Args[0]); err != nil {
			return err
		}
		b.sb.WriteString("))")
		return nil
	default:
		return odata.NewErrUnsupportedFunction(node.Name)
	}
}

// bindSQLFunction tolower => LOWER, toupper => UPPER, 其它直接转大写
func (b *filterBinder) bindSQLFunction(node *odata.FunctionCallNode) error {
	b.sb.WriteString(strings.ToUpper(strings.TrimPrefix(node.Name, "to")))
	b.sb.WriteByte('(')
	for i, arg := range node.Args {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		if err := b.bind(arg); err != nil {
			return err
		}
	}
	b.sb.WriteByte(')')
	return nil
}

// bindLike contains(Name,'Bloggs') => Name LIKE ?, 参数 %Bloggs%
func (b *filterBinder) bindLike(node *odata.FunctionCallNode, prefix, suffix string) error {
	if len(node.Args) != 2 {
		return odata.NewErrInvalidFunctionArgument(node.Name)
	}
	pattern, ok := node.Args[1].(*odata.ConstantNode)
	if !ok || pattern == nil || pattern.IsNull() {
		return odata.NewErrInvalidFunctionArgument(node.Name)
	}
	if err := b.bind(node.Args[0]); err != nil {
		return err
	}
	b.sb.WriteString(" LIKE ")
	b.addArg(prefix + fmt.Sprint(pattern.Value) + suffix)
	return nil
}

// bindProperty 列名原样输出, 不用占位符
func (b *filterBinder) bindProperty(node *odata.PropertyAccessNode) error {
	col, err := resolveColumn(b.resolver, node.Path, odata.OptionFilter)
	if err != nil {
		return err
	}
	b.sb.WriteString(col)
	return nil
}

func (b *filterBinder) bindConstant(node *odata.ConstantNode) {
	if node.IsNull() {
		b.sb.WriteString("NULL")
		return
	}
	b.addArg(node.Value)
}

func isNull(expr odata.Node) bool {
	c, ok := expr.(*odata.ConstantNode)
	return ok && c != nil && c.IsNull()
}

func isTrue(expr odata.Node) bool {
	c, ok := expr.(*odata.ConstantNode)
	if !ok || c == nil || c.Type != odata.EdmBoolean {
		return false
	}
	v, ok := c.Value.(bool)
	return ok && v
}
