package orm

// Expression 是一个标记接口, 代表表达式
type Expression interface {
	expr()
}

// RawExpr 代表的是原生表达式
// 是一种兜底方式, 由于用户的输入SQL过于复杂, 就交给用户自己手写SQL, 我们就不能帮忙构建了
// OData 绑定器生成的条件、列名也是通过它进来的
type RawExpr struct {
	raw  string
	args []any
}

func Raw(expr string, args ...any) RawExpr {
	return RawExpr{
		raw:  expr,
		args: args,
	}
}

func (r RawExpr) AsPredicate() Predicate {
	return Predicate{
		left: r,
	}
}

// Asc Raw("Id").Asc() => Id ASC, 原生表达式不加引号
func (r RawExpr) Asc() OrderBy {
	return OrderBy{expr: r}
}

func (r RawExpr) Desc() OrderBy {
	return OrderBy{expr: r, desc: true}
}

func (r RawExpr) selectable() {}
func (r RawExpr) expr()       {}

// value 代表参数
type value struct {
	val any
}

func (v value) expr() {}
