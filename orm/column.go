package orm

// Column 用 Go 结构体的字段名, 构建 SQL 时才转换成列名
type Column struct {
	name  string
	alias string
}

func C(name string) Column {
	return Column{name: name}
}

// As C("FirstName").As("name") => `first_name` AS `name`
func (c Column) As(alias string) Column {
	return Column{
		name:  c.name,
		alias: alias,
	}
}

func (c Column) selectable() {}

func (c Column) expr() {}

func (c Column) Gt(arg any) Predicate {
	return Predicate{
		left:  c,
		op:    opGt,
		right: value{val: arg},
	}
}

func (c Column) Lt(arg any) Predicate {
	return Predicate{
		left:  c,
		op:    opLt,
		right: value{val: arg},
	}
}

func (c Column) Eq(arg any) Predicate {
	return Predicate{
		left:  c,
		op:    opEq,
		right: value{val: arg},
	}
}
