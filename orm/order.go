package orm

// OrderBy ORDER BY 的一项
type OrderBy struct {
	expr Expression
	desc bool
}

// Asc("Age") => `age` ASC
func Asc(col string) OrderBy {
	return OrderBy{expr: C(col)}
}

// Desc("Age") => `age` DESC
func Desc(col string) OrderBy {
	return OrderBy{expr: C(col), desc: true}
}
