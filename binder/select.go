package binder

import (
	"github.com/startdusk/go-odata/odata"
)

// Wildcard 代表全部列, 和把所有列一个个列出来是两回事
const Wildcard = "*"

// BindSelect 把 $select 翻译成列名
// 没有 $select 或者选了 * 时返回 []string{Wildcard}
// 重复的列原样保留
func BindSelect(clause *odata.SelectClause, r ColumnResolver) ([]string, error) {
	if r == nil {
		return nil, odata.NewErrInvalidArgument("ColumnResolver")
	}
	if selectAll(clause) {
		return []string{Wildcard}, nil
	}

	cols := make([]string, 0, len(clause.Items))
	for _, item := range clause.Items {
		col, err := resolveColumn(r, item.Path, odata.OptionSelect)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// IsWildcard cols 是不是 BindSelect 返回的全部列
func IsWildcard(cols []string) bool {
	return len(cols) == 1 && cols[0] == Wildcard
}

func selectAll(clause *odata.SelectClause) bool {
	if clause == nil || clause.AllSelected || len(clause.Items) == 0 {
		return true
	}
	for _, item := range clause.Items {
		if len(item.Path) == 1 && item.Path[0] == Wildcard {
			return true
		}
	}
	return false
}
