package binder

import (
	"github.com/startdusk/go-odata/odata"
)

// Sorter 接收排序子句, 调用顺序就是排序键的优先级
type Sorter interface {
	Asc(column string)
	Desc(column string)
}

// Ordering 一个排序列
type Ordering struct {
	Column     string
	Descending bool
}

var _ Sorter = &Orderings{}

type Orderings []Ordering

func (o *Orderings) Asc(column string) {
	*o = append(*o, Ordering{Column: column})
}

func (o *Orderings) Desc(column string) {
	*o = append(*o, Ordering{Column: column, Descending: true})
}

// apply 按顺序写到 target
func (o Orderings) apply(target Sorter) {
	for _, ord := range o {
		if ord.Descending {
			target.Desc(ord.Column)
			continue
		}
		target.Asc(ord.Column)
	}
}

// BindOrderBy 把 $orderby 写到 target
// 没有 $orderby 时按主键升序, 保证分页结果稳定
// 所有列都解析成功之后才会写 target
func BindOrderBy(clause *odata.OrderByClause, r ColumnResolver, target Sorter) error {
	if r == nil {
		return odata.NewErrInvalidArgument("ColumnResolver")
	}
	if target == nil {
		return odata.NewErrInvalidArgument("Sorter")
	}

	if clause == nil || len(clause.Items) == 0 {
		key := r.KeyColumn()
		if key == "" {
			return odata.NewErrInvalidArgument("KeyColumn")
		}
		target.Asc(key)
		return nil
	}

	res := make(Orderings, 0, len(clause.Items))
	for _, item := range clause.Items {
		col, err := resolveColumn(r, item.Path, odata.OptionOrderBy)
		if err != nil {
			return err
		}
		if item.Direction == odata.Descending {
			res.Desc(col)
		} else {
			res.Asc(col)
		}
	}
	res.apply(target)
	return nil
}
