package entityset

import (
	"github.com/startdusk/go-odata/binder"
	"github.com/startdusk/go-odata/orm"
	"github.com/startdusk/go-odata/orm/model"
)

var _ binder.ColumnResolver = modelResolver{}

// modelResolver 属性名就是 Go 字段名, 列名来自 orm 元数据
type modelResolver struct {
	entity string
	model  *model.Model
}

func (r modelResolver) Column(property string) (string, bool) {
	fd, ok := r.model.FieldMap[property]
	if !ok {
		return "", false
	}
	return fd.ColName, true
}

func (r modelResolver) KeyColumn() string {
	if r.model.Key == nil {
		return ""
	}
	return r.model.Key.ColName
}

func (r modelResolver) EntityName() string {
	return r.entity
}

var _ binder.Sorter = &orderBys{}

// orderBys 把绑定好的列转成 orm 的排序
type orderBys []orm.OrderBy

func (o *orderBys) Asc(column string) {
	*o = append(*o, orm.Raw(column).Asc())
}

func (o *orderBys) Desc(column string) {
	*o = append(*o, orm.Raw(column).Desc())
}

func selectables(cols []string) []orm.Selectable {
	if binder.IsWildcard(cols) {
		return nil
	}
	res := make([]orm.Selectable, 0, len(cols))
	for _, col := range cols {
		res = append(res, orm.Raw(col))
	}
	return res
}

func predicates(f *binder.Fragment) []orm.Predicate {
	if f.Empty() {
		return nil
	}
	return []orm.Predicate{orm.Raw(f.SQL, f.Args...).AsPredicate()}
}
