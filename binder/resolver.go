package binder

import (
	"github.com/startdusk/go-odata/odata"
)

//go:generate mockgen -source=resolver.go -destination=mocks/column_resolver.go -package=mocks

// ColumnResolver 把实体属性名映射成数据库列名
type ColumnResolver interface {
	// Column 找不到映射时返回 false
	Column(property string) (string, bool)
	// KeyColumn 主键列, 没有指定排序时按它升序排
	KeyColumn() string
	// EntityName 实体类型名, 只在错误信息里用
	EntityName() string
}

var _ ColumnResolver = MapResolver{}

// MapResolver 基于 map 的 ColumnResolver
type MapResolver struct {
	Entity  string
	Key     string
	Columns map[string]string
}

func (m MapResolver) Column(property string) (string, bool) {
	col, ok := m.Columns[property]
	return col, ok
}

func (m MapResolver) KeyColumn() string {
	return m.Key
}

func (m MapResolver) EntityName() string {
	return m.Entity
}

// resolveColumn 三个绑定器共用, target 标记是哪个查询参数
func resolveColumn(r ColumnResolver, path odata.PropertyPath, target string) (string, error) {
	if len(path) > 1 {
		return "", odata.NewErrUnsupportedPropertyPath(path, target)
	}
	var name string
	if len(path) == 1 {
		name = path[0]
	}
	col, ok := r.Column(name)
	if !ok {
		return "", odata.NewErrUnknownProperty(name, r.EntityName(), target)
	}
	return col, nil
}
