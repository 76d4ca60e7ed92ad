package binder

import (
	"github.com/startdusk/go-odata/odata"
)

// BindKey 按主键查单个实体, 如 Customers(12) => Id = ?
func BindKey(key any, r ColumnResolver, opts ...Option) (*Fragment, error) {
	if r == nil {
		return nil, odata.NewErrInvalidArgument("ColumnResolver")
	}
	if key == nil {
		return nil, odata.NewErrInvalidArgument("key")
	}
	col := r.KeyColumn()
	if col == "" {
		return nil, odata.NewErrInvalidArgument("KeyColumn")
	}
	// 解析器给的是常量节点, 取出里面的值
	if c, ok := key.(*odata.ConstantNode); ok {
		if c == nil || c.IsNull() {
			return nil, odata.NewErrInvalidArgument("key")
		}
		key = c.Value
	}

	b := newFragmentBuilder(opts)
	b.sb.WriteString(col)
	b.sb.WriteString(" = ")
	b.addArg(key)
	return b.fragment(), nil
}
