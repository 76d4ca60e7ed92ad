package binder

import (
	"strings"
)

// Fragment 一段 SQL 和它的参数, 占位符和 Args 按顺序一一对应
type Fragment struct {
	SQL  string
	Args []any
}

// Empty 没有条件, 调用方不应该修改查询
func (f *Fragment) Empty() bool {
	return f == nil || f.SQL == ""
}

// fragmentBuilder 只属于一次绑定
type fragmentBuilder struct {
	sb          strings.Builder
	args        []any
	placeholder Placeholder
	offset      int
}

func newFragmentBuilder(opts []Option) *fragmentBuilder {
	b := &fragmentBuilder{
		placeholder: Question,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// addArg 写占位符, 同时记录参数
func (b *fragmentBuilder) addArg(val any) {
	if b.args == nil {
		// 过滤条件很少超过8个参数
		b.args = make([]any, 0, 8)
	}
	b.args = append(b.args, val)
	b.sb.WriteString(b.placeholder(b.offset + len(b.args)))
}

func (b *fragmentBuilder) fragment() *Fragment {
	return &Fragment{
		SQL:  b.sb.String(),
		Args: b.args,
	}
}
