package binder

import (
	"strconv"
)

// Placeholder 生成第 n 个参数的占位符, n 从 1 开始
type Placeholder func(n int) string

var (
	// Question MySQL, SQLite 使用 ?
	Question Placeholder = func(int) string { return "?" }
	// Dollar PostgreSQL 使用 $1, $2 ...
	Dollar Placeholder = func(n int) string { return "$" + strconv.Itoa(n) }
)

type Option func(b *fragmentBuilder)

func WithPlaceholder(p Placeholder) Option {
	return func(b *fragmentBuilder) {
		b.placeholder = p
	}
}

// WithArgOffset 片段前面已经有 n 个参数了, 编号占位符从 n+1 开始
func WithArgOffset(n int) Option {
	return func(b *fragmentBuilder) {
		b.offset = n
	}
}
