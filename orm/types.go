package orm

import (
	"context"
)

// Querier 用于 `SELECT` 语句
type Querier[T any] interface {
	Get(ctx context.Context) (*T, error)
	GetMulti(ctx context.Context) ([]*T, error)
}

type QueryBuilder interface {
	Build() (*Query, error)
}

var _ QueryBuilder = &Query{}

type Query struct {
	SQL  string
	Args []any
}

// Build 构建好的查询可以直接交给 Scalar 执行
func (q *Query) Build() (*Query, error) {
	return q, nil
}
