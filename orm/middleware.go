package orm

import (
	"context"

	"github.com/startdusk/go-odata/orm/model"
)

type QueryContext struct {
	// Type 声明查询类型 即 SELECT 和 COUNT
	Type string

	// Builder 使用的时候, 大多数情况下你需要转换到具体的类型才能篡改查询
	Builder QueryBuilder

	Model *model.Model
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult

type QueryResult struct {
	// Result 在不同的查询里面, 类型是不同的
	// Selector.Get里面, 这会是单个结果
	// Selector.GetMulti, 这会是一个切片
	// Scalar 里面是那一列的值
	Result any
	Err    error
}
