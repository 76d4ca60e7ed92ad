package readonly

import (
	"context"
	"errors"
	"fmt"

	"github.com/startdusk/go-odata/orm"
)

var ErrReadOnly = errors.New("orm: 只读连接")

// MiddlewareBuilder 只放行 SELECT 和 COUNT
type MiddlewareBuilder struct {
}

func NewMiddlewareBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			if qc.Type != "SELECT" && qc.Type != "COUNT" {
				return &orm.QueryResult{
					Err: fmt.Errorf("%w, 禁止执行 %s 语句", ErrReadOnly, qc.Type),
				}
			}
			return next(ctx, qc)
		}
	}
}
