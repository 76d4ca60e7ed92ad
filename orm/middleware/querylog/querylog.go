package querylog

import (
	"context"

	"github.com/startdusk/go-odata/orm"
)

type MiddlewareBuilder struct {
	// SQL参数可能有敏感数据, 是否打印参数交给 logFunc 决定
	logFunc func(query string, args []any)
}

// NewMiddlewareBuilder fn 为 nil 时不打印
func NewMiddlewareBuilder(fn func(query string, args []any)) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		logFunc: fn,
	}
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			q, err := qc.Builder.Build()
			if err != nil {
				return &orm.QueryResult{
					Err: err,
				}
			}
			if m.logFunc != nil {
				m.logFunc(q.SQL, q.Args)
			}
			return next(ctx, qc)
		}
	}
}
