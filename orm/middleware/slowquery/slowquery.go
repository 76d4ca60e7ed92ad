package slowquery

import (
	"context"
	"time"

	"github.com/startdusk/go-odata/orm"
)

type MiddlewareBuilder struct {
	logFunc func(query string, args []any, duration time.Duration)

	// 慢查询阈值, 如100ms
	threshold time.Duration
}

func NewMiddlewareBuilder(threshold time.Duration, fn func(query string, args []any, duration time.Duration)) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		logFunc:   fn,
		threshold: threshold,
	}
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			startTime := time.Now()
			defer func() {
				duration := time.Since(startTime)
				if duration <= m.threshold || m.logFunc == nil {
					return
				}

				// 构造失败说明SQL都没执行, 不用记录
				q, err := qc.Builder.Build()
				if err == nil {
					m.logFunc(q.SQL, q.Args, duration)
				}
			}()
			return next(ctx, qc)
		}
	}
}
