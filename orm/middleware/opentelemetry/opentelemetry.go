package opentelemetry

import (
	"context"
	"fmt"

	"github.com/startdusk/go-odata/orm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/startdusk/go-odata/orm/middleware/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	if m.Tracer == nil {
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			var tableName string
			if qc.Model != nil {
				tableName = qc.Model.TableName
			}
			// span name: SELECT-customer
			spanCtx, span := m.Tracer.Start(ctx, fmt.Sprintf("%s-%s", qc.Type, tableName))
			defer span.End()

			// 不记录参数, 参数可能很大也可能是敏感数据
			if q, err := qc.Builder.Build(); err == nil {
				span.SetAttributes(attribute.String("sql", q.SQL))
			}
			span.SetAttributes(
				attribute.String("table", tableName),
				attribute.String("component", "orm"),
			)

			res := next(spanCtx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			}
			return res
		}
	}
}
