package orm

import (
	"context"

	"github.com/startdusk/go-odata/orm/internal/valuer"
	"github.com/startdusk/go-odata/orm/model"
)

type core struct {
	model   *model.Model
	dialect Dialect
	creator valuer.Creator
	r       model.Registry

	mdls []Middleware
}

// chain 把中间件套在 root 外面, 第一个中间件在最外层
func (c core) chain(root Handler) Handler {
	for i := len(c.mdls) - 1; i >= 0; i-- {
		root = c.mdls[i](root)
	}
	return root
}

func get[T any](ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	return c.chain(func(ctx context.Context, qc *QueryContext) *QueryResult {
		return getHandler[T](ctx, sess, c, qc)
	})(ctx, qc)
}

func getHandler[T any](ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	qr := &QueryResult{}
	q, err := qc.Builder.Build()
	if err != nil {
		qr.Err = err
		return qr
	}

	rows, err := sess.queryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		qr.Err = err
		return qr
	}
	defer rows.Close()

	if !rows.Next() {
		qr.Err = rows.Err()
		if qr.Err == nil {
			// 返回要和sql包语义一致
			qr.Err = ErrNoRows
		}
		return qr
	}

	// 利用 columns 来解决 select 的列顺序 和 列字段类型的问题
	entity := new(T)
	val := c.creator(qc.Model, entity)
	qr.Err = val.SetColumns(rows)
	qr.Result = entity
	return qr
}

func getMulti[T any](ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	return c.chain(func(ctx context.Context, qc *QueryContext) *QueryResult {
		return getMultiHandler[T](ctx, sess, c, qc)
	})(ctx, qc)
}

func getMultiHandler[T any](ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	qr := &QueryResult{}
	q, err := qc.Builder.Build()
	if err != nil {
		qr.Err = err
		return qr
	}

	rows, err := sess.queryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		qr.Err = err
		return qr
	}
	defer rows.Close()

	res := make([]*T, 0, 16)
	for rows.Next() {
		entity := new(T)
		if err = c.creator(qc.Model, entity).SetColumns(rows); err != nil {
			qr.Err = err
			return qr
		}
		res = append(res, entity)
	}
	qr.Result = res
	qr.Err = rows.Err()
	return qr
}

// Scalar 执行只返回单行单列的查询, 如 SELECT COUNT(*)
// 一样会经过中间件
func Scalar[V any](ctx context.Context, sess Session, qc *QueryContext) (V, error) {
	c := sess.getCore()
	res := c.chain(func(ctx context.Context, qc *QueryContext) *QueryResult {
		return scalarHandler[V](ctx, sess, qc)
	})(ctx, qc)
	var v V
	if val, ok := res.Result.(V); ok {
		v = val
	}
	return v, res.Err
}

func scalarHandler[V any](ctx context.Context, sess Session, qc *QueryContext) *QueryResult {
	qr := &QueryResult{}
	q, err := qc.Builder.Build()
	if err != nil {
		qr.Err = err
		return qr
	}

	rows, err := sess.queryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		qr.Err = err
		return qr
	}
	defer rows.Close()

	if !rows.Next() {
		qr.Err = rows.Err()
		if qr.Err == nil {
			qr.Err = ErrNoRows
		}
		return qr
	}
	var v V
	if err = rows.Scan(&v); err != nil {
		qr.Err = err
		return qr
	}
	qr.Result = v
	return qr
}
