// Package entityset 把 OData 查询选项应用到一张表上
package entityset

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/startdusk/go-odata/binder"
	"github.com/startdusk/go-odata/odata"
	"github.com/startdusk/go-odata/orm"
	"github.com/startdusk/go-odata/orm/model"
	"golang.org/x/sync/errgroup"
)

// Page 一页结果, Count 只有请求了 $count 才有值
type Page[T any] struct {
	Items []*T
	Count *int64
}

type EntitySet[T any] struct {
	sess     orm.Session
	model    *model.Model
	resolver modelResolver
	opts     options

	// 不带条件的 COUNT 只构建一次
	countOnce  sync.Once
	countQuery *orm.Query
	countErr   error
}

func New[T any](sess orm.Session, opts ...Option) (*EntitySet[T], error) {
	if sess == nil {
		return nil, odata.NewErrInvalidArgument("Session")
	}
	m, err := orm.ModelOf[T](sess)
	if err != nil {
		return nil, err
	}
	es := &EntitySet[T]{
		sess:  sess,
		model: m,
		resolver: modelResolver{
			entity: reflect.TypeOf(new(T)).Elem().Name(),
			model:  m,
		},
	}
	for _, opt := range opts {
		opt(&es.opts)
	}
	return es, nil
}

// Resolver 实体属性到列名的映射, 可以直接交给 binder 使用
func (es *EntitySet[T]) Resolver() binder.ColumnResolver {
	return es.resolver
}

func (es *EntitySet[T]) List(ctx context.Context, q odata.QueryOptions) (*Page[T], error) {
	limit, err := es.limit(q.Top)
	if err != nil {
		return nil, err
	}
	var offset int
	if q.Skip != nil {
		if *q.Skip < 0 {
			return nil, odata.NewErrInvalidQueryOption(odata.OptionSkip, *q.Skip)
		}
		offset = *q.Skip
	}

	where, err := binder.BindFilter(q.Filter, es.resolver)
	if err != nil {
		return nil, err
	}
	var bys orderBys
	if err = binder.BindOrderBy(q.OrderBy, es.resolver, &bys); err != nil {
		return nil, err
	}
	cols, err := binder.BindSelect(q.Select, es.resolver)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: []*T{}}
	list := func(ctx context.Context) error {
		// $top=0 不用查
		if limit == 0 {
			return nil
		}
		sel := orm.NewSelector[T](es.sess).
			Select(selectables(cols)...).
			Where(predicates(where)...).
			OrderBy(bys...).
			Offset(offset)
		if limit > 0 {
			sel = sel.Limit(limit)
		}
		items, err := sel.GetMulti(ctx)
		if err != nil {
			return err
		}
		page.Items = items
		return nil
	}
	if !q.Count {
		if err = list(ctx); err != nil {
			return nil, err
		}
		return page, nil
	}

	var cnt int64
	count := func(ctx context.Context) (err error) {
		cnt, err = es.count(ctx, where)
		return err
	}
	// 事务里的查询共用一个连接, 只能一个一个来
	if _, ok := es.sess.(*orm.Tx); ok {
		if err = list(ctx); err != nil {
			return nil, err
		}
		if err = count(ctx); err != nil {
			return nil, err
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error { return list(egCtx) })
		eg.Go(func() error { return count(egCtx) })
		if err = eg.Wait(); err != nil {
			return nil, err
		}
	}
	page.Count = &cnt
	return page, nil
}

// limit -1 表示不限制
func (es *EntitySet[T]) limit(top *int) (int, error) {
	if top == nil {
		if es.opts.maxTop > 0 {
			return es.opts.maxTop, nil
		}
		return -1, nil
	}
	if *top < 0 {
		return 0, odata.NewErrInvalidQueryOption(odata.OptionTop, *top)
	}
	if es.opts.maxTop > 0 && *top > es.opts.maxTop {
		return es.opts.maxTop, nil
	}
	return *top, nil
}

// Count 满足 filter 的行数, filter 为 nil 时统计全表
func (es *EntitySet[T]) Count(ctx context.Context, filter odata.Node) (int64, error) {
	where, err := binder.BindFilter(filter, es.resolver)
	if err != nil {
		return 0, err
	}
	return es.count(ctx, where)
}

func (es *EntitySet[T]) count(ctx context.Context, where *binder.Fragment) (int64, error) {
	if !where.Empty() {
		return orm.NewSelector[T](es.sess).Where(predicates(where)...).Count(ctx)
	}
	es.countOnce.Do(func() {
		es.countQuery, es.countErr = orm.NewSelector[T](es.sess).Select(orm.CountAll()).Build()
	})
	if es.countErr != nil {
		return 0, es.countErr
	}
	return orm.Scalar[int64](ctx, es.sess, &orm.QueryContext{
		Type:    "COUNT",
		Builder: es.countQuery,
		Model:   es.model,
	})
}

// Get 按主键查找, 找不到返回 odata.ErrEntityNotFound
func (es *EntitySet[T]) Get(ctx context.Context, key any, sel *odata.SelectClause) (*T, error) {
	where, err := binder.BindKey(key, es.resolver)
	if err != nil {
		return nil, err
	}
	cols, err := binder.BindSelect(sel, es.resolver)
	if err != nil {
		return nil, err
	}
	res, err := orm.NewSelector[T](es.sess).
		Select(selectables(cols)...).
		Where(predicates(where)...).
		Get(ctx)
	if errors.Is(err, orm.ErrNoRows) {
		if c, ok := key.(*odata.ConstantNode); ok {
			key = c.Value
		}
		return nil, odata.NewErrEntityNotFound(es.resolver.entity, key)
	}
	return res, err
}
