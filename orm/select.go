package orm

import (
	"context"
	"math"

	"github.com/startdusk/go-odata/orm/internal/errs"
)

// Selectable select 指定列
// 避免用户使用数据库列 存在耦合问题(用户应该使用Go结构体的字段名, 就能与数据库表字段解耦)
// 已经解析好的列名用 Raw 传进来
type Selectable interface {
	selectable()
}

var _ Querier[any] = &Selector[any]{}

type Selector[T any] struct {
	builder

	table   string
	where   []Predicate
	columns []Selectable
	orderBy []OrderBy
	limit   int
	offset  int

	sess Session
}

func NewSelector[T any](sess Session) *Selector[T] {
	c := sess.getCore()
	return &Selector[T]{
		builder: builder{
			core:   c,
			quoter: c.dialect.quoter(),
		},
		sess: sess,
	}
}

func (s *Selector[T]) Select(cols ...Selectable) *Selector[T] {
	s.columns = cols
	return s
}

// From 用户传进来的表名, 用户应该保证它的正确性
// 如 `db`.`tableName`, 我们不处理反引号的问题
func (s *Selector[T]) From(table string) *Selector[T] {
	s.table = table
	return s
}

func (s *Selector[T]) Where(where ...Predicate) *Selector[T] {
	s.where = where
	return s
}

func (s *Selector[T]) OrderBy(bys ...OrderBy) *Selector[T] {
	s.orderBy = bys
	return s
}

// Limit 0 代表不限制
func (s *Selector[T]) Limit(limit int) *Selector[T] {
	s.limit = limit
	return s
}

func (s *Selector[T]) Offset(offset int) *Selector[T] {
	s.offset = offset
	return s
}

func (s *Selector[T]) Build() (*Query, error) {
	s.reset()
	var err error
	s.model, err = s.r.Get(new(T))
	if err != nil {
		return nil, err
	}

	s.sb.WriteString("SELECT ")
	if err = s.buildSelectColumns(); err != nil {
		return nil, err
	}
	s.sb.WriteString(" FROM ")
	if s.table == "" {
		s.quote(s.model.TableName)
	} else {
		s.sb.WriteString(s.table)
	}

	if len(s.where) > 0 {
		s.sb.WriteString(" WHERE ")
		if err = s.buildPredicates(s.where); err != nil {
			return nil, err
		}
	}

	if len(s.orderBy) > 0 {
		s.sb.WriteString(" ORDER BY ")
		if err = s.buildOrderBy(s.orderBy); err != nil {
			return nil, err
		}
	}

	if s.limit > 0 {
		s.sb.WriteString(" LIMIT ?")
		s.addArgs(s.limit)
	} else if s.offset > 0 {
		// MySQL 和 SQLite 的 OFFSET 必须跟在 LIMIT 后面
		s.sb.WriteString(" LIMIT ?")
		s.addArgs(int64(math.MaxInt64))
	}
	if s.offset > 0 {
		s.sb.WriteString(" OFFSET ?")
		s.addArgs(s.offset)
	}

	s.sb.WriteByte(';')
	return &Query{
		SQL:  s.sb.String(),
		Args: s.args,
	}, nil
}

// buildSelectColumns 构建 SELECT 的列
func (s *Selector[T]) buildSelectColumns() error {
	if len(s.columns) == 0 {
		// 没有指定列
		s.sb.WriteByte('*')
		return nil
	}
	for i, col := range s.columns {
		if i > 0 {
			s.sb.WriteString(", ")
		}
		switch c := col.(type) {
		case Column:
			if err := s.buildColumn(c); err != nil {
				return err
			}
		case Aggregate:
			// 聚合函数名
			s.sb.WriteString(c.fn)
			s.sb.WriteByte('(')
			if c.arg == "" {
				s.sb.WriteByte('*')
			} else if err := s.buildColumn(C(c.arg)); err != nil {
				return err
			}
			s.sb.WriteByte(')')
		case RawExpr:
			// 用户输入SQL
			s.sb.WriteString(c.raw)
			s.addArgs(c.args...)
		default:
			return errs.NewErrUnsupportedSelectable(col)
		}
	}
	return nil
}

func (s *Selector[T]) Get(ctx context.Context) (*T, error) {
	if err := s.prepareModel(); err != nil {
		return nil, err
	}
	res := get[T](ctx, s.sess, s.core, &QueryContext{
		Type:    "SELECT",
		Builder: s,
		Model:   s.model,
	})
	var t *T
	if val, ok := res.Result.(*T); ok {
		t = val
	}
	return t, res.Err
}

// GetMulti 没有数据时返回空切片, 不返回 ErrNoRows
func (s *Selector[T]) GetMulti(ctx context.Context) ([]*T, error) {
	if err := s.prepareModel(); err != nil {
		return nil, err
	}
	res := getMulti[T](ctx, s.sess, s.core, &QueryContext{
		Type:    "SELECT",
		Builder: s,
		Model:   s.model,
	})
	var ts []*T
	if val, ok := res.Result.([]*T); ok {
		ts = val
	}
	return ts, res.Err
}

// Count SELECT COUNT(*), 只保留 FROM 和 WHERE
func (s *Selector[T]) Count(ctx context.Context) (int64, error) {
	if err := s.prepareModel(); err != nil {
		return 0, err
	}
	cnt := NewSelector[T](s.sess).From(s.table).Where(s.where...).Select(CountAll())
	return Scalar[int64](ctx, s.sess, &QueryContext{
		Type:    "COUNT",
		Builder: cnt,
		Model:   s.model,
	})
}

// prepareModel 中间件需要在构建之前拿到元数据
func (s *Selector[T]) prepareModel() error {
	var err error
	s.model, err = s.r.Get(new(T))
	return err
}
