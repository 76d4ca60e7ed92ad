package orm

import (
	"strings"

	"github.com/startdusk/go-odata/orm/internal/errs"
)

type builder struct {
	core
	sb     strings.Builder
	args   []any
	quoter byte
}

// reset Build 可能被中间件调用多次, 每次都从头构建
func (b *builder) reset() {
	b.sb.Reset()
	b.args = nil
}

// buildColumn 构造列, name 是 Go 字段名
func (b *builder) buildColumn(c Column) error {
	fd, ok := b.model.FieldMap[c.name]
	if !ok {
		return errs.NewErrUnknownField(c.name)
	}
	b.quote(fd.ColName)
	// 字段使用别名
	if c.alias != "" {
		b.sb.WriteString(" AS ")
		b.quote(c.alias)
	}
	return nil
}

// buildPredicates 多个条件用 AND 连起来
func (b *builder) buildPredicates(ps []Predicate) error {
	p := ps[0]
	for i := 1; i < len(ps); i++ {
		p = p.And(ps[i])
	}
	return b.buildExpression(p)
}

func (b *builder) buildExpression(expr Expression) error {
	switch exp := expr.(type) {
	case Predicate: // 代表一个查询条件
		// 注意: 生成的SQL中, 处理加空格, 加标点符号的问题会让代码很难看, 但这是必须的
		_, lok := exp.left.(Predicate)
		if lok {
			b.sb.WriteByte('(')
		}
		if err := b.buildExpression(exp.left); err != nil {
			return err
		}
		if lok {
			b.sb.WriteByte(')')
		}

		if exp.op != "" {
			// NOT 没有左边
			if exp.left != nil {
				b.sb.WriteByte(' ')
			}
			b.sb.WriteString(exp.op.String())
			b.sb.WriteByte(' ')
		}

		_, rok := exp.right.(Predicate)
		if rok {
			b.sb.WriteByte('(')
		}
		if err := b.buildExpression(exp.right); err != nil {
			return err
		}
		if rok {
			b.sb.WriteByte(')')
		}
	case Column: // 代表列名, 直接拼接列名
		exp.alias = ""
		return b.buildColumn(exp)
	case RawExpr:
		b.sb.WriteByte('(')
		b.sb.WriteString(exp.raw)
		b.addArgs(exp.args...)
		b.sb.WriteByte(')')
	case value: // 代表参数, 加入参数列表
		b.sb.WriteByte('?')
		b.addArgs(exp.val)
	case nil:
		return nil
	default:
		return errs.NewErrUnsupportedExpressionType(expr)
	}
	return nil
}

func (b *builder) buildOrderBy(bys []OrderBy) error {
	for i, by := range bys {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		switch exp := by.expr.(type) {
		case Column:
			if err := b.buildColumn(exp); err != nil {
				return err
			}
		case RawExpr:
			// 排序的原生表达式不加括号
			b.sb.WriteString(exp.raw)
			b.addArgs(exp.args...)
		default:
			return errs.NewErrUnsupportedExpressionType(by.expr)
		}
		if by.desc {
			b.sb.WriteString(" DESC")
		} else {
			b.sb.WriteString(" ASC")
		}
	}
	return nil
}

func (b *builder) quote(name string) {
	b.sb.WriteByte(b.quoter)
	b.sb.WriteString(name)
	b.sb.WriteByte(b.quoter)
}

func (b *builder) addArgs(args ...any) {
	if len(args) == 0 {
		return
	}
	if b.args == nil {
		// 很少有查询能够超过8个参数
		b.args = make([]any, 0, 8)
	}
	b.args = append(b.args, args...)
}
