package valuer

import (
	"database/sql"
	"reflect"

	"github.com/startdusk/go-odata/orm/internal/errs"
	"github.com/startdusk/go-odata/orm/model"
)

type reflectValue struct {
	model *model.Model
	// val 是 reflect.ValueOf(entity).Elem()
	val reflect.Value
}

var _ Creator = NewReflectValue

func NewReflectValue(model *model.Model, entity any) Value {
	return reflectValue{
		model: model,
		val:   reflect.ValueOf(entity).Elem(),
	}
}

func (r reflectValue) SetColumns(rows *sql.Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	// $select 只查部分列时, 没查到的字段保持零值
	vals := make([]any, 0, len(columns))
	fields := make([]*model.Field, 0, len(columns))
	for _, colName := range columns {
		fd, ok := r.model.ColumnMap[colName]
		if !ok {
			return errs.NewErrUnknownColumn(colName)
		}
		// reflect.New 得到的是 *fd.Type
		vals = append(vals, reflect.New(fd.Type).Interface())
		fields = append(fields, fd)
	}

	if err = rows.Scan(vals...); err != nil {
		return err
	}

	for i, fd := range fields {
		r.val.FieldByName(fd.GoName).Set(reflect.ValueOf(vals[i]).Elem())
	}
	return nil
}
