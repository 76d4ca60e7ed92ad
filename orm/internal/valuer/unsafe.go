package valuer

import (
	"database/sql"
	"reflect"
	"unsafe"

	"github.com/startdusk/go-odata/orm/internal/errs"
	"github.com/startdusk/go-odata/orm/model"
)

type unsafeValue struct {
	model *model.Model
	// 结构体的起始地址
	address unsafe.Pointer
}

var _ Creator = NewUnsafeValue

func NewUnsafeValue(model *model.Model, entity any) Value {
	return unsafeValue{
		model:   model,
		address: reflect.ValueOf(entity).UnsafePointer(),
	}
}

func (u unsafeValue) SetColumns(rows *sql.Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	vals := make([]any, 0, len(columns))
	for _, colName := range columns {
		fd, ok := u.model.ColumnMap[colName]
		if !ok {
			return errs.NewErrUnknownColumn(colName)
		}
		// 字段地址 = 起始地址 + 偏移量, Scan 直接写到字段上
		fdAddress := unsafe.Add(u.address, fd.Offset)
		vals = append(vals, reflect.NewAt(fd.Type, fdAddress).Interface())
	}
	return rows.Scan(vals...)
}
