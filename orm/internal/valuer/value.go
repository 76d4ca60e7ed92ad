package valuer

import (
	"database/sql"

	"github.com/startdusk/go-odata/orm/model"
)

// Value 把一行结果写进实体
type Value interface {
	// SetColumns 按 rows 的列顺序赋值, 只赋值查询到的列
	SetColumns(rows *sql.Rows) error
}

// Creator entity 必须是指向结构体的指针
type Creator func(model *model.Model, entity any) Value
