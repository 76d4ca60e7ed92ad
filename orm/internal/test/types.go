// Package test 是用于辅助测试的包。仅限于内部使用
package test

import (
	"database/sql"
)

// Customer 集成测试用的实体, 覆盖列名映射和可空列
type Customer struct {
	Id       int64
	Name     string
	Age      int
	Status   int `orm:"column=customer_status_id"`
	Nickname *sql.NullString
}

// CreateSQL MySQL 建表语句
func (Customer) CreateSQL() string {
	return "CREATE TABLE IF NOT EXISTS `customer` (" +
		"`id` BIGINT PRIMARY KEY," +
		"`name` VARCHAR(64) NOT NULL," +
		"`age` INT NOT NULL," +
		"`customer_status_id` INT NOT NULL," +
		"`nickname` VARCHAR(64) NULL" +
		")"
}

// Customers 固定的测试数据, 按 id 升序
func Customers() []*Customer {
	return []*Customer{
		{Id: 1, Name: "Tom", Age: 18, Status: 1},
		{Id: 2, Name: "Jerry", Age: 25, Status: 2, Nickname: &sql.NullString{String: "mouse", Valid: true}},
		{Id: 3, Name: "Fred", Age: 30, Status: 1},
		{Id: 4, Name: "Freda", Age: 40, Status: 2},
		{Id: 5, Name: "Bloggs", Age: 35, Status: 1, Nickname: &sql.NullString{String: "Joe", Valid: true}},
	}
}

func ToPtr[T any](t T) *T {
	return &t
}
