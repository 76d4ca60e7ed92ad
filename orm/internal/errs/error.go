package errs

import (
	"errors"
	"fmt"
)

var (
	ErrPointerOnly = errors.New("orm: 只支持指向结构体的一级指针")
	ErrNoRows      = errors.New("orm: 没有数据")
)

func NewErrUnsupportedExpressionType(expr any) error {
	return fmt.Errorf("orm: 不支持的表达式 %v", expr)
}

func NewErrUnsupportedSelectable(expr any) error {
	return fmt.Errorf("orm: 不支持的列 %v", expr)
}

func NewErrUnknownField(name string) error {
	return fmt.Errorf("orm: 未知字段 %s", name)
}

func NewErrUnknownColumn(name string) error {
	return fmt.Errorf("orm: 未知数据库列名 %s", name)
}

func NewErrInvalidTagContent(pair string) error {
	return fmt.Errorf("orm: 非法标签值 %s", pair)
}

func NewErrMultipleKeys(entity string) error {
	return fmt.Errorf("orm: %s 只能有一个主键字段", entity)
}

// NewErrFailedToRollbackTx 回滚成功时原样返回业务错误
func NewErrFailedToRollbackTx(bizErr error, rbErr error, panicked bool) error {
	if rbErr == nil {
		return bizErr
	}
	return fmt.Errorf("orm: 回滚事务失败, 业务错误: %w, 回滚错误: %s, 是否panic: %t", bizErr, rbErr, panicked)
}
