package odata

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误分类, 配合 errors.Is 使用
// 具体的错误都是 *Error, Unwrap 之后是下面其中一个
var (
	ErrUnsupportedOperator     = errors.New("odata: 不支持的运算符")
	ErrUnsupportedFunction     = errors.New("odata: 不支持的函数")
	ErrUnsupportedPropertyPath = errors.New("odata: 不支持嵌套属性路径")
	ErrUnsupportedExpression   = errors.New("odata: 不支持的表达式")
	ErrUnknownProperty         = errors.New("odata: 未知属性")
	ErrInvalidFunctionArgument = errors.New("odata: 非法函数参数")
	ErrInvalidLiteral          = errors.New("odata: 非法字面量")
	ErrInvalidQueryOption      = errors.New("odata: 非法查询参数")
	ErrInvalidArgument         = errors.New("odata: 缺少必要参数")
	ErrEntityNotFound          = errors.New("odata: 实体不存在")
)

// ErrorCode 和 HTTP 状态码一一对应, 由 HTTP 层转换成响应
type ErrorCode int

const (
	CodeBadRequest     ErrorCode = http.StatusBadRequest
	CodeNotFound       ErrorCode = http.StatusNotFound
	CodeInternal       ErrorCode = http.StatusInternalServerError
	CodeNotImplemented ErrorCode = http.StatusNotImplemented
)

// Error 绑定过程中的错误
// Target 标记是哪个查询参数出错, 如 $filter, 可以为空
type Error struct {
	Code    ErrorCode
	Message string
	Target  string

	kind error
}

func (e *Error) Error() string {
	if e.Target == "" {
		return "odata: " + e.Message
	}
	return fmt.Sprintf("odata: %s (%s)", e.Message, e.Target)
}

func (e *Error) Unwrap() error {
	return e.kind
}

func (e *Error) StatusCode() int {
	return int(e.Code)
}

func NewErrUnsupportedBinaryOperator(kind BinaryOperatorKind) error {
	return &Error{
		Code:    CodeNotImplemented,
		Message: fmt.Sprintf("运算符 %s 未实现", kind),
		kind:    ErrUnsupportedOperator,
	}
}

func NewErrUnsupportedUnaryOperator(kind UnaryOperatorKind) error {
	return &Error{
		Code:    CodeNotImplemented,
		Message: fmt.Sprintf("运算符 %s 未实现", kind),
		Target:  OptionFilter,
		kind:    ErrUnsupportedOperator,
	}
}

func NewErrUnsupportedFunction(name string) error {
	return &Error{
		Code:    CodeNotImplemented,
		Message: fmt.Sprintf("函数 %s 未实现", name),
		Target:  OptionFilter,
		kind:    ErrUnsupportedFunction,
	}
}

func NewErrUnsupportedExpression(node Node) error {
	return &Error{
		Code:    CodeNotImplemented,
		Message: fmt.Sprintf("不支持的表达式 %T", node),
		Target:  OptionFilter,
		kind:    ErrUnsupportedExpression,
	}
}

func NewErrUnsupportedPropertyPath(path PropertyPath, target string) error {
	return &Error{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf("不支持嵌套属性路径 %s", path),
		Target:  target,
		kind:    ErrUnsupportedPropertyPath,
	}
}

func NewErrUnknownProperty(property, entity, target string) error {
	return &Error{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf("实体 %s 没有属性 %s", entity, property),
		Target:  target,
		kind:    ErrUnknownProperty,
	}
}

func NewErrInvalidFunctionArgument(name string) error {
	return &Error{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf("函数 %s 的参数不合法", name),
		Target:  OptionFilter,
		kind:    ErrInvalidFunctionArgument,
	}
}

func NewErrInvalidLiteral(literal string, typ EdmType) error {
	return &Error{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf("%s 不是合法的 %s", literal, typ),
		kind:    ErrInvalidLiteral,
	}
}

func NewErrInvalidQueryOption(option string, val any) error {
	return &Error{
		Code:    CodeBadRequest,
		Message: fmt.Sprintf("非法值 %v", val),
		Target:  option,
		kind:    ErrInvalidQueryOption,
	}
}

// NewErrInvalidArgument 调用方没有传必要的协作者, 和请求内容无关
func NewErrInvalidArgument(name string) error {
	return &Error{
		Code:    CodeInternal,
		Message: fmt.Sprintf("%s 不能为空", name),
		kind:    ErrInvalidArgument,
	}
}

func NewErrEntityNotFound(entity string, key any) error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("找不到 %s(%v)", entity, key),
		kind:    ErrEntityNotFound,
	}
}
