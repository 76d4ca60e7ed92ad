package odata

import (
	"time"

	"github.com/google/uuid"
)

// EdmType OData 基本类型名
type EdmType string

const (
	// EdmNull 字面量没有声明类型, 即 null
	EdmNull           EdmType = ""
	EdmString         EdmType = "Edm.String"
	EdmBoolean        EdmType = "Edm.Boolean"
	EdmByte           EdmType = "Edm.Byte"
	EdmSByte          EdmType = "Edm.SByte"
	EdmInt16          EdmType = "Edm.Int16"
	EdmInt32          EdmType = "Edm.Int32"
	EdmInt64          EdmType = "Edm.Int64"
	EdmSingle         EdmType = "Edm.Single"
	EdmDouble         EdmType = "Edm.Double"
	EdmDecimal        EdmType = "Edm.Decimal"
	EdmDate           EdmType = "Edm.Date"
	EdmDateTimeOffset EdmType = "Edm.DateTimeOffset"
	EdmDuration       EdmType = "Edm.Duration"
	EdmGuid           EdmType = "Edm.Guid"
	EdmBinary         EdmType = "Edm.Binary"
)

// EdmTypeOf 推断 Go 值对应的 Edm 类型
// 推断不出来的当作 Edm.String, 交给驱动去转换
func EdmTypeOf(val any) EdmType {
	switch val.(type) {
	case nil:
		return EdmNull
	case string:
		return EdmString
	case bool:
		return EdmBoolean
	case uint8:
		return EdmByte
	case int8:
		return EdmSByte
	case int16:
		return EdmInt16
	case int32, int, uint16:
		return EdmInt32
	case int64, uint32, uint64, uint:
		return EdmInt64
	case float32:
		return EdmSingle
	case float64:
		return EdmDouble
	case time.Time:
		return EdmDateTimeOffset
	case time.Duration:
		return EdmDuration
	case uuid.UUID:
		return EdmGuid
	case []byte:
		return EdmBinary
	default:
		return EdmString
	}
}

// ParseGuid 解析 Guid 字面量, 如 01234567-89ab-cdef-0123-456789abcdef
func ParseGuid(s string) (*ConstantNode, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, NewErrInvalidLiteral(s, EdmGuid)
	}
	return TypedConstant(id, EdmGuid), nil
}
