package model

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/startdusk/go-odata/orm/internal/errs"
)

const (
	tagColumn = "column"
	tagKey    = "key"
)

// Registry 元数据注册中心
type Registry interface {
	// Get 查找元数据, 找不到就解析并缓存
	Get(val any) (*Model, error)
	// Register 显式注册, 可以用 ModelOption 改写表名列名
	Register(val any, opts ...ModelOption) (*Model, error)
}

// TableName 用户实现这个接口来返回自定义的表名
type TableName interface {
	TableName() string
}

type Model struct {
	TableName string
	// Fields 按结构体字段顺序
	Fields []*Field
	// FieldMap Go 字段名 => 字段
	FieldMap map[string]*Field
	// ColumnMap 列名 => 字段
	ColumnMap map[string]*Field
	// Key 主键, 可能为 nil
	Key *Field
}

type Field struct {
	GoName  string
	ColName string
	Type    reflect.Type
	// Offset 相对于结构体起始地址的偏移量
	Offset uintptr
}

var _ Registry = &registry{}

// registry 代表元数据的注册中心
type registry struct {
	// 用reflect.Type作为key, 同名结构体在不同包下也能区分
	models map[reflect.Type]*Model

	// 使用严格的读写锁, 采用double check的读写锁写法就没有线程覆盖的问题
	lock sync.RWMutex
}

func NewRegistry() *registry {
	return &registry{
		models: make(map[reflect.Type]*Model, 64),
	}
}

func (r *registry) Get(val any) (*Model, error) {
	typ := reflect.TypeOf(val)
	r.lock.RLock()
	m, ok := r.models[typ]
	r.lock.RUnlock()
	if ok {
		return m, nil
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	// double check
	m, ok = r.models[typ]
	if ok {
		return m, nil
	}

	m, err := r.parseModel(val)
	if err != nil {
		return nil, err
	}
	r.models[typ] = m
	return m, nil
}

func (r *registry) Register(val any, opts ...ModelOption) (*Model, error) {
	m, err := r.parseModel(val)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err = opt(m); err != nil {
			return nil, err
		}
	}
	typ := reflect.TypeOf(val)
	r.lock.Lock()
	r.models[typ] = m
	r.lock.Unlock()
	return m, nil
}

// parseModel 只支持输入指针类型的结构体
func (r *registry) parseModel(entity any) (*Model, error) {
	typ := reflect.TypeOf(entity)
	if typ == nil || typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return nil, errs.ErrPointerOnly
	}
	elem := typ.Elem()
	numField := elem.NumField()
	fields := make([]*Field, 0, numField)
	fieldMap := make(map[string]*Field, numField)
	columnMap := make(map[string]*Field, numField)
	var key *Field
	for i := 0; i < numField; i++ {
		fd := elem.Field(i)
		pair, err := r.parseTag(fd.Tag)
		if err != nil {
			return nil, err
		}
		colName := pair[tagColumn]
		if colName == "" {
			colName = underscoreName(fd.Name)
		}
		f := &Field{
			GoName:  fd.Name,
			ColName: colName,
			Type:    fd.Type,
			Offset:  fd.Offset,
		}
		if pair[tagKey] == "true" {
			if key != nil {
				return nil, errs.NewErrMultipleKeys(elem.Name())
			}
			key = f
		}
		fields = append(fields, f)
		fieldMap[fd.Name] = f
		columnMap[colName] = f
	}

	// 没有声明主键, 约定 ID 或 Id 字段为主键
	if key == nil {
		if key = fieldMap["ID"]; key == nil {
			key = fieldMap["Id"]
		}
	}

	var tableName string
	if tbl, ok := entity.(TableName); ok {
		tableName = tbl.TableName()
	}
	if tableName == "" {
		tableName = underscoreName(elem.Name())
	}

	return &Model{
		TableName: tableName,
		Fields:    fields,
		FieldMap:  fieldMap,
		ColumnMap: columnMap,
		Key:       key,
	}, nil
}

// parseTag 形如 `orm:"column=first_name,key=true"`
func (r *registry) parseTag(tag reflect.StructTag) (map[string]string, error) {
	ormTag, ok := tag.Lookup("orm")
	if !ok {
		return map[string]string{}, nil
	}
	pairs := strings.Split(ormTag, ",")
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		segs := strings.Split(pair, "=")
		if len(segs) != 2 {
			return nil, errs.NewErrInvalidTagContent(pair)
		}
		tags[strings.TrimSpace(segs[0])] = strings.TrimSpace(segs[1])
	}
	return tags, nil
}

// underscoreName 驼峰转下划线, CustomerStatusId => customer_status_id
// 连续大写不拆开, CustomerStatusID => customer_statusid
func underscoreName(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, v := range runes {
		if unicode.IsUpper(v) {
			if i != 0 && i < len(runes)-1 && !unicode.IsUpper(runes[i+1]) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(v))
		} else {
			sb.WriteRune(v)
		}
	}
	return sb.String()
}
