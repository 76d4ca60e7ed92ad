package odata

// 查询参数名, 错误信息里用来标记是哪个参数出的问题
const (
	OptionFilter  = "$filter"
	OptionOrderBy = "$orderby"
	OptionSelect  = "$select"
	OptionTop     = "$top"
	OptionSkip    = "$skip"
)

type OrderByDirection int

const (
	Ascending OrderByDirection = iota
	Descending
)

func (d OrderByDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// OrderByItem 一个排序键, 第一个是主排序键
type OrderByItem struct {
	Path      PropertyPath
	Direction OrderByDirection
}

type OrderByClause struct {
	Items []OrderByItem
}

type SelectItem struct {
	Path PropertyPath
}

// SelectClause $select
// AllSelected 为 true 或者包含 * 时代表选择全部列
type SelectClause struct {
	AllSelected bool
	Items       []SelectItem
}

// QueryOptions 解析后的查询参数, nil 代表请求里没有这个参数
type QueryOptions struct {
	Filter  Node
	OrderBy *OrderByClause
	Select  *SelectClause
	Top     *int
	Skip    *int
	Count   bool
}

// OrderBy(Desc("Status"), Asc("Name")) => Status desc,Name
func OrderBy(items ...OrderByItem) *OrderByClause {
	return &OrderByClause{Items: items}
}

func Asc(segments ...string) OrderByItem {
	return OrderByItem{Path: segments}
}

func Desc(segments ...string) OrderByItem {
	return OrderByItem{Path: segments, Direction: Descending}
}

func Select(paths ...PropertyPath) *SelectClause {
	items := make([]SelectItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, SelectItem{Path: p})
	}
	return &SelectClause{Items: items}
}

func SelectAll() *SelectClause {
	return &SelectClause{AllSelected: true}
}
