// Package binder 把 OData 解析器生成的 $filter / $orderby / $select 表达式
// 翻译成带占位符的 SQL 片段.
//
// 每次调用都新建一个绑定器, 绑定完成后就丢弃, 不在调用之间共享任何可变状态.
// 绑定器不执行 SQL, 也不打日志, 出错立即返回, 不会返回半成品.
//
//	f, err := binder.BindFilter(
//		odata.Call("contains", odata.Property("Name"), odata.Constant("Bloggs")),
//		resolver,
//	)
//	// f.SQL  == "Name LIKE ?"
//	// f.Args == []any{"%Bloggs%"}
package binder
