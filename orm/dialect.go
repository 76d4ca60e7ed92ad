package orm

var (
	DialectMySQL Dialect = &mysqlDialect{}
	// DialectPostgresSQL 只把标识符换成双引号, 参数占位符仍然是 ?
	// PostgreSQL 驱动只认 $1 $2, 所以目前只能用来构造 SQL, 不能直接执行
	DialectPostgresSQL Dialect = &postgreDialect{}
	DialectSQLite      Dialect = &sqliteDialect{}
)

type Dialect interface {
	// quoter 就是为了解决引号问题
	// MySQL 反引号 `
	// PostgreSQL 是双引号
	quoter() byte
}

type standardSQL struct{}

func (d standardSQL) quoter() byte {
	return '"'
}

type mysqlDialect struct {
	standardSQL
}

func (d mysqlDialect) quoter() byte {
	return '`'
}

type sqliteDialect struct {
	standardSQL
}

func (d sqliteDialect) quoter() byte {
	return '`'
}

type postgreDialect struct {
	standardSQL
}
