package orm

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/startdusk/go-odata/orm/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Selector_Build(t *testing.T) {
	db := memoryDB(t)
	cases := []struct {
		name    string
		builder QueryBuilder

		wantQuery *Query
		wantErr   error
	}{
		{
			name:    "select_from",
			builder: NewSelector[TestModel](db).From("`TEST_MODEL`"),
			wantQuery: &Query{
				SQL: "SELECT * FROM `TEST_MODEL`;",
			},
		},
		{
			name:    "select_from_db",
			builder: NewSelector[TestModel](db).From("`my_db`.`TEST_MODEL`"),
			wantQuery: &Query{
				SQL: "SELECT * FROM `my_db`.`TEST_MODEL`;",
			},
		},
		{
			name:    "select_no_from",
			builder: NewSelector[TestModel](db),
			wantQuery: &Query{
				SQL: "SELECT * FROM `test_model`;",
			},
		},
		{
			name:    "select_empty_where",
			builder: NewSelector[TestModel](db).Where(),
			wantQuery: &Query{
				SQL: "SELECT * FROM `test_model`;",
			},
		},
		{
			name:    "where age=18",
			builder: NewSelector[TestModel](db).Where(C("Age").Eq(18)),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE `age` = ?;",
				Args: []any{18},
			},
		},
		{
			name:    "where not(age=18)",
			builder: NewSelector[TestModel](db).Where(Not(C("Age").Eq(18))),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE NOT (`age` = ?);",
				Args: []any{18},
			},
		},
		{
			name:    "where age>18 and first_name=tom",
			builder: NewSelector[TestModel](db).Where(C("Age").Gt(18), C("FirstName").Eq("Tom")),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE (`age` > ?) AND (`first_name` = ?);",
				Args: []any{18, "Tom"},
			},
		},
		{
			name:    "where age<18 or first_name=tom",
			builder: NewSelector[TestModel](db).Where(C("Age").Lt(18).Or(C("FirstName").Eq("Tom"))),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE (`age` < ?) OR (`first_name` = ?);",
				Args: []any{18, "Tom"},
			},
		},
		{
			name:    "raw predicate",
			builder: NewSelector[TestModel](db).Where(Raw("(age > ?) AND (first_name LIKE ?)", 18, "%om%").AsPredicate()),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE ((age > ?) AND (first_name LIKE ?));",
				Args: []any{18, "%om%"},
			},
		},
		{
			name: "raw predicate and column",
			builder: NewSelector[TestModel](db).Where(
				Raw("age > ?", 18).AsPredicate(),
				C("ID").Eq(1),
			),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` WHERE ((age > ?)) AND (`id` = ?);",
				Args: []any{18, 1},
			},
		},
		{
			name:    "select columns",
			builder: NewSelector[TestModel](db).Select(C("ID"), C("FirstName").As("name")),
			wantQuery: &Query{
				SQL: "SELECT `id`, `first_name` AS `name` FROM `test_model`;",
			},
		},
		{
			name:    "select raw columns",
			builder: NewSelector[TestModel](db).Select(Raw("id"), Raw("first_name")),
			wantQuery: &Query{
				SQL: "SELECT id, first_name FROM `test_model`;",
			},
		},
		{
			name:    "select aggregate",
			builder: NewSelector[TestModel](db).Select(Avg("Age"), CountAll()),
			wantQuery: &Query{
				SQL: "SELECT AVG(`age`), COUNT(*) FROM `test_model`;",
			},
		},
		{
			name:    "select sum max min count",
			builder: NewSelector[TestModel](db).Select(Sum("Age"), Max("Age"), Min("Age"), Count("ID")),
			wantQuery: &Query{
				SQL: "SELECT SUM(`age`), MAX(`age`), MIN(`age`), COUNT(`id`) FROM `test_model`;",
			},
		},
		{
			name:    "invalid aggregate column",
			builder: NewSelector[TestModel](db).Select(Max("Invalid")),
			wantErr: errs.NewErrUnknownField("Invalid"),
		},
		{
			name:    "order by",
			builder: NewSelector[TestModel](db).OrderBy(Asc("Age"), Desc("ID")),
			wantQuery: &Query{
				SQL: "SELECT * FROM `test_model` ORDER BY `age` ASC, `id` DESC;",
			},
		},
		{
			name:    "raw order by",
			builder: NewSelector[TestModel](db).OrderBy(Raw("first_name").Desc(), Raw("id").Asc()),
			wantQuery: &Query{
				SQL: "SELECT * FROM `test_model` ORDER BY first_name DESC, id ASC;",
			},
		},
		{
			name:    "limit offset",
			builder: NewSelector[TestModel](db).OrderBy(Asc("ID")).Limit(10).Offset(20),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` ORDER BY `id` ASC LIMIT ? OFFSET ?;",
				Args: []any{10, 20},
			},
		},
		{
			name:    "offset only",
			builder: NewSelector[TestModel](db).Offset(5),
			wantQuery: &Query{
				SQL:  "SELECT * FROM `test_model` LIMIT ? OFFSET ?;",
				Args: []any{int64(math.MaxInt64), 5},
			},
		},
		{
			name:    "invalid column",
			builder: NewSelector[TestModel](db).Where(Not(C("Invalid").Eq(18))),
			wantErr: errs.NewErrUnknownField("Invalid"),
		},
		{
			name:    "invalid select column",
			builder: NewSelector[TestModel](db).Select(C("Invalid")),
			wantErr: errs.NewErrUnknownField("Invalid"),
		},
		{
			name:    "invalid order by column",
			builder: NewSelector[TestModel](db).OrderBy(Asc("Invalid")),
			wantErr: errs.NewErrUnknownField("Invalid"),
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			q, err := c.builder.Build()
			assert.Equal(t, c.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, c.wantQuery, q)
		})
	}
}

func Test_Selector_Build_Twice(t *testing.T) {
	s := NewSelector[TestModel](memoryDB(t)).Where(C("Age").Eq(18)).Limit(1)
	first, err := s.Build()
	require.NoError(t, err)
	second, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_Selector_Postgres(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := MustOpenDB(mockDB, DBWithDialect(DialectPostgresSQL))

	q, err := NewSelector[TestModel](db).Select(C("ID")).Where(C("Age").Eq(18)).Build()
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "test_model" WHERE "age" = ?;`, q.SQL)
}

func Test_Selector_Get(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := OpenDB(mockDB)
	require.NoError(t, err)

	queryErr := errors.New("query error")
	cases := []struct {
		name     string
		query    string
		mockErr  error
		mockRows *sqlmock.Rows

		wantErr error
		wantVal *TestModel
	}{
		{
			name:    "query error",
			query:   "SELECT .*",
			mockErr: queryErr,
			wantErr: queryErr,
		},
		{
			name:     "no rows",
			query:    "SELECT .*",
			mockRows: sqlmock.NewRows([]string{"id"}),
			wantErr:  ErrNoRows,
		},
		{
			name:     "get data",
			query:    "SELECT .*",
			mockRows: sqlmock.NewRows([]string{"id", "first_name", "age", "last_name"}).AddRow(1, "Tom", 18, "Jerry"),
			wantVal: &TestModel{
				ID:        1,
				FirstName: "Tom",
				Age:       18,
				LastName:  &sql.NullString{String: "Jerry", Valid: true},
			},
		},
		{
			name:     "unknown column",
			query:    "SELECT .*",
			mockRows: sqlmock.NewRows([]string{"nickname"}).AddRow("Tom"),
			wantErr:  errs.NewErrUnknownColumn("nickname"),
		},
	}

	for _, c := range cases {
		exp := mock.ExpectQuery(c.query)
		if c.mockErr != nil {
			exp.WillReturnError(c.mockErr)
		} else {
			exp.WillReturnRows(c.mockRows)
		}
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := NewSelector[TestModel](db).Get(context.Background())
			assert.Equal(t, c.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, c.wantVal, res)
		})
	}
}

func Test_Selector_GetMulti(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := MustOpenDB(mockDB, DBUseReflect())

	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT .*").WillReturnRows(
		sqlmock.NewRows([]string{"id", "first_name"}).AddRow(1, "Tom").AddRow(2, "Jerry"),
	)

	res, err := NewSelector[TestModel](db).GetMulti(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = NewSelector[TestModel](db).GetMulti(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*TestModel{
		{ID: 1, FirstName: "Tom"},
		{ID: 2, FirstName: "Jerry"},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Selector_Count(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()
	db := MustOpenDB(mockDB)

	// 排序和分页不影响总数
	mock.ExpectQuery("SELECT COUNT(*) FROM `test_model` WHERE `age` = ?;").
		WithArgs(18).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(42))

	cnt, err := NewSelector[TestModel](db).
		Where(C("Age").Eq(18)).
		OrderBy(Asc("ID")).
		Limit(10).
		Offset(20).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Scalar_PrebuiltQuery(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()
	db := MustOpenDB(mockDB)

	mock.ExpectQuery("SELECT COUNT(*) FROM `test_model`;").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(7))
	mock.ExpectQuery("SELECT COUNT(*) FROM `test_model`;").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}))

	q := &Query{SQL: "SELECT COUNT(*) FROM `test_model`;"}
	cnt, err := Scalar[int64](context.Background(), db, &QueryContext{Type: "COUNT", Builder: q})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cnt)

	_, err = Scalar[int64](context.Background(), db, &QueryContext{Type: "COUNT", Builder: q})
	assert.Equal(t, ErrNoRows, err)
}

func Test_Middleware_Order(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	var trace []string
	mdl := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, qc *QueryContext) *QueryResult {
				trace = append(trace, name+":"+qc.Type)
				return next(ctx, qc)
			}
		}
	}
	db := MustOpenDB(mockDB, DBWithMiddlewares(mdl("first"), mdl("second")))

	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	_, err = NewSelector[TestModel](db).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first:SELECT", "second:SELECT"}, trace)
}

type TestModel struct {
	ID        int64
	FirstName string
	Age       int8
	LastName  *sql.NullString
}
