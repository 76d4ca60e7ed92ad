//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/startdusk/go-odata/entityset"
	"github.com/startdusk/go-odata/odata"
	"github.com/startdusk/go-odata/orm"
	"github.com/startdusk/go-odata/orm/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// docker run -d -p 13306:3306 -e MYSQL_ROOT_PASSWORD=root -e MYSQL_DATABASE=integration_test mysql:8.0
func TestMySQLSelect(t *testing.T) {
	suite.Run(t, &SelectSuite{
		Suite{
			driver: "mysql",
			dsn:    "root:root@tcp(localhost:13306)/integration_test",
		},
	})
}

type SelectSuite struct {
	Suite
}

func (s *SelectSuite) TestSelector() {
	db := s.db
	all := test.Customers()
	cases := []struct {
		name    string
		s       *orm.Selector[test.Customer]
		wantRes *test.Customer
		wantErr error
	}{
		{
			name:    "get data",
			s:       orm.NewSelector[test.Customer](db).Where(orm.C("Id").Eq(2)),
			wantRes: all[1],
		},
		{
			name:    "no rows",
			s:       orm.NewSelector[test.Customer](db).Where(orm.C("Id").Eq(1002)),
			wantErr: orm.ErrNoRows,
		},
	}

	for _, c := range cases {
		c := c
		s.T().Run(c.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			res, err := c.s.Get(ctx)
			assert.Equal(t, c.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, c.wantRes, res)
		})
	}
}

func (s *SelectSuite) TestEntitySet() {
	t := s.T()
	es, err := entityset.New[test.Customer](s.db, entityset.WithMaxTop(100))
	require.NoError(t, err)

	name := odata.Property("Name")
	cases := []struct {
		name string
		q    odata.QueryOptions

		wantIds   []int64
		wantCount *int64
		wantErr   error
	}{
		{
			name:    "default order by key",
			wantIds: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "contains and order by",
			q: odata.QueryOptions{
				Filter:  odata.Call("contains", name, odata.Constant("red")),
				OrderBy: odata.OrderBy(odata.Desc("Age")),
				Count:   true,
			},
			wantIds:   []int64{4, 3},
			wantCount: test.ToPtr[int64](2),
		},
		{
			name: "substring and tolower",
			q: odata.QueryOptions{
				Filter: odata.Binary(odata.OpOr,
					odata.Binary(odata.OpEqual,
						odata.Call("substring", name, odata.Constant(1), odata.Constant(2)),
						odata.Constant("Je"),
					),
					odata.Binary(odata.OpEqual, odata.Call("tolower", name), odata.Constant("tom")),
				),
			},
			wantIds: []int64{1, 2},
		},
		{
			name: "nickname is not null",
			q: odata.QueryOptions{
				Filter: odata.Binary(odata.OpNotEqual, odata.Property("Nickname"), odata.Null()),
			},
			wantIds: []int64{2, 5},
		},
		{
			name: "arithmetic and paging",
			q: odata.QueryOptions{
				Filter: odata.Binary(odata.OpEqual,
					odata.Binary(odata.OpModulo, odata.Property("Age"), odata.Constant(5)),
					odata.Constant(0),
				),
				Top:   test.ToPtr(2),
				Skip:  test.ToPtr(1),
				Count: true,
			},
			wantIds:   []int64{3, 4},
			wantCount: test.ToPtr[int64](4),
		},
		{
			name: "unsupported function",
			q: odata.QueryOptions{
				Filter: odata.Call("indexof", name, odata.Constant("o")),
			},
			wantErr: odata.NewErrUnsupportedFunction("indexof"),
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			page, err := es.List(ctx, c.q)
			assert.Equal(t, c.wantErr, err)
			if err != nil {
				return
			}
			ids := make([]int64, 0, len(page.Items))
			for _, item := range page.Items {
				ids = append(ids, item.Id)
			}
			assert.Equal(t, c.wantIds, ids)
			assert.Equal(t, c.wantCount, page.Count)
		})
	}

	got, err := es.Get(context.Background(), 5, odata.Select(odata.PropertyPath{"Name"}))
	require.NoError(t, err)
	assert.Equal(t, "Bloggs", got.Name)

	_, err = es.Get(context.Background(), 404, nil)
	assert.ErrorIs(t, err, odata.ErrEntityNotFound)
}
