//go:build integration

package integration

import (
	"context"
	"database/sql"

	"github.com/startdusk/go-odata/orm"
	"github.com/startdusk/go-odata/orm/internal/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	_ "github.com/go-sql-driver/mysql"
)

type Suite struct {
	suite.Suite

	driver string
	dsn    string

	sqlDB *sql.DB
	db    *orm.DB
}

func (s *Suite) SetupSuite() {
	t := s.T()
	sqlDB, err := sql.Open(s.driver, s.dsn)
	require.NoError(t, err)
	s.sqlDB = sqlDB

	ctx := context.Background()
	require.NoError(t, sqlDB.PingContext(ctx))
	_, err = sqlDB.ExecContext(ctx, test.Customer{}.CreateSQL())
	require.NoError(t, err)
	_, err = sqlDB.ExecContext(ctx, "TRUNCATE TABLE `customer`")
	require.NoError(t, err)
	for _, c := range test.Customers() {
		_, err = sqlDB.ExecContext(ctx,
			"INSERT INTO `customer`(`id`, `name`, `age`, `customer_status_id`, `nickname`) VALUES (?, ?, ?, ?, ?)",
			c.Id, c.Name, c.Age, c.Status, c.Nickname)
		require.NoError(t, err)
	}

	s.db = orm.MustOpenDB(sqlDB)
}

func (s *Suite) TearDownSuite() {
	_, _ = s.sqlDB.Exec("DROP TABLE IF EXISTS `customer`")
	_ = s.sqlDB.Close()
}
