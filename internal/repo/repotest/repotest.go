// Package repotest opens throwaway in-memory databases for tests.
package repotest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/boutiquechat/internal/repo"
	pkgdb "github.com/Skotchmaster/boutiquechat/pkg/db"
)

func New(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, dsn)
	require.NoError(t, err)

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))

	t.Cleanup(func() { _ = pkgdb.Close(db) })
	return r
}
