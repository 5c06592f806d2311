// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

// NewStores opens a fresh in-memory database, migrated and torn down with the
// test. Each call gets its own named shared-cache instance so parallel tests
// never see each other's data.
func NewStores(t *testing.T) *store.Stores {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })
	return store.New(db)
}
