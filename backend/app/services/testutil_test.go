package services

import (
	"os"
	"path/filepath"
	"testing"

	"beacon-guard/backend/app/catalog"
	"beacon-guard/backend/app/db"
	"beacon-guard/backend/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "panel.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.Registration{},
		&models.Module{},
		&models.DomCommand{},
		&models.DashboardRegistration{},
	))
	return gdb
}

func newTestCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n+".js"), []byte("// payload"), 0o644))
	}
	c, err := catalog.New(dir)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func createAgent(t *testing.T, gdb *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.Agent{
		ID:        id,
		Domain:    "victim.example",
		UserAgent: "Mozilla/5.0",
		RemoteIP:  "203.0.113.7",
	}).Error)
}
