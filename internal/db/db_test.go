package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsDefaultCategoriesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "studio.db")

	gdb, err := Open(Options{Driver: "sqlite", DSN: path})
	require.NoError(t, err)

	var categories []PortfolioCategory
	require.NoError(t, gdb.Order("id asc").Find(&categories).Error)
	require.Len(t, categories, len(DefaultCategories))
	assert.Equal(t, "weddings", categories[0].Slug)

	require.NoError(t, SeedCategories(gdb))
	var count int64
	require.NoError(t, gdb.Model(&PortfolioCategory{}).Count(&count).Error)
	assert.EqualValues(t, len(DefaultCategories), count)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})
	require.Error(t, err)
}
