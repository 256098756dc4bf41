package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type blogSnapshot struct {
	ID        uint
	Slug      string
	CreatedAt string
}

func snapshotBlogs(t *testing.T, db *gorm.DB) []blogSnapshot {
	t.Helper()

	var rows []blogSnapshot
	require.NoError(t, db.Raw("SELECT id, slug, created_at FROM blogs ORDER BY id").Scan(&rows).Error)
	return rows
}

// newLegacyDB sets up a database the way an older deployment would have
// left it: a blogs table without slug or timestamp columns.
func newLegacyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.Exec("CREATE TABLE blogs (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT)").Error)
	require.NoError(t, db.Exec("INSERT INTO blogs (title) VALUES ('Sample Blog Title!!!'), ('Sample Blog Title'), ('')").Error)
	return db
}

func TestMigrateBackfillsSlugsAndTimestamps(t *testing.T) {
	db := newLegacyDB(t)

	Migrate(db)

	rows := snapshotBlogs(t, db)
	require.Len(t, rows, 3)

	assert.Equal(t, "sample-blog-title", rows[0].Slug)
	assert.Equal(t, "sample-blog-title-1", rows[1].Slug)
	assert.True(t, strings.HasPrefix(rows[2].Slug, "post-"), "empty title gets a placeholder slug, got %q", rows[2].Slug)

	for _, row := range rows {
		assert.NotEmpty(t, row.CreatedAt, "created_at backfilled for row %d", row.ID)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newLegacyDB(t)

	Migrate(db)
	before := snapshotBlogs(t, db)
	columnsBefore, err := tableColumns(db, "blogs")
	require.NoError(t, err)

	Migrate(db)
	after := snapshotBlogs(t, db)
	columnsAfter, err := tableColumns(db, "blogs")
	require.NoError(t, err)

	assert.Equal(t, before, after, "second run must not change any row")
	assert.Equal(t, columnsBefore, columnsAfter, "second run must not change the column set")
}

func TestMigrateCreatesUniqueSlugIndex(t *testing.T) {
	db := newLegacyDB(t)

	Migrate(db)

	// The index is authoritative: inserting a duplicate slug must fail.
	err := db.Exec("INSERT INTO blogs (title, slug) VALUES ('dup', 'sample-blog-title')").Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestMigrateOnFreshDatabase(t *testing.T) {
	db := newMigratedTestDB(t)

	// Running maintenance against an already-current schema is a no-op.
	Migrate(db)

	columns, err := tableColumns(db, "blogs")
	require.NoError(t, err)
	assert.True(t, columns["slug"])
	assert.True(t, columns["created_at"])
}
