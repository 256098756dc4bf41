package database

import (
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableration/site-backend/models"
)

func TestEnsureSchemaIsRepeatable(t *testing.T) {
	db := newTestDB(t)

	EnsureSchema(db)
	EnsureSchema(db)

	for _, table := range []string{"users", "blogs", "blog_tags", "blog_references", "events", "event_items", "announcements", "highlights"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestEnsureSeedAdmin(t *testing.T) {
	db := newMigratedTestDB(t)

	require.NoError(t, EnsureSeedAdmin(db, "admin@example.com", "first-password"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&user).Error)
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "first-password", user.Password, "password must be stored hashed")

	match, err := argon2id.ComparePasswordAndHash("first-password", user.Password)
	require.NoError(t, err)
	assert.True(t, match)

	// Second boot must not touch the row, even with a different password.
	require.NoError(t, EnsureSeedAdmin(db, "admin@example.com", "other-password"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&reloaded).Error)
	assert.Equal(t, user.Password, reloaded.Password)
}
