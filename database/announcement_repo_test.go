package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableration/site-backend/models"
)

func TestFindActiveFiltersByExpiry(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewAnnouncementRepo(db)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := models.Announcement{Title: "expired", Active: true, ExpiresAt: &past}
	require.NoError(t, repo.Add(&expired))
	upcoming := models.Announcement{Title: "upcoming", Active: true, ExpiresAt: &future}
	require.NoError(t, repo.Add(&upcoming))
	evergreen := models.Announcement{Title: "evergreen", Active: true}
	require.NoError(t, repo.Add(&evergreen))
	inactive := models.Announcement{Title: "inactive", Active: false}
	require.NoError(t, repo.Add(&inactive))

	active, err := repo.FindActive(now)
	require.NoError(t, err)

	titles := make([]string, 0, len(active))
	for _, a := range active {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"upcoming", "evergreen"}, titles)
}

func TestExpiredRowKeepsActiveFlag(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewAnnouncementRepo(db)

	past := time.Now().Add(-time.Minute)
	expired := models.Announcement{Title: "expired", Active: true, ExpiresAt: &past}
	require.NoError(t, repo.Add(&expired))

	// Expiry is only a read-time filter; nothing flips the flag.
	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Active)

	active, err := repo.FindActive(time.Now())
	require.NoError(t, err)
	assert.Empty(t, active)
}
