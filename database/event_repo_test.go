package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableration/site-backend/models"
)

func TestEventItemsPositionedFromListOrder(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewEventRepo(db)

	event := models.Event{Title: "Launch"}
	items := []models.EventItem{
		{Name: "doors open"},
		{Name: "keynote"},
		{Name: "wrap up"},
	}
	require.NoError(t, repo.Create(&event, items))

	loaded, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 3)
	for i, item := range loaded.Items {
		assert.Equal(t, i, item.Position)
	}
	assert.Equal(t, "doors open", loaded.Items[0].Name)
	assert.Equal(t, "wrap up", loaded.Items[2].Name)
}

func TestEventUpdateReplacesItemsWholesale(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewEventRepo(db)

	event := models.Event{Title: "Launch"}
	require.NoError(t, repo.Create(&event, []models.EventItem{
		{Name: "one"}, {Name: "two"}, {Name: "three"},
	}))

	require.NoError(t, repo.Update(&event, []models.EventItem{{Name: "only"}}))

	var count int64
	require.NoError(t, db.Model(&models.EventItem{}).Where("event_id = ?", event.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	loaded, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "only", loaded.Items[0].Name)
	assert.Equal(t, 0, loaded.Items[0].Position)
}

func TestDeleteEventCascadesItems(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewEventRepo(db)

	event := models.Event{Title: "Doomed"}
	require.NoError(t, repo.Create(&event, []models.EventItem{{Name: "a"}, {Name: "b"}}))

	require.NoError(t, repo.Delete(event.ID))

	var count int64
	require.NoError(t, db.Model(&models.EventItem{}).Where("event_id = ?", event.ID).Count(&count).Error)
	assert.Zero(t, count)
}
