package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/civic-lens/api-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotifications(t *testing.T) {
	db := setupTestDB(t)
	r := newAPIRouter(t, db)
	alice := createUser(t, db, "Alice", "user")
	bob := createUser(t, db, "Bob", "user")

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	reportID := uint(42)
	require.NoError(t, db.Create(&models.Notification{
		UserID: alice.ID, ActorName: "Bob", Type: models.NotificationComment,
		ReportID: &reportID, CreatedAt: base,
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		UserID: alice.ID, ActorName: "Carol", Type: models.NotificationLike,
		ReportID: &reportID, CreatedAt: base.Add(time.Minute),
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		UserID: bob.ID, ActorName: "Alice", Type: models.NotificationDislike,
		ReportID: &reportID, CreatedAt: base,
	}).Error)

	w := doRequest(t, r, "GET", "/notifications", tokenFor(t, alice), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Actor    string `json:"actor"`
		Type     string `json:"type"`
		ReportID *uint  `json:"report_id"`
		IsRead   bool   `json:"is_read"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	// Newest first, scoped to the caller.
	assert.Equal(t, "Carol", out[0].Actor)
	assert.Equal(t, "Bob", out[1].Actor)
	assert.False(t, out[0].IsRead)
	require.NotNil(t, out[0].ReportID)
	assert.Equal(t, reportID, *out[0].ReportID)
}

func TestMarkAsRead(t *testing.T) {
	db := setupTestDB(t)
	r := newAPIRouter(t, db)
	alice := createUser(t, db, "Alice", "user")
	bob := createUser(t, db, "Bob", "user")

	n := models.Notification{UserID: alice.ID, ActorName: "Bob", Type: models.NotificationComment}
	require.NoError(t, db.Create(&n).Error)

	t.Run("recipient marks read", func(t *testing.T) {
		w := doRequest(t, r, "POST", "/notifications/"+itoa(n.ID)+"/read", tokenFor(t, alice), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Notification
		require.NoError(t, db.First(&got, n.ID).Error)
		assert.True(t, got.IsRead)
	})

	t.Run("foreign id is a silent no-op", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Notification{}).Where("id = ?", n.ID).Update("is_read", false).Error)

		w := doRequest(t, r, "POST", "/notifications/"+itoa(n.ID)+"/read", tokenFor(t, bob), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Notification
		require.NoError(t, db.First(&got, n.ID).Error)
		assert.False(t, got.IsRead)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		w := doRequest(t, r, "POST", "/notifications/999999/read", tokenFor(t, alice), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
