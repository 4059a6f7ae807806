package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/civic-lens/api-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentForm(content string) url.Values {
	form := url.Values{}
	form.Set("content", content)
	return form
}

func TestAddComment(t *testing.T) {
	db := setupTestDB(t)
	r := newAPIRouter(t, db)
	alice := createUser(t, db, "Alice", "user")
	bob := createUser(t, db, "Bob", "user")
	report := createReport(t, db, alice, "commentable", time.Now())
	path := "/reports/" + itoa(report.ID) + "/comments"

	t.Run("missing report is 404, no orphan written", func(t *testing.T) {
		w := doForm(t, r, "POST", "/reports/9999/comments", tokenFor(t, bob), commentForm("hello"))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		db.Model(&models.Comment{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		w := doForm(t, r, "POST", path, tokenFor(t, bob), commentForm("   "))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates comment and notifies the report owner", func(t *testing.T) {
		w := doForm(t, r, "POST", path, tokenFor(t, bob), commentForm("needs fixing"))
		require.Equal(t, http.StatusOK, w.Code)

		var comment models.Comment
		require.NoError(t, db.Where("report_id = ?", report.ID).First(&comment).Error)
		assert.Equal(t, bob.ID, comment.UserID)

		var notifications []models.Notification
		require.NoError(t, db.Where("user_id = ?", alice.ID).Find(&notifications).Error)
		require.Len(t, notifications, 1)
		assert.Equal(t, models.NotificationComment, notifications[0].Type)
		assert.Equal(t, "Bob", notifications[0].ActorName)
		require.NotNil(t, notifications[0].ReportID)
		assert.Equal(t, report.ID, *notifications[0].ReportID)
	})

	t.Run("owner commenting on own report does not self-notify", func(t *testing.T) {
		w := doForm(t, r, "POST", path, tokenFor(t, alice), commentForm("thanks all"))
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Notification{}).Where("user_id = ?", alice.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})
}

func TestGetComments(t *testing.T) {
	db := setupTestDB(t)
	r := newAPIRouter(t, db)
	alice := createUser(t, db, "Alice", "user")
	bob := createUser(t, db, "Bob", "user")
	report := createReport(t, db, alice, "discussed", time.Now())

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	older := models.Comment{Content: "older", UserID: bob.ID, ReportID: report.ID, CreatedAt: base}
	newer := models.Comment{Content: "newer", UserID: alice.ID, ReportID: report.ID, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	w := doRequest(t, r, "GET", "/reports/"+itoa(report.ID)+"/comments", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Content  string `json:"content"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "newer", out[0].Content)
	assert.Equal(t, "Alice", out[0].Username)
	assert.Equal(t, "older", out[1].Content)
	assert.Equal(t, "Bob", out[1].Username)
}

func TestCommentAuthorOnlyMutation(t *testing.T) {
	db := setupTestDB(t)
	r := newAPIRouter(t, db)
	alice := createUser(t, db, "Alice", "user")
	bob := createUser(t, db, "Bob", "user")
	report := createReport(t, db, alice, "moderated", time.Now())

	comment := models.Comment{Content: "original", UserID: bob.ID, ReportID: report.ID}
	require.NoError(t, db.Create(&comment).Error)
	path := "/comments/" + itoa(comment.ID)

	t.Run("non-author cannot update", func(t *testing.T) {
		w := doForm(t, r, "PUT", path, tokenFor(t, alice), commentForm("hijacked"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		w := doRequest(t, r, "DELETE", path, tokenFor(t, alice), nil, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("author updates content", func(t *testing.T) {
		w := doForm(t, r, "PUT", path, tokenFor(t, bob), commentForm("edited"))
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Comment
		require.NoError(t, db.First(&got, comment.ID).Error)
		assert.Equal(t, "edited", got.Content)
	})

	t.Run("author hard-deletes, report untouched", func(t *testing.T) {
		w := doRequest(t, r, "DELETE", path, tokenFor(t, bob), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
		assert.Zero(t, count)

		var still models.Report
		assert.NoError(t, db.First(&still, report.ID).Error)
	})

	t.Run("missing comment is 404", func(t *testing.T) {
		w := doForm(t, r, "PUT", "/comments/31337", tokenFor(t, bob), commentForm("x"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
