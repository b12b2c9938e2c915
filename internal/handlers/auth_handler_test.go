package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"challenge-tracker-api/internal/database"
	"challenge-tracker-api/internal/models"
	"challenge-tracker-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/register", Register)
	r.POST("/api/login", Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_CreatesUserAndZeroStreak(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.UserID)

	// Streak row exists from the moment the account does.
	var streak models.Streak
	require.NoError(t, database.GetDB().Where("user_id = ?", resp.UserID).First(&streak).Error)
	require.Equal(t, 0, streak.CurrentStreak)
	require.Equal(t, 0, streak.LongestStreak)
	require.Empty(t, streak.LastCompletedDate)

	// Password is stored hashed, never verbatim.
	var user models.User
	require.NoError(t, database.GetDB().Where("id = ?", resp.UserID).First(&user).Error)
	require.NotEqual(t, "correct-horse", user.Password)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "other-password"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/login", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice", resp.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/login", map[string]string{"username": "alice", "password": "wrong-password"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/login", map[string]string{"username": "nobody", "password": "whatever1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
