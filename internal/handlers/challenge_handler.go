package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"challenge-tracker-api/internal/cache"
	"challenge-tracker-api/internal/catalog"
	"challenge-tracker-api/internal/challenge"
	"challenge-tracker-api/internal/database"
	"challenge-tracker-api/internal/models"
	"challenge-tracker-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errAlreadyCompleted marks the duplicate-completion conflict inside the
// completion transaction so it can be mapped to 409 instead of 500.
var errAlreadyCompleted = errors.New("already completed today")

// dailyCache memoizes the (user, day) assignment lookup. Entries are safe to
// cache for the whole day because the selector is deterministic; they expire
// at the next UTC midnight when the assignment legitimately changes.
var dailyCache = cache.NewSimpleCache[string, catalog.Task](cache.Options{ConcurrencySafe: true})

// CompleteChallengeRequest represents the completion request payload
type CompleteChallengeRequest struct {
	Notes string `json:"notes"`
}

func assignmentFor(userID string, day challenge.Day) (catalog.Task, error) {
	key := userID + day.String()
	if task, ok := dailyCache.Get(key); ok {
		return task, nil
	}
	task, err := challenge.SelectTask(userID, day)
	if err != nil {
		return catalog.Task{}, err
	}
	dailyCache.Set(key, task, time.Until(day.Next().Time()))
	return task, nil
}

/*
*
GetDailyChallenge handles GET /api/challenge/today
Returns the authenticated user's challenge for the current UTC day along with
whether they have already completed it.
*/
func GetDailyChallenge(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	today := challenge.Today()
	task, err := assignmentFor(userID, today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The completed flag is informational for the client; the completion
	// endpoint re-checks inside its transaction.
	completed := false
	var completedAt *time.Time
	var existing models.Completion
	result := database.GetDB().
		Where("user_id = ? AND completed_date = ?", userID, today.String()).
		First(&existing)
	if result.Error == nil {
		completed = true
		completedAt = &existing.CreatedAt
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":        task.Title,
		"category":    task.Category,
		"date":        today.String(),
		"completed":   completed,
		"completedAt": completedAt,
	})
}

/*
*
CompleteChallenge handles POST /api/challenge/complete
Records today's completion for the authenticated user and advances their
streak. The duplicate check, completion insert and streak upsert run in one
transaction; together with the unique (user_id, completed_date) index this
means a user can never be counted twice for the same day, even under
concurrent requests.
*/
func CompleteChallenge(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	// Notes are optional; an empty body is fine.
	var req CompleteChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := challenge.Today()
	task, err := challenge.SelectTask(userID, today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated models.Streak
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		var existing models.Completion
		err := tx.Where("user_id = ? AND completed_date = ?", userID, today.String()).
			First(&existing).Error
		if err == nil {
			return errAlreadyCompleted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Snapshot the assignment so catalog edits never rewrite history.
		comp := models.Completion{
			UserID:        userID,
			TaskTitle:     task.Title,
			TaskCategory:  string(task.Category),
			CompletedDate: today.String(),
			Notes:         req.Notes,
		}
		if err := tx.Create(&comp).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
				// Lost a race with another request for the same day.
				return errAlreadyCompleted
			}
			return err
		}

		var prev *challenge.StreakState
		var row models.Streak
		rowExists := true
		err = tx.Where("user_id = ?", userID).First(&row).Error
		switch {
		case err == nil:
			state := challenge.StreakState{
				Current: row.CurrentStreak,
				Longest: row.LongestStreak,
			}
			if row.LastCompletedDate != "" {
				last, perr := challenge.ParseDay(row.LastCompletedDate)
				if perr != nil {
					return perr
				}
				state.LastCompleted = last
			}
			prev = &state
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Account predates streak rows; treat as fresh.
			rowExists = false
		default:
			return err
		}

		next, aerr := challenge.Advance(prev, today)
		if aerr != nil {
			return aerr
		}

		row.UserID = userID
		row.CurrentStreak = next.Current
		row.LongestStreak = next.Longest
		row.LastCompletedDate = next.LastCompleted.String()
		if rowExists {
			err = tx.Save(&row).Error
		} else {
			err = tx.Create(&row).Error
		}
		if err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyCompleted) || errors.Is(err, challenge.ErrAlreadyCounted) {
			c.JSON(http.StatusConflict, gin.H{"error": "Task already completed today"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	// Broadcast the new streak to the user's connected clients
	evt := map[string]any{
		"type":          "challenge_completed",
		"date":          today.String(),
		"currentStreak": updated.CurrentStreak,
		"longestStreak": updated.LongestStreak,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(userID, bytes)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"currentStreak": updated.CurrentStreak,
		"longestStreak": updated.LongestStreak,
	})
}

/*
*
GetStreak handles GET /api/streak
Returns the authenticated user's streak counters and their most recent
completions (newest first, capped at 10).
*/
func GetStreak(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var row models.Streak
	result := database.GetDB().Where("user_id = ?", userID).First(&row)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch streak"})
		return
	}

	var recent []models.Completion
	if err := database.GetDB().
		Where("user_id = ?", userID).
		Order("completed_date desc").
		Limit(10).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"currentStreak":     row.CurrentStreak,
		"longestStreak":     row.LongestStreak,
		"lastCompletedDate": row.LastCompletedDate,
		"recentCompletions": recent,
	})
}
