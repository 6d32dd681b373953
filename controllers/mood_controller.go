package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/models"
	"github.com/DMan1906/twinflames/services"
	"github.com/DMan1906/twinflames/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// MoodController 心情打卡控制器
type MoodController struct {
	cipher   *services.FieldCipher
	progress *services.ProgressService
	streaks  *services.StreakService
}

func NewMoodController(cipher *services.FieldCipher, progress *services.ProgressService,
	streaks *services.StreakService) *MoodController {
	return &MoodController{
		cipher:   cipher,
		progress: progress,
		streaks:  streaks,
	}
}

// SubmitMood 提交今日心情。每人每天一条，重复提交覆盖；
// 备注加密存储，空备注存空串。
func (mc *MoodController) SubmitMood(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SubmitMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	before, err := mc.progress.EvaluateToday(ctx, uid)
	if err != nil {
		handleServiceError(c, err, "心情打卡失败")
		return
	}

	encryptedNote := ""
	if note := strings.TrimSpace(req.MoodNote); note != "" {
		encryptedNote, err = mc.cipher.Encrypt(note)
		if err != nil {
			handleServiceError(c, err, "心情打卡失败")
			return
		}
	}

	record := models.MoodRecord{
		ID:          utils.GenerateID(),
		ChatID:      before.ChatID,
		UserID:      uid,
		MoodLevel:   req.MoodLevel,
		MoodNote:    encryptedNote,
		CreatedDate: utils.Today(),
		UpdatedAt:   time.Now(),
	}
	// 按(chat_id, user_id, created_date)自然键upsert
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}, {Name: "created_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood_level", "mood_note", "updated_at"}),
	}).Create(&record).Error; err != nil {
		config.Logger.Errorw("心情打卡保存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "心情打卡失败"})
		return
	}

	resp := gin.H{"message": "心情打卡成功"}

	after, err := mc.progress.EvaluateToday(ctx, uid)
	if err == nil {
		if result, err := mc.streaks.UpdateOnCompletionEdge(ctx, uid, before, after); err == nil && result.Updated {
			resp["streakCount"] = result.StreakCount
		} else if err != nil {
			config.Logger.Errorw("更新连续打卡失败", "error", err, "uid", uid)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetTodayMood 获取自己今天的心情
func (mc *MoodController) GetTodayMood(c *gin.Context) {
	uid := c.GetString("uid")

	status, err := mc.progress.EvaluateToday(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "获取心情失败")
		return
	}

	var record models.MoodRecord
	err = config.DB.
		Where("chat_id = ? AND user_id = ? AND created_date = ?", status.ChatID, uid, utils.Today()).
		First(&record).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"mood": nil})
		return
	}

	note := ""
	if record.MoodNote != "" {
		note, err = mc.cipher.Decrypt(record.MoodNote)
		if err != nil {
			handleServiceError(c, err, "获取心情失败")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"mood": models.MoodResponse{
			Level: record.MoodLevel,
			Note:  note,
		},
	})
}
