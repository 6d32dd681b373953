package controllers

import (
	"net/http"
	"time"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/models"
	"github.com/DMan1906/twinflames/services"
	"github.com/DMan1906/twinflames/utils"

	"github.com/gin-gonic/gin"
)

// JournalController 每日问答控制器
type JournalController struct {
	cipher    *services.FieldCipher
	progress  *services.ProgressService
	streaks   *services.StreakService
	questions *services.QuestionService
	pairs     services.PairResolver
}

func NewJournalController(cipher *services.FieldCipher, progress *services.ProgressService,
	streaks *services.StreakService, questions *services.QuestionService, pairs services.PairResolver) *JournalController {
	return &JournalController{
		cipher:    cipher,
		progress:  progress,
		streaks:   streaks,
		questions: questions,
		pairs:     pairs,
	}
}

// GetDailyQuestion 获取今天的共享问题
func (jc *JournalController) GetDailyQuestion(c *gin.Context) {
	question, err := jc.questions.DailyQuestion(c.Request.Context(), utils.Today())
	if err != nil {
		handleServiceError(c, err, "获取每日一问失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     utils.Today(),
		"question": question,
	})
}

// SubmitAnswer 提交今日回答。回答加密落库，双方都答完后互相可见；
// 提交前后各取一次完成度快照，只在false翻转为true时推进连续打卡。
func (jc *JournalController) SubmitAnswer(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	before, err := jc.progress.EvaluateToday(ctx, uid)
	if err != nil {
		handleServiceError(c, err, "提交回答失败")
		return
	}

	encrypted, err := jc.cipher.Encrypt(req.Answer)
	if err != nil {
		handleServiceError(c, err, "提交回答失败")
		return
	}

	entry := models.JournalEntry{
		ID:          utils.GenerateID(),
		ChatID:      before.ChatID,
		UserID:      uid,
		Prompt:      req.Question,
		Content:     encrypted,
		IsRevealed:  false,
		CreatedDate: utils.Today(),
		CreatedAt:   time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("回答保存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "提交回答失败"})
		return
	}

	// 对方也回答了同一个问题就互相揭晓
	var partnerAnswers int64
	if err := config.DB.Model(&models.JournalEntry{}).
		Where("chat_id = ? AND prompt = ? AND user_id <> ?", before.ChatID, req.Question, uid).
		Count(&partnerAnswers).Error; err != nil {
		config.Logger.Errorw("查询对方回答失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "提交回答失败"})
		return
	}

	revealed := false
	if partnerAnswers > 0 {
		revealed = true
		if err := config.DB.Model(&models.JournalEntry{}).
			Where("chat_id = ? AND prompt = ?", before.ChatID, req.Question).
			Update("is_revealed", true).Error; err != nil {
			config.Logger.Errorw("揭晓回答失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "提交回答失败"})
			return
		}
	}

	resp := gin.H{"revealed": revealed}

	after, err := jc.progress.EvaluateToday(ctx, uid)
	if err == nil {
		if result, err := jc.streaks.UpdateOnCompletionEdge(ctx, uid, before, after); err == nil && result.Updated {
			resp["streakCount"] = result.StreakCount
		} else if err != nil {
			config.Logger.Errorw("更新连续打卡失败", "error", err, "uid", uid)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetRevealedAnswers 读取某个问题揭晓后的双方回答
func (jc *JournalController) GetRevealedAnswers(c *gin.Context) {
	uid := c.GetString("uid")
	question := c.Query("question")
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少question参数"})
		return
	}

	partnerID, err := jc.pairs.PartnerID(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "获取回答失败")
		return
	}
	chatID := utils.ChatID(uid, partnerID)

	var entries []models.JournalEntry
	if err := config.DB.
		Where("chat_id = ? AND prompt = ? AND is_revealed = ?", chatID, question, true).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取回答失败"})
		return
	}

	if len(entries) < 2 {
		c.JSON(http.StatusOK, gin.H{"revealed": false})
		return
	}

	var mine, theirs string
	for _, entry := range entries {
		plaintext, err := jc.cipher.Decrypt(entry.Content)
		if err != nil {
			handleServiceError(c, err, "获取回答失败")
			return
		}
		if entry.UserID == uid {
			mine = plaintext
		} else {
			theirs = plaintext
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"revealed": true,
		"mine":     mine,
		"theirs":   theirs,
	})
}

// GetVaultEntries 按时间倒序返回所有已揭晓的问答
func (jc *JournalController) GetVaultEntries(c *gin.Context) {
	uid := c.GetString("uid")

	partnerID, err := jc.pairs.PartnerID(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "获取问答记录失败")
		return
	}
	chatID := utils.ChatID(uid, partnerID)

	var entries []models.JournalEntry
	if err := config.DB.
		Where("chat_id = ? AND is_revealed = ?", chatID, true).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取问答记录失败"})
		return
	}

	decrypted := make([]models.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		plaintext, err := jc.cipher.Decrypt(entry.Content)
		if err != nil {
			handleServiceError(c, err, "获取问答记录失败")
			return
		}
		decrypted = append(decrypted, models.JournalEntryResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Prompt:    entry.Prompt,
			Content:   plaintext,
			CreatedAt: entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": decrypted})
}
