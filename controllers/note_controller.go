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
)

// NoteController 悄悄话控制器
type NoteController struct {
	cipher *services.FieldCipher
	pairs  services.PairResolver
}

func NewNoteController(cipher *services.FieldCipher, pairs services.PairResolver) *NoteController {
	return &NoteController{
		cipher: cipher,
		pairs:  pairs,
	}
}

// SendNote 给伴侣发一条悄悄话，内容加密落库
func (nc *NoteController) SendNote(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SendNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "内容不能为空"})
		return
	}

	partnerID, err := nc.pairs.PartnerID(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "发送失败")
		return
	}

	encrypted, err := nc.cipher.Encrypt(content)
	if err != nil {
		handleServiceError(c, err, "发送失败")
		return
	}

	note := models.Note{
		ID:         utils.GenerateID(),
		ChatID:     utils.ChatID(uid, partnerID),
		SenderID:   uid,
		ReceiverID: partnerID,
		Content:    encrypted,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&note).Error; err != nil {
		config.Logger.Errorw("悄悄话保存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "发送失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "发送成功"})
}

// GetNotes 按时间倒序返回最近200条悄悄话
func (nc *NoteController) GetNotes(c *gin.Context) {
	uid := c.GetString("uid")

	partnerID, err := nc.pairs.PartnerID(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "获取悄悄话失败")
		return
	}

	var notes []models.Note
	if err := config.DB.
		Where("chat_id = ?", utils.ChatID(uid, partnerID)).
		Order("created_at DESC").
		Limit(200).
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取悄悄话失败"})
		return
	}

	decrypted := make([]models.NoteResponse, 0, len(notes))
	for _, note := range notes {
		plaintext, err := nc.cipher.Decrypt(note.Content)
		if err != nil {
			handleServiceError(c, err, "获取悄悄话失败")
			return
		}
		decrypted = append(decrypted, models.NoteResponse{
			ID:         note.ID,
			SenderID:   note.SenderID,
			ReceiverID: note.ReceiverID,
			Content:    plaintext,
			CreatedAt:  note.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"notes": decrypted})
}
