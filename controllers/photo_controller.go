package controllers

import (
	"net/http"
	"time"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/models"
	"github.com/DMan1906/twinflames/services"
	"github.com/DMan1906/twinflames/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// PhotoController 每日照片控制器
type PhotoController struct {
	storage  *services.StorageService
	progress *services.ProgressService
	streaks  *services.StreakService
}

func NewPhotoController(storage *services.StorageService, progress *services.ProgressService,
	streaks *services.StreakService) *PhotoController {
	return &PhotoController{
		storage:  storage,
		progress: progress,
		streaks:  streaks,
	}
}

// CreateUploadURLs 为前置/后置照片生成预签名上传地址，客户端直传MinIO
func (pc *PhotoController) CreateUploadURLs(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	front, back, err := pc.storage.CreateDailyPhotoUploadURLs(
		c.Request.Context(), uid, utils.Today(), req.FrontMimeType, req.BackMimeType)
	if err != nil {
		config.Logger.Errorw("生成上传地址失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成上传地址失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"front": models.UploadTargetResponse{
			UploadURL: front.UploadURL,
			ObjectKey: front.ObjectKey,
			MimeType:  front.MimeType,
		},
		"back": models.UploadTargetResponse{
			UploadURL: back.UploadURL,
			ObjectKey: back.ObjectKey,
			MimeType:  back.MimeType,
		},
	})
}

// SubmitPhotos 上传完成后登记当天的照片对，每人每天一条，重复提交覆盖
func (pc *PhotoController) SubmitPhotos(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SubmitPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	before, err := pc.progress.EvaluateToday(ctx, uid)
	if err != nil {
		handleServiceError(c, err, "提交照片失败")
		return
	}

	record := models.PhotoPair{
		ID:             utils.GenerateID(),
		ChatID:         before.ChatID,
		UserID:         uid,
		FrontObjectKey: req.FrontObjectKey,
		BackObjectKey:  req.BackObjectKey,
		CreatedDate:    utils.Today(),
		UpdatedAt:      time.Now(),
	}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}, {Name: "created_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"front_object_key", "back_object_key", "updated_at"}),
	}).Create(&record).Error; err != nil {
		config.Logger.Errorw("照片记录保存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "提交照片失败"})
		return
	}

	resp := gin.H{"message": "照片提交成功"}

	after, err := pc.progress.EvaluateToday(ctx, uid)
	if err == nil {
		if result, err := pc.streaks.UpdateOnCompletionEdge(ctx, uid, before, after); err == nil && result.Updated {
			resp["streakCount"] = result.StreakCount
		} else if err != nil {
			config.Logger.Errorw("更新连续打卡失败", "error", err, "uid", uid)
		}
	}

	c.JSON(http.StatusOK, resp)
}
