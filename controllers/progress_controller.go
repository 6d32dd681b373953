package controllers

import (
	"net/http"

	"github.com/DMan1906/twinflames/services"
	"github.com/DMan1906/twinflames/utils"

	"github.com/gin-gonic/gin"
)

// ProgressController 每日完成度控制器
type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// GetDailyStatus 查询指定日期（默认今天）双方三件事的完成情况
func (pc *ProgressController) GetDailyStatus(c *gin.Context) {
	uid := c.GetString("uid")

	day := c.Query("date")
	if day == "" {
		day = utils.Today()
	} else if !utils.IsValidDay(day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式错误，应为YYYY-MM-DD"})
		return
	}

	status, err := pc.progress.Evaluate(c.Request.Context(), uid, day)
	if err != nil {
		handleServiceError(c, err, "获取每日进度失败")
		return
	}

	c.JSON(http.StatusOK, status)
}
