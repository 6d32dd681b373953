package controllers

import (
	"net/http"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/models"
	"github.com/DMan1906/twinflames/services"

	"github.com/gin-gonic/gin"
)

// StreakController 连续打卡控制器
type StreakController struct {
	streaks *services.StreakService
}

func NewStreakController(streaks *services.StreakService) *StreakController {
	return &StreakController{streaks: streaks}
}

// GetStreak 查询当前连续打卡
func (sc *StreakController) GetStreak(c *gin.Context) {
	uid := c.GetString("uid")

	streak, err := sc.streaks.Current(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, err, "获取连续打卡失败")
		return
	}

	c.JSON(http.StatusOK, models.StreakResponse{
		CurrentCount:      streak.CurrentCount,
		BestCount:         streak.BestCount,
		LastCompletedDate: streak.LastCompletedDate,
	})
}

// DailyReset 每日清零检查，遍历所有已配对的用户。
// 仅供定时任务通过内部接口调用，幂等：同一对情侣同一天只会被处理一次。
func (sc *StreakController) DailyReset(c *gin.Context) {
	config.Logger.Infow("内部接口调用：每日连续打卡检查",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	var users []models.User
	if err := config.DB.Where("partner_id <> ''").Find(&users).Error; err != nil {
		config.Logger.Errorw("查询已配对用户失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "每日检查失败"})
		return
	}

	processed := 0
	resets := 0
	for _, user := range users {
		result, err := sc.streaks.ResetIfMissed(c.Request.Context(), user.ID)
		if err != nil {
			config.Logger.Errorw("每日清零检查失败", "error", err, "uid", user.ID)
			continue
		}
		processed++
		if result.Reset {
			resets++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"processed": processed,
		"resets":    resets,
	})
}
