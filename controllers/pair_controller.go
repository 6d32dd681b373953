package controllers

import (
	"net/http"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/models"

	"github.com/gin-gonic/gin"
)

// PairController 配对控制器
type PairController struct{}

// LinkPartner 通过配对码绑定伴侣，双向写入
func (pc *PairController) LinkPartner(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.LinkPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var me models.User
	if err := config.DB.Where("id = ?", uid).First(&me).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}
	if me.IsPaired() {
		c.JSON(http.StatusConflict, gin.H{"error": "你已经绑定过伴侣了"})
		return
	}

	var partner models.User
	if err := config.DB.Where("pair_code = ?", req.NormalizedCode()).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "配对码无效"})
		return
	}

	if partner.ID == uid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不能和自己配对"})
		return
	}
	if partner.IsPaired() {
		c.JSON(http.StatusConflict, gin.H{"error": "对方已经绑定了其他伴侣"})
		return
	}

	// 双向绑定，放在一个事务里
	tx := config.DB.Begin()
	if err := tx.Model(&me).Update("partner_id", partner.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "配对失败"})
		return
	}
	if err := tx.Model(&partner).Update("partner_id", me.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "配对失败"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "配对失败"})
		return
	}

	config.Logger.Infow("配对成功",
		"userID", me.ID,
		"partnerID", partner.ID,
	)

	c.JSON(http.StatusOK, gin.H{"message": "配对成功"})
}

// GetProfile 获取当前用户资料（含伴侣信息）
func (pc *PairController) GetProfile(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	resp := gin.H{
		"user": models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Avatar:    user.Avatar,
			PairCode:  user.PairCode,
			PartnerID: user.PartnerID,
		},
	}

	if user.IsPaired() {
		var partner models.User
		if err := config.DB.Where("id = ?", user.PartnerID).First(&partner).Error; err == nil {
			resp["partner"] = gin.H{
				"id":       partner.ID,
				"username": partner.GetDisplayName(),
				"avatar":   partner.Avatar,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
