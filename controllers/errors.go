package controllers

import (
	"errors"
	"net/http"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/services"

	"github.com/gin-gonic/gin"
)

// handleServiceError 把服务层错误映射为对外响应。
// 未配对是业务性结果，提示前端走配对流程；
// 解密类错误不暴露细节，统一提示无法读取。
func handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotPaired):
		c.JSON(http.StatusConflict, gin.H{
			"error": "尚未与伴侣绑定",
			"code":  "not_paired",
		})
	case errors.Is(err, services.ErrDecryptionFailed), errors.Is(err, services.ErrMalformedCipherToken):
		config.Logger.Errorw("内容解密失败", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取该内容"})
	default:
		config.Logger.Errorw(fallback, "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
