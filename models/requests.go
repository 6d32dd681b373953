package models

import "strings"

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LinkPartnerRequest 配对请求结构体
type LinkPartnerRequest struct {
	PairCode string `json:"pair_code" binding:"required"`
}

// NormalizedCode 返回大写去空格后的配对码
func (r *LinkPartnerRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.PairCode))
}

// SubmitAnswerRequest 每日问答提交请求结构体
type SubmitAnswerRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// SubmitMoodRequest 心情打卡请求结构体
type SubmitMoodRequest struct {
	MoodLevel int    `json:"mood_level" binding:"required,min=1,max=5"`
	MoodNote  string `json:"mood_note"`
}

// PhotoUploadURLRequest 照片上传地址请求结构体
type PhotoUploadURLRequest struct {
	FrontMimeType string `json:"front_mime_type"`
	BackMimeType  string `json:"back_mime_type"`
}

// SubmitPhotosRequest 每日照片提交请求结构体
type SubmitPhotosRequest struct {
	FrontObjectKey string `json:"front_object_key" binding:"required"`
	BackObjectKey  string `json:"back_object_key" binding:"required"`
}

// SendNoteRequest 发送悄悄话请求结构体
type SendNoteRequest struct {
	Content string `json:"content" binding:"required"`
}
