package models

import "time"

// UserResponse 用户响应结构体
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	PairCode  string `json:"pairCode"`
	PartnerID string `json:"partnerId"`
}

// JournalEntryResponse 已解密的问答响应结构体
type JournalEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoodResponse 心情响应结构体
type MoodResponse struct {
	Level int    `json:"level"`
	Note  string `json:"note"`
}

// NoteResponse 已解密的悄悄话响应结构体
type NoteResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UploadTargetResponse 预签名上传地址响应结构体
type UploadTargetResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	MimeType  string `json:"mimeType"`
}

// StreakResponse 连续打卡响应结构体
type StreakResponse struct {
	CurrentCount      int    `json:"currentCount"`
	BestCount         int    `json:"bestCount"`
	LastCompletedDate string `json:"lastCompletedDate"`
}
