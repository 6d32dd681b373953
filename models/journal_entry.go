package models

import "time"

// JournalEntry 每日问答记录，Content为加密存储的回答
type JournalEntry struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	ChatID      string    `gorm:"type:varchar(120);index:idx_journal_day" json:"chatId"`
	UserID      string    `gorm:"type:varchar(50)" json:"userId"`
	Prompt      string    `gorm:"type:text" json:"prompt"`
	Content     string    `gorm:"type:text" json:"-"` // 密文，格式 iv:tag:ciphertext
	IsRevealed  bool      `gorm:"default:false" json:"isRevealed"`
	CreatedDate string    `gorm:"type:varchar(10);index:idx_journal_day" json:"createdDate"` // YYYY-MM-DD（UTC）
	CreatedAt   time.Time `json:"createdAt"`
}
