package models

import "time"

// MoodRecord 每日心情打卡，每对情侣每人每天至多一条
type MoodRecord struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	ChatID      string    `gorm:"type:varchar(120);uniqueIndex:idx_mood_day,priority:1" json:"chatId"`
	UserID      string    `gorm:"type:varchar(50);uniqueIndex:idx_mood_day,priority:2" json:"userId"`
	MoodLevel   int       `json:"moodLevel"` // 1-5
	MoodNote    string    `gorm:"type:text" json:"-"` // 密文，可为空
	CreatedDate string    `gorm:"type:varchar(10);uniqueIndex:idx_mood_day,priority:3" json:"createdDate"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
