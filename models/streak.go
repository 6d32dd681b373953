package models

import "time"

// Streak 连续打卡记录，每对情侣一条，以ChatID为主键
type Streak struct {
	ChatID            string    `gorm:"type:varchar(120);primaryKey" json:"chatId"`
	CurrentCount      int       `gorm:"default:0" json:"currentCount"`
	BestCount         int       `gorm:"default:0" json:"bestCount"`
	LastCompletedDate string    `gorm:"type:varchar(10)" json:"lastCompletedDate"` // YYYY-MM-DD，未完成过为空
	UpdatedAt         time.Time `json:"updatedAt"`
}
