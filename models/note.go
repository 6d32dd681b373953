package models

import "time"

// Note 情侣间的悄悄话，Content为加密存储
type Note struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	ChatID     string    `gorm:"type:varchar(120);index" json:"chatId"`
	SenderID   string    `gorm:"type:varchar(50)" json:"senderId"`
	ReceiverID string    `gorm:"type:varchar(50)" json:"receiverId"`
	Content    string    `gorm:"type:text" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
