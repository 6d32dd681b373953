package models

import "time"

// PhotoPair 每日双摄照片（前置+后置），每对情侣每人每天至多一条
type PhotoPair struct {
	ID             string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	ChatID         string    `gorm:"type:varchar(120);uniqueIndex:idx_photo_day,priority:1" json:"chatId"`
	UserID         string    `gorm:"type:varchar(50);uniqueIndex:idx_photo_day,priority:2" json:"userId"`
	FrontObjectKey string    `gorm:"type:varchar(255)" json:"frontObjectKey"`
	BackObjectKey  string    `gorm:"type:varchar(255)" json:"backObjectKey"`
	CreatedDate    string    `gorm:"type:varchar(10);uniqueIndex:idx_photo_day,priority:3" json:"createdDate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
