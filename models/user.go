package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(100)" json:"username"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255)" json:"-"`
	Avatar       string     `gorm:"type:varchar(255)" json:"avatar"`
	PairCode     string     `gorm:"type:varchar(20);uniqueIndex" json:"pairCode"`
	PartnerID    string     `gorm:"type:varchar(50);index" json:"partnerId"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// IsPaired 是否已与伴侣绑定
func (u *User) IsPaired() bool {
	return u.PartnerID != ""
}
