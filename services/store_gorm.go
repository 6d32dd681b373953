package services

import (
	"context"
	"errors"
	"time"

	"github.com/DMan1906/twinflames/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormActivityStore 基于MySQL的日常活动存在性查询
type GormActivityStore struct {
	db *gorm.DB
}

func NewGormActivityStore(db *gorm.DB) *GormActivityStore {
	return &GormActivityStore{db: db}
}

func (s *GormActivityStore) HasQuestionForDay(ctx context.Context, chatID, userID, day string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.JournalEntry{}).
		Where("chat_id = ? AND user_id = ? AND created_date = ?", chatID, userID, day).
		Limit(1).Count(&count).Error
	return count > 0, err
}

func (s *GormActivityStore) HasMoodForDay(ctx context.Context, chatID, userID, day string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.MoodRecord{}).
		Where("chat_id = ? AND user_id = ? AND created_date = ?", chatID, userID, day).
		Limit(1).Count(&count).Error
	return count > 0, err
}

func (s *GormActivityStore) HasPhotoForDay(ctx context.Context, chatID, userID, day string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.PhotoPair{}).
		Where("chat_id = ? AND user_id = ? AND created_date = ?", chatID, userID, day).
		Limit(1).Count(&count).Error
	return count > 0, err
}

// GormPairResolver 从用户表解析伴侣关系
type GormPairResolver struct {
	db *gorm.DB
}

func NewGormPairResolver(db *gorm.DB) *GormPairResolver {
	return &GormPairResolver{db: db}
}

func (r *GormPairResolver) PartnerID(ctx context.Context, userID string) (string, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return "", err
	}
	if user.PartnerID == "" {
		return "", ErrNotPaired
	}
	return user.PartnerID, nil
}

// GormStreakStore 连续打卡记录存储，每对情侣一行，ChatID为主键
type GormStreakStore struct {
	db *gorm.DB
}

func NewGormStreakStore(db *gorm.DB) *GormStreakStore {
	return &GormStreakStore{db: db}
}

func (s *GormStreakStore) GetOrCreate(ctx context.Context, chatID string) (*models.Streak, error) {
	var streak models.Streak
	err := s.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = models.Streak{ChatID: chatID}
		// 两个伴侣可能同时首次触发，冲突时忽略并重读
		if err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&streak).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&streak).Error; err != nil {
			return nil, err
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (s *GormStreakStore) Save(ctx context.Context, streak *models.Streak) error {
	streak.UpdatedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Save(streak).Error
}

func (s *GormStreakStore) ResetCurrent(ctx context.Context, chatID string) error {
	return s.db.WithContext(ctx).Model(&models.Streak{}).
		Where("chat_id = ?", chatID).
		Update("current_count", 0).Error
}
