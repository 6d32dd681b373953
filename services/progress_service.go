package services

import (
	"context"

	"github.com/DMan1906/twinflames/utils"

	"golang.org/x/sync/errgroup"
)

// TrinityCompletion 单个用户某天三件事的完成情况
type TrinityCompletion struct {
	Question bool `json:"question"`
	Mood     bool `json:"mood"`
	Photo    bool `json:"photo"`
	Complete bool `json:"complete"`
}

// DailyTrinityStatus 一对情侣某天的完成状态，按需计算，不落库
type DailyTrinityStatus struct {
	Date         string            `json:"date"`
	ChatID       string            `json:"chatId"`
	You          TrinityCompletion `json:"you"`
	Partner      TrinityCompletion `json:"partner"`
	BothComplete bool              `json:"bothComplete"`
}

// ActivityStore 日常活动的存在性查询，存在即算完成，不关心条数
type ActivityStore interface {
	HasQuestionForDay(ctx context.Context, chatID, userID, day string) (bool, error)
	HasMoodForDay(ctx context.Context, chatID, userID, day string) (bool, error)
	HasPhotoForDay(ctx context.Context, chatID, userID, day string) (bool, error)
}

// PairResolver 根据用户ID查询伴侣ID，未绑定返回ErrNotPaired
type PairResolver interface {
	PartnerID(ctx context.Context, userID string) (string, error)
}

// ProgressService 完成度计算服务，无自身状态，纯读取聚合
type ProgressService struct {
	activities ActivityStore
	pairs      PairResolver
}

func NewProgressService(activities ActivityStore, pairs PairResolver) *ProgressService {
	return &ProgressService{
		activities: activities,
		pairs:      pairs,
	}
}

// Evaluate 计算指定用户所在情侣对在某天的完成状态。
// 六次存在性查询互相独立，并发执行。
func (s *ProgressService) Evaluate(ctx context.Context, userID, day string) (*DailyTrinityStatus, error) {
	partnerID, err := s.pairs.PartnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	chatID := utils.ChatID(userID, partnerID)

	var (
		myQuestion, myMood, myPhoto                bool
		partnerQuestion, partnerMood, partnerPhoto bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		myQuestion, err = s.activities.HasQuestionForDay(gctx, chatID, userID, day)
		return
	})
	g.Go(func() (err error) {
		myMood, err = s.activities.HasMoodForDay(gctx, chatID, userID, day)
		return
	})
	g.Go(func() (err error) {
		myPhoto, err = s.activities.HasPhotoForDay(gctx, chatID, userID, day)
		return
	})
	g.Go(func() (err error) {
		partnerQuestion, err = s.activities.HasQuestionForDay(gctx, chatID, partnerID, day)
		return
	})
	g.Go(func() (err error) {
		partnerMood, err = s.activities.HasMoodForDay(gctx, chatID, partnerID, day)
		return
	})
	g.Go(func() (err error) {
		partnerPhoto, err = s.activities.HasPhotoForDay(gctx, chatID, partnerID, day)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	you := TrinityCompletion{
		Question: myQuestion,
		Mood:     myMood,
		Photo:    myPhoto,
		Complete: myQuestion && myMood && myPhoto,
	}
	partner := TrinityCompletion{
		Question: partnerQuestion,
		Mood:     partnerMood,
		Photo:    partnerPhoto,
		Complete: partnerQuestion && partnerMood && partnerPhoto,
	}

	return &DailyTrinityStatus{
		Date:         day,
		ChatID:       chatID,
		You:          you,
		Partner:      partner,
		BothComplete: you.Complete && partner.Complete,
	}, nil
}

// EvaluateToday 计算今天的完成状态
func (s *ProgressService) EvaluateToday(ctx context.Context, userID string) (*DailyTrinityStatus, error) {
	return s.Evaluate(ctx, userID, utils.Today())
}
