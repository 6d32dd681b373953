package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/DMan1906/twinflames/models"
)

// 测试用内存实现

type fakeActivityStore struct {
	mu      sync.Mutex
	records map[string]bool // "type/chatID/userID/day"
	err     error
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{records: make(map[string]bool)}
}

func (s *fakeActivityStore) add(activity, chatID, userID, day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[fmt.Sprintf("%s/%s/%s/%s", activity, chatID, userID, day)] = true
}

func (s *fakeActivityStore) has(activity, chatID, userID, day string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[fmt.Sprintf("%s/%s/%s/%s", activity, chatID, userID, day)], nil
}

func (s *fakeActivityStore) HasQuestionForDay(_ context.Context, chatID, userID, day string) (bool, error) {
	return s.has("question", chatID, userID, day)
}

func (s *fakeActivityStore) HasMoodForDay(_ context.Context, chatID, userID, day string) (bool, error) {
	return s.has("mood", chatID, userID, day)
}

func (s *fakeActivityStore) HasPhotoForDay(_ context.Context, chatID, userID, day string) (bool, error) {
	return s.has("photo", chatID, userID, day)
}

// completeDay 把某用户某天三件事全部标记为完成
func (s *fakeActivityStore) completeDay(chatID, userID, day string) {
	s.add("question", chatID, userID, day)
	s.add("mood", chatID, userID, day)
	s.add("photo", chatID, userID, day)
}

type fakePairResolver struct {
	partners map[string]string
}

func (r *fakePairResolver) PartnerID(_ context.Context, userID string) (string, error) {
	partner, ok := r.partners[userID]
	if !ok || partner == "" {
		return "", ErrNotPaired
	}
	return partner, nil
}

type fakeStreakStore struct {
	mu       sync.Mutex
	streaks  map[string]*models.Streak
	resetErr error // 下一次ResetCurrent返回该错误
}

func newFakeStreakStore() *fakeStreakStore {
	return &fakeStreakStore{streaks: make(map[string]*models.Streak)}
}

func (s *fakeStreakStore) GetOrCreate(_ context.Context, chatID string) (*models.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if streak, ok := s.streaks[chatID]; ok {
		copied := *streak
		return &copied, nil
	}
	s.streaks[chatID] = &models.Streak{ChatID: chatID}
	copied := *s.streaks[chatID]
	return &copied, nil
}

func (s *fakeStreakStore) Save(_ context.Context, streak *models.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *streak
	s.streaks[streak.ChatID] = &copied
	return nil
}

func (s *fakeStreakStore) ResetCurrent(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resetErr != nil {
		err := s.resetErr
		s.resetErr = nil
		return err
	}
	if streak, ok := s.streaks[chatID]; ok {
		streak.CurrentCount = 0
	} else {
		s.streaks[chatID] = &models.Streak{ChatID: chatID}
	}
	return nil
}

func (s *fakeStreakStore) get(chatID string) *models.Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	if streak, ok := s.streaks[chatID]; ok {
		copied := *streak
		return &copied
	}
	return &models.Streak{ChatID: chatID}
}

type fakeResetGuard struct {
	mu       sync.Mutex
	acquired map[string]bool
}

func newFakeResetGuard() *fakeResetGuard {
	return &fakeResetGuard{acquired: make(map[string]bool)}
}

func (g *fakeResetGuard) AcquireDaily(_ context.Context, chatID, day string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := day + "/" + chatID
	if g.acquired[key] {
		return false, nil
	}
	g.acquired[key] = true
	return true, nil
}

func (g *fakeResetGuard) ReleaseDaily(_ context.Context, chatID, day string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.acquired, day+"/"+chatID)
	return nil
}

func streakSeed(chatID string, current, best int, lastCompleted string) *models.Streak {
	return &models.Streak{
		ChatID:            chatID,
		CurrentCount:      current,
		BestCount:         best,
		LastCompletedDate: lastCompleted,
	}
}
