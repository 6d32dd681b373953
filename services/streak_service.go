package services

import (
	"context"
	"time"

	"github.com/DMan1906/twinflames/models"
	"github.com/DMan1906/twinflames/utils"
)

// 测试中可替换的时间源
var nowFunc = time.Now

// StreakStore 连续打卡记录的读写
type StreakStore interface {
	GetOrCreate(ctx context.Context, chatID string) (*models.Streak, error)
	Save(ctx context.Context, streak *models.Streak) error
	ResetCurrent(ctx context.Context, chatID string) error
}

// ResetGuard 保证每日重置对同一对情侣在同一天只执行一次。
// 清零写入失败时调用方必须释放闸门，否则当天的重试会被永久跳过。
type ResetGuard interface {
	AcquireDaily(ctx context.Context, chatID, day string) (bool, error)
	ReleaseDaily(ctx context.Context, chatID, day string) error
}

// StreakUpdateResult 打卡更新结果
type StreakUpdateResult struct {
	Updated     bool `json:"updated"`
	StreakCount int  `json:"streakCount,omitempty"`
}

// StreakResetResult 每日重置结果
type StreakResetResult struct {
	Reset bool `json:"reset"`
}

// StreakService 连续打卡状态机。状态只有 NoStreak(0) 和 ActiveStreak(n>=1)，
// 仅在"今天两人都完成"的边沿递增，外部每日重置是唯一的递减路径。
type StreakService struct {
	store    StreakStore
	progress *ProgressService
	guard    ResetGuard
}

func NewStreakService(store StreakStore, progress *ProgressService, guard ResetGuard) *StreakService {
	return &StreakService{
		store:    store,
		progress: progress,
		guard:    guard,
	}
}

// UpdateIfCompletedToday 在今天两人都完成时推进连续打卡。
// 今天未完成时为幂等空操作，重复调用安全；调用方应只在
// 完成状态从false翻转为true的那次写入后调用，避免同一天多次递增。
// 若两人的最后一项打卡在并发请求中同时落库，极小概率双方都观察到
// 翻转并各自递增一次，这里不引入分布式锁，按已知局限接受。
func (s *StreakService) UpdateIfCompletedToday(ctx context.Context, userID string) (*StreakUpdateResult, error) {
	today := utils.DayString(nowFunc())

	todayStatus, err := s.progress.Evaluate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if !todayStatus.BothComplete {
		return &StreakUpdateResult{Updated: false}, nil
	}

	yesterdayStatus, err := s.progress.Evaluate(ctx, userID, utils.DayString(nowFunc().AddDate(0, 0, -1)))
	if err != nil {
		return nil, err
	}

	streak, err := s.store.GetOrCreate(ctx, todayStatus.ChatID)
	if err != nil {
		return nil, err
	}

	if yesterdayStatus.BothComplete {
		// 昨天也完成了，连续天数+1
		streak.CurrentCount++
	} else {
		// 新的起点，当天完成即至少为1
		streak.CurrentCount = 1
	}
	if streak.CurrentCount > streak.BestCount {
		streak.BestCount = streak.CurrentCount
	}
	streak.LastCompletedDate = today

	if err := s.store.Save(ctx, streak); err != nil {
		return nil, err
	}

	return &StreakUpdateResult{Updated: true, StreakCount: streak.CurrentCount}, nil
}

// UpdateOnCompletionEdge 只在完成状态从false翻转为true时推进连续打卡。
// 调用方在触发写入前后各取一次完成度快照传入；同一天已经完成后的
// 重复提交不构成翻转，不会重复递增。
func (s *StreakService) UpdateOnCompletionEdge(ctx context.Context, userID string, before, after *DailyTrinityStatus) (*StreakUpdateResult, error) {
	if before.BothComplete || !after.BothComplete {
		return &StreakUpdateResult{Updated: false}, nil
	}
	return s.UpdateIfCompletedToday(ctx, userID)
}

// ResetIfMissed 每日清零检查：昨天没完成则把CurrentCount归零。
// BestCount不受影响。通过ResetGuard保证同一对情侣每天至多执行一次，
// 供外部定时任务经内部接口触发。
func (s *StreakService) ResetIfMissed(ctx context.Context, userID string) (*StreakResetResult, error) {
	yesterday := utils.DayString(nowFunc().AddDate(0, 0, -1))

	status, err := s.progress.Evaluate(ctx, userID, yesterday)
	if err != nil {
		return nil, err
	}
	if status.BothComplete {
		return &StreakResetResult{Reset: false}, nil
	}

	today := utils.DayString(nowFunc())
	if s.guard != nil {
		acquired, err := s.guard.AcquireDaily(ctx, status.ChatID, today)
		if err != nil {
			return nil, err
		}
		if !acquired {
			// 今天已经处理过这对情侣
			return &StreakResetResult{Reset: false}, nil
		}
	}

	if err := s.store.ResetCurrent(ctx, status.ChatID); err != nil {
		// 清零没有落库，释放闸门让当天的重试能再次进来
		if s.guard != nil {
			if releaseErr := s.guard.ReleaseDaily(ctx, status.ChatID, today); releaseErr != nil {
				return nil, releaseErr
			}
		}
		return nil, err
	}

	return &StreakResetResult{Reset: true}, nil
}

// Current 读取当前连续打卡记录
func (s *StreakService) Current(ctx context.Context, userID string) (*models.Streak, error) {
	partnerID, err := s.progress.pairs.PartnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.GetOrCreate(ctx, utils.ChatID(userID, partnerID))
}
