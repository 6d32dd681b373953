package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streakFixture struct {
	activities *fakeActivityStore
	store      *fakeStreakStore
	guard      *fakeResetGuard
	service    *StreakService
	today      time.Time
}

func newStreakFixture(t *testing.T) *streakFixture {
	t.Helper()

	f := &streakFixture{
		activities: newFakeActivityStore(),
		store:      newFakeStreakStore(),
		guard:      newFakeResetGuard(),
		today:      time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	progress := newTestProgress(f.activities)
	f.service = NewStreakService(f.store, progress, f.guard)

	orig := nowFunc
	nowFunc = func() time.Time { return f.today }
	t.Cleanup(func() { nowFunc = orig })

	return f
}

func (f *streakFixture) day(offset int) string {
	return f.today.AddDate(0, 0, offset).Format("2006-01-02")
}

func (f *streakFixture) completeBoth(day string) {
	f.activities.completeDay(testChat, alice, day)
	f.activities.completeDay(testChat, bob, day)
}

func (f *streakFixture) advanceDay() {
	f.today = f.today.AddDate(0, 0, 1)
}

func TestStreakService_NoOpWhenTodayIncomplete(t *testing.T) {
	f := newStreakFixture(t)
	// 只有一个人完成
	f.activities.completeDay(testChat, alice, f.day(0))

	result, err := f.service.UpdateIfCompletedToday(context.Background(), alice)
	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.Equal(t, 0, f.store.get(testChat).CurrentCount)
}

func TestStreakService_FreshStart(t *testing.T) {
	f := newStreakFixture(t)
	f.completeBoth(f.day(0))

	result, err := f.service.UpdateIfCompletedToday(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, 1, result.StreakCount)

	streak := f.store.get(testChat)
	assert.Equal(t, 1, streak.CurrentCount)
	assert.Equal(t, 1, streak.BestCount)
	assert.Equal(t, f.day(0), streak.LastCompletedDate)
}

func TestStreakService_Continuation(t *testing.T) {
	f := newStreakFixture(t)
	f.completeBoth(f.day(-1))
	f.completeBoth(f.day(0))
	f.store.Save(context.Background(), streakSeed(testChat, 3, 5, f.day(-1)))

	result, err := f.service.UpdateIfCompletedToday(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, 4, result.StreakCount)

	streak := f.store.get(testChat)
	assert.Equal(t, 4, streak.CurrentCount)
	assert.Equal(t, 5, streak.BestCount) // 历史最佳还没被超过
}

func TestStreakService_RestartAfterGap(t *testing.T) {
	f := newStreakFixture(t)
	// 昨天没完成，今天完成
	f.completeBoth(f.day(0))
	f.store.Save(context.Background(), streakSeed(testChat, 7, 7, f.day(-3)))

	result, err := f.service.UpdateIfCompletedToday(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, 1, result.StreakCount) // 重新开始，不是在旧值上累加

	streak := f.store.get(testChat)
	assert.Equal(t, 1, streak.CurrentCount)
	assert.Equal(t, 7, streak.BestCount)
}

func TestStreakService_NotPaired(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.service.UpdateIfCompletedToday(context.Background(), "user-single")
	assert.ErrorIs(t, err, ErrNotPaired)
}

func TestStreakService_ResetIfMissed(t *testing.T) {
	t.Run("yesterday incomplete resets current only", func(t *testing.T) {
		f := newStreakFixture(t)
		f.store.Save(context.Background(), streakSeed(testChat, 6, 9, f.day(-2)))

		result, err := f.service.ResetIfMissed(context.Background(), alice)
		require.NoError(t, err)
		assert.True(t, result.Reset)

		streak := f.store.get(testChat)
		assert.Equal(t, 0, streak.CurrentCount)
		assert.Equal(t, 9, streak.BestCount) // 最佳纪录不受清零影响
	})

	t.Run("yesterday complete leaves streak alone", func(t *testing.T) {
		f := newStreakFixture(t)
		f.completeBoth(f.day(-1))
		f.store.Save(context.Background(), streakSeed(testChat, 6, 9, f.day(-1)))

		result, err := f.service.ResetIfMissed(context.Background(), alice)
		require.NoError(t, err)
		assert.False(t, result.Reset)
		assert.Equal(t, 6, f.store.get(testChat).CurrentCount)
	})

	t.Run("failed reset releases the gate so a retry still zeroes", func(t *testing.T) {
		f := newStreakFixture(t)
		f.store.Save(context.Background(), streakSeed(testChat, 6, 9, f.day(-2)))
		f.store.resetErr = errors.New("connection refused")

		_, err := f.service.ResetIfMissed(context.Background(), alice)
		require.Error(t, err)
		assert.Equal(t, 6, f.store.get(testChat).CurrentCount)

		// 写入失败不能吃掉当天的闸门，重试必须真正清零
		retry, err := f.service.ResetIfMissed(context.Background(), alice)
		require.NoError(t, err)
		assert.True(t, retry.Reset)
		assert.Equal(t, 0, f.store.get(testChat).CurrentCount)
		assert.Equal(t, 9, f.store.get(testChat).BestCount)
	})

	t.Run("runs at most once per day per pair", func(t *testing.T) {
		f := newStreakFixture(t)
		f.store.Save(context.Background(), streakSeed(testChat, 6, 9, f.day(-2)))

		first, err := f.service.ResetIfMissed(context.Background(), alice)
		require.NoError(t, err)
		assert.True(t, first.Reset)

		// 同一天再次触发（包括从伴侣侧触发）直接跳过
		second, err := f.service.ResetIfMissed(context.Background(), alice)
		require.NoError(t, err)
		assert.False(t, second.Reset)

		fromPartner, err := f.service.ResetIfMissed(context.Background(), bob)
		require.NoError(t, err)
		assert.False(t, fromPartner.Reset)
	})
}

// 模拟控制器的提交流程：写入前后各取一次快照，只在翻转时推进。
// 同一天完成之后的重复提交不能再次递增。
func TestStreakService_EdgeGatePreventsDoubleIncrement(t *testing.T) {
	f := newStreakFixture(t)
	ctx := context.Background()

	f.completeBoth(f.day(-1))
	f.store.Save(ctx, streakSeed(testChat, 3, 3, f.day(-1)))

	submit := func(t *testing.T, userID, activity string) *StreakUpdateResult {
		t.Helper()
		before, err := f.service.progress.Evaluate(ctx, userID, f.day(0))
		require.NoError(t, err)
		f.activities.add(activity, testChat, userID, f.day(0))
		after, err := f.service.progress.Evaluate(ctx, userID, f.day(0))
		require.NoError(t, err)
		result, err := f.service.UpdateOnCompletionEdge(ctx, userID, before, after)
		require.NoError(t, err)
		return result
	}

	// 翻转发生之前的提交都不推进
	for _, activity := range []string{"question", "mood", "photo"} {
		assert.False(t, submit(t, alice, activity).Updated)
	}
	assert.False(t, submit(t, bob, "question").Updated)
	assert.False(t, submit(t, bob, "mood").Updated)

	// 最后一项落下构成翻转，只在这里+1
	last := submit(t, bob, "photo")
	assert.True(t, last.Updated)
	assert.Equal(t, 4, last.StreakCount)

	// 完成之后再提交一次，不再构成翻转
	again := submit(t, bob, "mood")
	assert.False(t, again.Updated)
	assert.Equal(t, 4, f.store.get(testChat).CurrentCount)
	assert.Equal(t, 4, f.store.get(testChat).BestCount)
}

// 完整四天场景：连续两天 -> 漏一天被清零 -> 重新开始
func TestStreakService_FourDayScenario(t *testing.T) {
	f := newStreakFixture(t)
	ctx := context.Background()

	// 第1天：双方完成
	f.completeBoth(f.day(0))
	result, err := f.service.UpdateIfCompletedToday(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, 1, result.StreakCount)

	// 第2天：双方再次完成
	f.advanceDay()
	f.completeBoth(f.day(0))
	result, err = f.service.UpdateIfCompletedToday(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, 2, result.StreakCount)
	require.Equal(t, 2, f.store.get(testChat).BestCount)

	// 第3天：只有一人完成，当天不触发更新
	f.advanceDay()
	f.activities.completeDay(testChat, alice, f.day(0))
	result, err = f.service.UpdateIfCompletedToday(ctx, alice)
	require.NoError(t, err)
	require.False(t, result.Updated)

	// 第4天：定时任务发现昨天没完成，清零
	f.advanceDay()
	reset, err := f.service.ResetIfMissed(ctx, alice)
	require.NoError(t, err)
	require.True(t, reset.Reset)
	require.Equal(t, 0, f.store.get(testChat).CurrentCount)
	require.Equal(t, 2, f.store.get(testChat).BestCount)

	// 第4天晚些时候：双方完成，重新从1开始
	f.completeBoth(f.day(0))
	result, err = f.service.UpdateIfCompletedToday(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, 1, result.StreakCount)
	require.Equal(t, 2, f.store.get(testChat).BestCount)
}
