package utils

import (
	"time"
)

// 日历日统一使用UTC的YYYY-MM-DD，跨时区设备以UTC零点为界
const dayLayout = "2006-01-02"

// DayString 返回指定时间对应的UTC日历日
func DayString(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Today 返回今天的UTC日历日
func Today() string {
	return DayString(time.Now())
}

// Yesterday 返回昨天的UTC日历日
func Yesterday() string {
	return DayString(time.Now().AddDate(0, 0, -1))
}

// DayBefore 返回指定日历日的前一天
func DayBefore(day string) (string, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(dayLayout), nil
}

// IsValidDay 校验日历日格式
func IsValidDay(day string) bool {
	_, err := time.Parse(dayLayout, day)
	return err == nil
}
