package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// 每日一问的生成提示词
const dailyQuestionPrompt = `你是一位资深的情感咨询师。
请为一对情侣生成一个供两人互相回答的问题，关于彼此或他们的感情。
问题要有深度但不要过于沉重。
不要加引号、开场白或任何额外格式，直接返回问题本身。`

// QuestionService 每日一问服务。问题按天生成并缓存在Redis中，
// 同一天两个伴侣看到同一个问题。
type QuestionService struct {
	client *GeminiClient
	redis  *redis.Client
}

func NewQuestionService(client *GeminiClient, redisClient *redis.Client) *QuestionService {
	return &QuestionService{
		client: client,
		redis:  redisClient,
	}
}

// DailyQuestion 返回指定日历日的共享问题，没有则生成后写入缓存。
// SetNX保证并发请求下只有一个生成结果生效，落败方重读缓存。
func (s *QuestionService) DailyQuestion(ctx context.Context, day string) (string, error) {
	key := fmt.Sprintf("daily_question:%s", day)

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && err != redis.Nil {
		return "", err
	}

	question, err := s.generate(ctx)
	if err != nil {
		return "", err
	}

	ok, err := s.redis.SetNX(ctx, key, question, 48*time.Hour).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		// 别的请求先写入了，以缓存为准
		return s.redis.Get(ctx, key).Result()
	}

	return question, nil
}

func (s *QuestionService) generate(ctx context.Context) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(dailyQuestionPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart("请生成今天的问题。")},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.9))
	if err != nil {
		return "", fmt.Errorf("生成每日一问失败: %v", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("未生成有效内容")
	}

	question := strings.TrimSpace(response.Choices[0].Content)
	if question == "" {
		return "", fmt.Errorf("未生成有效内容")
	}
	return question, nil
}
