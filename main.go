package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/middleware"
	"github.com/DMan1906/twinflames/routes"
	"github.com/DMan1906/twinflames/services"
	"github.com/DMan1906/twinflames/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
		return
	}

	// 初始化Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("无法初始化Redis: %v", err)
		return
	}

	// 初始化JWT
	utils.InitJWT(conf.JWTSecret)

	// 初始化字段加密，密钥缺失直接启动失败
	cipher, err := services.NewFieldCipher(conf.DataEncryptionKey)
	if err != nil {
		log.Fatalf("无法初始化字段加密: %v", err)
	}

	// 初始化Gemini客户端
	geminiClient, err := services.NewGeminiClient(conf.GeminiAPIKey, conf.GeminiAPIEndpoint, conf.GeminiModel)
	if err != nil {
		log.Fatalf("无法初始化Gemini客户端: %v", err)
	}

	// 初始化对象存储
	storage, err := services.NewStorageService(conf)
	if err != nil {
		log.Fatalf("无法初始化对象存储: %v", err)
	}

	// 组装服务
	pairs := services.NewGormPairResolver(config.DB)
	progress := services.NewProgressService(services.NewGormActivityStore(config.DB), pairs)
	streaks := services.NewStreakService(
		services.NewGormStreakStore(config.DB),
		progress,
		services.NewRedisResetGuard(config.RedisClient),
	)
	questions := services.NewQuestionService(geminiClient, config.RedisClient)

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	routes.RegisterRoutes(r, routes.Deps{
		Cipher:    cipher,
		Progress:  progress,
		Streaks:   streaks,
		Questions: questions,
		Storage:   storage,
		Pairs:     pairs,
		Conf:      conf,
	})

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")
}
