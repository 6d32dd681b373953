package routes

import (
	"github.com/DMan1906/twinflames/config"
	"github.com/DMan1906/twinflames/controllers"
	"github.com/DMan1906/twinflames/middleware"
	"github.com/DMan1906/twinflames/services"

	"github.com/gin-gonic/gin"
)

// Deps 路由依赖的服务集合
type Deps struct {
	Cipher    *services.FieldCipher
	Progress  *services.ProgressService
	Streaks   *services.StreakService
	Questions *services.QuestionService
	Storage   *services.StorageService
	Pairs     services.PairResolver
	Conf      config.Config
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authController := controllers.AuthController{}
	pairController := controllers.PairController{}
	journalController := controllers.NewJournalController(deps.Cipher, deps.Progress, deps.Streaks, deps.Questions, deps.Pairs)
	moodController := controllers.NewMoodController(deps.Cipher, deps.Progress, deps.Streaks)
	photoController := controllers.NewPhotoController(deps.Storage, deps.Progress, deps.Streaks)
	noteController := controllers.NewNoteController(deps.Cipher, deps.Pairs)
	progressController := controllers.NewProgressController(deps.Progress)
	streakController := controllers.NewStreakController(deps.Streaks)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.GET("/user", pairController.GetProfile)
		private.POST("/pair", pairController.LinkPartner)

		private.GET("/question/today", journalController.GetDailyQuestion)
		private.POST("/journal/answer", journalController.SubmitAnswer)
		private.GET("/journal/revealed", journalController.GetRevealedAnswers)
		private.GET("/journal/vault", journalController.GetVaultEntries)

		private.POST("/mood", moodController.SubmitMood)
		private.GET("/mood/today", moodController.GetTodayMood)

		private.POST("/photos/upload-urls", photoController.CreateUploadURLs)
		private.POST("/photos", photoController.SubmitPhotos)

		private.POST("/notes", noteController.SendNote)
		private.GET("/notes", noteController.GetNotes)

		private.GET("/progress/daily", progressController.GetDailyStatus)
		private.GET("/streak", streakController.GetStreak)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(deps.Conf.InternalAuthToken))
	{
		internal.POST("/streak/daily-reset", streakController.DailyReset)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
