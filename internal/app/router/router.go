package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "taskflow_backend/internal/feature/auth/transport/handler"
	taskhandler "taskflow_backend/internal/feature/tasks/transport/handler"
	"taskflow_backend/internal/platform/http/handler"
	"taskflow_backend/internal/platform/http/middleware"
	jwtmw "taskflow_backend/internal/platform/jwt"
)

// NewRouter assembles the gin engine with all routes and middleware.
// Registration and login stay outside the auth gate; every task route and the
// profile route require a valid bearer token.
func NewRouter(authHandler *authhandler.AuthHandler, taskHandler *taskhandler.TaskHandler,
	verifier *jwtmw.Verifier, users jwtmw.UserResolver, frontendURL string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// SPAフロントエンドからのクロスオリジンリクエストを許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証エンドポイントはブルートフォース対策のレートリミット付き
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(5, 10))
	{
		// 新規ユーザー登録
		auth.POST("/register", authHandler.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに有効なBearerトークンが必要になる
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(verifier, users))
	{
		protected.GET("/auth/profile", authHandler.Profile)
		protected.GET("/tasks", taskHandler.List)
		protected.POST("/tasks", taskHandler.Create)
		protected.PUT("/tasks/:id", taskHandler.Update)
		protected.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return r
}
