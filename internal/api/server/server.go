package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/drohack/GACKfilesQuest/internal/api/handlers"
	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/auth"
	"github.com/drohack/GACKfilesQuest/internal/cashout"
	"github.com/drohack/GACKfilesQuest/internal/config"
	database "github.com/drohack/GACKfilesQuest/internal/db"
	"github.com/drohack/GACKfilesQuest/internal/storage"
)

type Server struct {
	cfg      *config.Config
	db       *database.Client
	storage  *storage.Client
	sessions *auth.Service
	issuer   *cashout.Issuer
	router   *gin.Engine
}

func New(cfg *config.Config, db *database.Client, storage *storage.Client) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode) // Set to Release for production
	}

	s := &Server{
		cfg:      cfg,
		db:       db,
		storage:  storage,
		sessions: auth.NewService(db.DB, cfg.Auth.SessionHours),
		issuer:   cashout.NewIssuer(db.DB, cfg.Cashout.WindowMinutes, cfg.Cashout.SigningKey),
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.LoadHTMLGlob(cfg.Server.TemplateGlob)
	s.router.Static("/static", "web/static")

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.QuietLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	authHandler := handlers.NewAuthHandler(s.sessions)
	statusHandler := handlers.NewStatusHandler(s.db.DB)
	scanHandler := handlers.NewScanHandler(s.db.DB)
	videoHandler := handlers.NewVideoHandler(s.db.DB, s.storage)
	unlockHandler := handlers.NewUnlockHandler(s.db.DB)
	cashoutHandler := handlers.NewCashoutHandler(s.issuer, s.cfg.Server.BaseURL)
	adminHandler := handlers.NewAdminHandler(s.db.DB, s.storage)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gackfiles-quest"})
	})

	// ==========================================
	// PUBLIC ROUTES (No Session Required)
	// ==========================================
	s.router.GET("/", authHandler.Index)
	s.router.GET("/login", authHandler.ShowLogin)
	s.router.POST("/login", authHandler.Login)

	// ==========================================
	// PLAYER ROUTES (Valid Session Required)
	// ==========================================
	player := s.router.Group("/")
	player.Use(middleware.RequireSession(s.sessions))
	{
		player.GET("/logout", authHandler.Logout)
		player.GET("/status", statusHandler.Status)
		player.GET("/qrscan", statusHandler.ScanPage)

		player.POST("/scan", scanHandler.Submit)
		player.GET("/qr/:code", scanHandler.FromURL)

		player.GET("/video", videoHandler.Show)
		player.GET("/videos/:filename", videoHandler.Serve)
		player.POST("/unlock", unlockHandler.Unlock)
	}

	// ==========================================
	// ADMIN ROUTES (Session + Admin Flag)
	// ==========================================
	admin := s.router.Group("/admin")
	admin.Use(middleware.RequireSession(s.sessions), middleware.RequireAdmin())
	{
		admin.GET("", adminHandler.Panel)

		admin.POST("/videos", adminHandler.CreateVideo)
		admin.POST("/videos/:id", adminHandler.UpdateVideo)
		admin.POST("/videos/:id/delete", adminHandler.DeleteVideo)

		admin.POST("/users", adminHandler.CreateUser)
		admin.POST("/users/:id/password", adminHandler.ResetPassword)

		admin.POST("/cashout", cashoutHandler.Issue)
		admin.GET("/cashout/:token/qr.png", cashoutHandler.QRImage)
		admin.GET("/cashout/:token", cashoutHandler.Redeem)
	}
}

// Start runs the server on the configured address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
