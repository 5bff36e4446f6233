/*
Copyright © 2025 lehoangvu
*/
package cmd

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lehoangvu/docchat-be/config"
	"github.com/lehoangvu/docchat-be/handler"
	"github.com/lehoangvu/docchat-be/logger"
	"github.com/lehoangvu/docchat-be/middleware"
	"github.com/lehoangvu/docchat-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document chat server",
	Long:  `Starts a server that accepts PDF uploads and answers questions about them`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		zlog := logger.New(cfg.LogFile)
		defer zlog.Sync()

		// Initialize services
		pdfService := service.NewPDFService(cfg.MaxUploadSize, zlog)

		var aiService service.AIService
		switch cfg.Provider {
		case "gemini":
			keys := strings.Split(cfg.GeminiAPIKeys, ",")
			geminiService, err := service.NewGeminiService(keys, cfg.Model)
			if err != nil {
				zlog.Fatal("failed to create Gemini service", zap.Error(err))
			}
			defer geminiService.Close()
			aiService = geminiService
		case "openai":
			aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
		default:
			zlog.Fatal("unknown provider", zap.String("provider", cfg.Provider))
		}

		session := service.NewSessionService(pdfService, aiService, cfg.AskTimeout, zlog)
		fileService, err := service.NewFileService(cfg.UploadDir, zlog)
		if err != nil {
			zlog.Fatal("failed to create upload directory", zap.Error(err))
		}
		wsService := service.NewWebSocketService(session, zlog)

		// Initialize handlers
		uploadHandler := handler.NewUploadHandler(session, fileService, zlog)
		askHandler := handler.NewAskHandler(session, zlog)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir, session)

		// Setup Gin router
		router := gin.New()
		router.Use(middleware.RequestLogger(zlog), gin.Recovery(), middleware.CORS())

		router.POST("/upload", uploadHandler.HandleUpload)
		router.POST("/ask", askHandler.HandleAsk)
		router.GET("/documents", documentHandler.HandleListDocuments)
		router.GET("/pdf", documentHandler.ServeDocument)
		router.GET("/ws", func(c *gin.Context) {
			wsService.HandleChat(c.Writer, c.Request)
		})

		// Static chat UI
		router.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))
		router.Static("/public", cfg.PublicDir)

		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := router.Run(":" + cfg.Port); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
