package main

import (
	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/Aashish23092/payslip-engine/config"
	"github.com/Aashish23092/payslip-engine/extractor"
	"github.com/Aashish23092/payslip-engine/handler"
	"github.com/Aashish23092/payslip-engine/logger"
	"github.com/Aashish23092/payslip-engine/service"
	"github.com/Aashish23092/payslip-engine/tracker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel)

	// Pattern catalog shared by the pipeline and the admin endpoint
	cat := catalog.New()

	// Unknown-abbreviation tracker
	store, err := tracker.Open(cfg.TrackerDBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open unknown-code tracker")
	}
	defer store.Close()

	// Extraction engine
	engine := extractor.NewEngine(cat,
		extractor.WithLogger(log),
		extractor.WithTracker(store),
	)

	// Initialize service layer
	payslipService := service.NewPayslipService(engine, service.NewPDFProcessor(), log)

	// Initialize handler layer
	payslipHandler := handler.NewPayslipHandler(payslipService)
	patternHandler := handler.NewPatternHandler(cat)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Payslip Extraction Engine",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		payslips := api.Group("/payslips")
		{
			payslips.POST("/extract", payslipHandler.Extract)
			payslips.POST("/extract-text", payslipHandler.ExtractText)
		}
		api.POST("/patterns", patternHandler.AddPattern)
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("starting payslip extraction service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
