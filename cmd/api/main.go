package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mapleforkbistro/bistro-api/internal/config"
	dbpkg "github.com/mapleforkbistro/bistro-api/internal/db"
	"github.com/mapleforkbistro/bistro-api/internal/logger"
	"github.com/mapleforkbistro/bistro-api/internal/middleware"
	"github.com/mapleforkbistro/bistro-api/internal/routes"
)

func main() {

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
