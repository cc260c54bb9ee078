package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smilepoint/dental-clinic/internal/config"
	dbpkg "github.com/smilepoint/dental-clinic/internal/db"
	"github.com/smilepoint/dental-clinic/internal/kv"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	"github.com/smilepoint/dental-clinic/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store kv.Store
	if cfg.RedisAddr != "" {
		redisStore, err := kv.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		store = redisStore
	} else {
		log.Println("REDIS_ADDR not set, using in-memory store")
		store = kv.NewMemoryStore()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if db != nil {
		routes.RegisterRoutes(r, db, store, cfg)
	} else {
		log.Println("running without persistence, API routes disabled")
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
