package health

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	healthController := &HealthController{DB: db}

	r.GET("/", healthController.Root)
	r.GET("/api/health", healthController.Health)
}
