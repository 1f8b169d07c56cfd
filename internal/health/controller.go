package health

import (
	"net/http"

	"github.com/Kanahcian/kanahcian-backend/internal/database"
	"github.com/Kanahcian/kanahcian-backend/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

// Root answers the liveness probe used by the hosting platform.
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "kanahcian backend is running"})
}

// Health reports store reachability and connection-pool usage.
func (hc *HealthController) Health(c *gin.Context) {
	if err := database.Ping(hc.DB); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"detail": "database unreachable",
		})
		return
	}

	stats, err := database.Stats(hc.DB)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, gin.H{
		"database": "up",
		"pool":     stats,
	})
}
