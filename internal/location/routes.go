package location

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, locationService *LocationService) {
	locationController := &LocationController{LocationService: locationService}

	locationGroup := r.Group("/api")
	{
		locationGroup.GET("/locations", locationController.GetAllLocations)
		locationGroup.POST("/location", locationController.AddLocation)
		locationGroup.PUT("/location/:id", locationController.UpdateLocation)
		locationGroup.DELETE("/location/:id", locationController.DeleteLocation)
	}
}
