package villager

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, villagerService *VillagerService) {
	villagerController := &VillagerController{VillagerService: villagerService}

	villagerGroup := r.Group("/api")
	{
		villagerGroup.GET("/villager", villagerController.GetVillagers)
		villagerGroup.GET("/villager/:id", villagerController.GetVillagerByID)
		villagerGroup.POST("/villager", villagerController.CreateVillager)
		villagerGroup.PUT("/villager/:id", villagerController.UpdateVillager)
		villagerGroup.DELETE("/villager/:id", villagerController.DeleteVillager)
		villagerGroup.GET("/villagers/location/:id", villagerController.GetVillagersByLocation)

		villagerGroup.POST("/villager/relationship", villagerController.CreateRelationship)
		villagerGroup.DELETE("/villager/relationship/:id", villagerController.DeleteRelationship)
		villagerGroup.GET("/villager/relationship/types", villagerController.GetRelationshipTypes)
	}
}
