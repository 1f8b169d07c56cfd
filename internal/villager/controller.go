package villager

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Kanahcian/kanahcian-backend/internal/response"

	"github.com/gin-gonic/gin"
)

type VillagerController struct {
	VillagerService *VillagerService
}

func (vc *VillagerController) GetVillagers(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.BadRequest(c, "invalid skip parameter")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		response.BadRequest(c, "invalid limit parameter")
		return
	}

	villagers, err := vc.VillagerService.GetVillagers(skip, limit)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(villagers) == 0 {
		response.NotFound(c, "no villagers found")
		return
	}

	out := make([]VillagerListItem, 0, len(villagers))
	for _, v := range villagers {
		out = append(out, toListItem(v))
	}
	response.Success(c, out)
}

func (vc *VillagerController) GetVillagerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid villager id")
		return
	}

	v, err := vc.VillagerService.GetVillagerByID(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if v == nil {
		response.NotFound(c, fmt.Sprintf("villager %d not found", id))
		return
	}

	relationships, err := vc.VillagerService.GetVillagerRelationships(id)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, toDetail(*v, relationships))
}

func (vc *VillagerController) CreateVillager(c *gin.Context) {
	var input VillagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := vc.VillagerService.CreateVillager(input)
	if err != nil {
		response.Internal(c)
		return
	}
	// a new villager has no relationships yet
	response.Created(c, toDetail(*created, []RelationshipInfo{}))
}

func (vc *VillagerController) UpdateVillager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid villager id")
		return
	}

	var input VillagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := vc.VillagerService.UpdateVillager(id, input)
	if err != nil {
		response.Internal(c)
		return
	}
	if updated == nil {
		response.NotFound(c, fmt.Sprintf("villager %d not found", id))
		return
	}

	relationships, err := vc.VillagerService.GetVillagerRelationships(id)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, toDetail(*updated, relationships))
}

func (vc *VillagerController) DeleteVillager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid villager id")
		return
	}

	deleted, err := vc.VillagerService.DeleteVillager(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if !deleted {
		response.NotFound(c, fmt.Sprintf("villager %d not found", id))
		return
	}
	response.Message(c, fmt.Sprintf("villager %d deleted", id))
}

func (vc *VillagerController) GetVillagersByLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	villagers, err := vc.VillagerService.GetVillagersByLocation(locationID)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(villagers) == 0 {
		response.NotFound(c, fmt.Sprintf("no villagers found for location %d", locationID))
		return
	}

	out := make([]VillagerDetailResponse, 0, len(villagers))
	for _, v := range villagers {
		relationships, err := vc.VillagerService.GetVillagerRelationships(v.ID)
		if err != nil {
			response.Internal(c)
			return
		}
		out = append(out, toDetail(v, relationships))
	}
	response.Success(c, out)
}

func (vc *VillagerController) CreateRelationship(c *gin.Context) {
	var input RelationshipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := vc.VillagerService.CreateRelationship(input)
	if err != nil {
		switch {
		case errors.Is(err, ErrVillagerNotFound):
			response.BadRequest(c, "villager not found")
		case errors.Is(err, ErrRelationshipTypeNotFound):
			response.BadRequest(c, "relationship type not found")
		case errors.Is(err, ErrDuplicateRelationship):
			response.Conflict(c, "relationship already exists")
		default:
			response.Internal(c)
		}
		return
	}
	response.Created(c, gin.H{
		"relationship_id":      created.ID,
		"source_villager_id":   created.SourceVillagerID,
		"target_villager_id":   created.TargetVillagerID,
		"relationship_type_id": created.RelationshipTypeID,
	})
}

func (vc *VillagerController) DeleteRelationship(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid relationship id")
		return
	}

	deleted, err := vc.VillagerService.DeleteRelationship(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if !deleted {
		response.NotFound(c, fmt.Sprintf("relationship %d not found", id))
		return
	}
	response.Message(c, fmt.Sprintf("relationship %d deleted", id))
}

func (vc *VillagerController) GetRelationshipTypes(c *gin.Context) {
	types, err := vc.VillagerService.GetRelationshipTypes()
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, types)
}
