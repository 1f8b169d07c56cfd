package location

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Kanahcian/kanahcian-backend/internal/response"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	LocationService *LocationService
}

func (lc *LocationController) GetAllLocations(c *gin.Context) {
	locations, err := lc.LocationService.GetAllLocations()
	if err != nil {
		response.Internal(c)
		return
	}
	if len(locations) == 0 {
		response.NotFound(c, "no locations found")
		return
	}

	out := make([]LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, toResponse(loc))
	}
	response.Success(c, out)
}

func (lc *LocationController) AddLocation(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := lc.LocationService.AddLocation(input)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Created(c, toResponse(*created))
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := lc.LocationService.UpdateLocation(id, input)
	if err != nil {
		response.Internal(c)
		return
	}
	if updated == nil {
		response.NotFound(c, fmt.Sprintf("location %d not found", id))
		return
	}
	response.Success(c, toResponse(*updated))
}

func (lc *LocationController) DeleteLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	deleted, err := lc.LocationService.DeleteLocation(id)
	if err != nil {
		if errors.Is(err, ErrLocationInUse) {
			response.Conflict(c, fmt.Sprintf("location %d still has villagers or records", id))
			return
		}
		response.Internal(c)
		return
	}
	if !deleted {
		response.NotFound(c, fmt.Sprintf("location %d not found", id))
		return
	}
	response.Message(c, fmt.Sprintf("location %d deleted", id))
}
