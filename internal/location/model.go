package location

import (
	"github.com/lib/pq"
)

type Location struct {
	ID               int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"size:100;not null;index" json:"name"`
	Latitude         float64        `gorm:"not null" json:"latitude"`
	Longitude        float64        `gorm:"not null" json:"longitude"`
	Address          *string        `gorm:"size:255" json:"address"`
	BriefDescription *string        `gorm:"size:500" json:"brief_description"`
	Photo            *string        `gorm:"type:text" json:"photo"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
}

func (Location) TableName() string {
	return "locations"
}

type LocationInput struct {
	Name             string   `json:"name" binding:"required"`
	Latitude         float64  `json:"latitude" binding:"required"`
	Longitude        float64  `json:"longitude" binding:"required"`
	Address          *string  `json:"address"`
	BriefDescription *string  `json:"brief_description"`
	Photo            *string  `json:"photo"`
	Tags             []string `json:"tags"`
}

type LocationResponse struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Address          *string  `json:"address"`
	BriefDescription *string  `json:"brief_description"`
	Photo            *string  `json:"photo"`
	Tags             []string `json:"tags"`
}

func toResponse(loc Location) LocationResponse {
	return LocationResponse{
		ID:               loc.ID,
		Name:             loc.Name,
		Latitude:         loc.Latitude,
		Longitude:        loc.Longitude,
		Address:          loc.Address,
		BriefDescription: loc.BriefDescription,
		Photo:            loc.Photo,
		Tags:             loc.Tags,
	}
}
