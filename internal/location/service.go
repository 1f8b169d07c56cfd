package location

import (
	"errors"

	"gorm.io/gorm"
)

// ErrLocationInUse blocks deletion while villagers or records still reference
// the location. Dependents are never orphaned silently.
var ErrLocationInUse = errors.New("location still has villagers or records")

type LocationService struct {
	DB *gorm.DB
}

func (ls *LocationService) GetAllLocations() ([]Location, error) {
	var locations []Location
	result := ls.DB.Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}
	return locations, nil
}

func (ls *LocationService) AddLocation(input LocationInput) (*Location, error) {
	newLocation := Location{
		Name:             input.Name,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Address:          input.Address,
		BriefDescription: input.BriefDescription,
		Photo:            input.Photo,
		Tags:             input.Tags,
	}
	if err := ls.DB.Create(&newLocation).Error; err != nil {
		return nil, err
	}
	return &newLocation, nil
}

// UpdateLocation replaces all mutable fields. Returns nil (no error) when the
// id does not exist.
func (ls *LocationService) UpdateLocation(id int, input LocationInput) (*Location, error) {
	var existing Location
	if err := ls.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Latitude = input.Latitude
	existing.Longitude = input.Longitude
	existing.Address = input.Address
	existing.BriefDescription = input.BriefDescription
	existing.Photo = input.Photo
	existing.Tags = input.Tags

	if err := ls.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteLocation removes the row. Returns false when the id does not exist and
// ErrLocationInUse when villagers or records still point at it.
func (ls *LocationService) DeleteLocation(id int) (bool, error) {
	var existing Location
	if err := ls.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	var villagers int64
	if err := ls.DB.Table("villagers").Where("location_id = ?", id).Count(&villagers).Error; err != nil {
		return false, err
	}
	var records int64
	if err := ls.DB.Table("records").Where("location_id = ?", id).Count(&records).Error; err != nil {
		return false, err
	}
	if villagers > 0 || records > 0 {
		return false, ErrLocationInUse
	}

	if err := ls.DB.Delete(&Location{}, id).Error; err != nil {
		return false, err
	}
	return true, nil
}
