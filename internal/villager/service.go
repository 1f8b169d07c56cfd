package villager

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrVillagerNotFound         = errors.New("villager not found")
	ErrRelationshipTypeNotFound = errors.New("relationship type not found")
	ErrDuplicateRelationship    = errors.New("relationship already exists")
)

type VillagerService struct {
	DB *gorm.DB
}

// GetVillagerByID returns nil (no error) when the id does not exist.
func (vs *VillagerService) GetVillagerByID(id int) (*Villager, error) {
	var v Villager
	if err := vs.DB.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (vs *VillagerService) GetVillagers(skip, limit int) ([]Villager, error) {
	var villagers []Villager
	result := vs.DB.Offset(skip).Limit(limit).Find(&villagers)
	if result.Error != nil {
		return nil, result.Error
	}
	return villagers, nil
}

func (vs *VillagerService) GetVillagersByLocation(locationID int) ([]Villager, error) {
	var villagers []Villager
	result := vs.DB.Where("location_id = ?", locationID).Find(&villagers)
	if result.Error != nil {
		return nil, result.Error
	}
	return villagers, nil
}

func (vs *VillagerService) CreateVillager(input VillagerInput) (*Villager, error) {
	newVillager := Villager{
		Name:       input.Name,
		Gender:     input.Gender,
		Job:        input.Job,
		URL:        input.URL,
		Photo:      input.Photo,
		LocationID: input.LocationID,
	}
	if err := vs.DB.Create(&newVillager).Error; err != nil {
		return nil, err
	}
	return &newVillager, nil
}

// UpdateVillager replaces all mutable fields. Returns nil when the id does not
// exist.
func (vs *VillagerService) UpdateVillager(id int, input VillagerInput) (*Villager, error) {
	var existing Villager
	if err := vs.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Gender = input.Gender
	existing.Job = input.Job
	existing.URL = input.URL
	existing.Photo = input.Photo
	existing.LocationID = input.LocationID

	if err := vs.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteVillager removes the villager and every row that references it:
// relationship edges on either side and record associations, then the villager
// itself, all inside one transaction. The existence check happens before any
// dependent delete so an absent villager never causes partial cleanup.
func (vs *VillagerService) DeleteVillager(id int) (bool, error) {
	var existing Villager
	if err := vs.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := vs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source_villager_id = ? OR target_villager_id = ?", id, id).
			Delete(&VillagerRelationship{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM villagers_at_record WHERE villager_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Villager{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetVillagerRelationships builds the undirected "relatives" view out of the
// directed storage: edges where the villager is the source carry the type's
// source role, edges where it is the target the target role, and the opposite
// endpoint is reported as the relative.
func (vs *VillagerService) GetVillagerRelationships(id int) ([]RelationshipInfo, error) {
	var asSource []RelationshipInfo
	err := vs.DB.
		Table("villager_relationships vr").
		Select(`vr.id AS relationship_id,
			vr.target_villager_id AS relative_id,
			v.name AS relative_name,
			rt.name AS relationship_type,
			rt.source_role AS role`).
		Joins("JOIN villagers v ON v.id = vr.target_villager_id").
		Joins("JOIN relationship_types rt ON rt.id = vr.relationship_type_id").
		Where("vr.source_villager_id = ?", id).
		Scan(&asSource).Error
	if err != nil {
		return nil, err
	}

	var asTarget []RelationshipInfo
	err = vs.DB.
		Table("villager_relationships vr").
		Select(`vr.id AS relationship_id,
			vr.source_villager_id AS relative_id,
			v.name AS relative_name,
			rt.name AS relationship_type,
			rt.target_role AS role`).
		Joins("JOIN villagers v ON v.id = vr.source_villager_id").
		Joins("JOIN relationship_types rt ON rt.id = vr.relationship_type_id").
		Where("vr.target_villager_id = ?", id).
		Scan(&asTarget).Error
	if err != nil {
		return nil, err
	}

	return mergeRelationships(asSource, asTarget), nil
}

func mergeRelationships(asSource, asTarget []RelationshipInfo) []RelationshipInfo {
	merged := make([]RelationshipInfo, 0, len(asSource)+len(asTarget))
	merged = append(merged, asSource...)
	merged = append(merged, asTarget...)
	return merged
}

// CreateRelationship validates both endpoints and the type before inserting.
// An existing (source, target, type) triple is rejected as a duplicate; the
// schema's unique index backs the same rule.
func (vs *VillagerService) CreateRelationship(input RelationshipInput) (*VillagerRelationship, error) {
	var endpoints int64
	if err := vs.DB.Model(&Villager{}).
		Where("id IN ?", []int{input.SourceVillagerID, input.TargetVillagerID}).
		Count(&endpoints).Error; err != nil {
		return nil, err
	}
	want := int64(2)
	if input.SourceVillagerID == input.TargetVillagerID {
		want = 1
	}
	if endpoints < want {
		return nil, ErrVillagerNotFound
	}

	var types int64
	if err := vs.DB.Model(&RelationshipType{}).
		Where("id = ?", input.RelationshipTypeID).
		Count(&types).Error; err != nil {
		return nil, err
	}
	if types == 0 {
		return nil, ErrRelationshipTypeNotFound
	}

	var existing int64
	if err := vs.DB.Model(&VillagerRelationship{}).
		Where("source_villager_id = ? AND target_villager_id = ? AND relationship_type_id = ?",
			input.SourceVillagerID, input.TargetVillagerID, input.RelationshipTypeID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateRelationship
	}

	newRelationship := VillagerRelationship{
		SourceVillagerID:   input.SourceVillagerID,
		TargetVillagerID:   input.TargetVillagerID,
		RelationshipTypeID: input.RelationshipTypeID,
	}
	if err := vs.DB.Create(&newRelationship).Error; err != nil {
		return nil, err
	}
	return &newRelationship, nil
}

// DeleteRelationship removes one edge. Returns false when the id does not
// exist.
func (vs *VillagerService) DeleteRelationship(id int) (bool, error) {
	result := vs.DB.Delete(&VillagerRelationship{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (vs *VillagerService) GetRelationshipTypes() ([]RelationshipType, error) {
	var types []RelationshipType
	result := vs.DB.Order("name ASC").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}
	return types, nil
}
