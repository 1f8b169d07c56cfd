package villager

type Villager struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"size:100;not null;index" json:"name"`
	Gender     string  `gorm:"size:1;not null" json:"gender"`
	Job        *string `gorm:"size:100" json:"job"`
	URL        *string `gorm:"type:text" json:"url"`
	Photo      *string `gorm:"type:text" json:"photo"`
	LocationID *int    `gorm:"index;column:location_id" json:"location_id"`
}

func (Villager) TableName() string {
	return "villagers"
}

type RelationshipType struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:50;not null;uniqueIndex" json:"name"`
	SourceRole  string  `gorm:"size:50;not null" json:"source_role"`
	TargetRole  string  `gorm:"size:50;not null" json:"target_role"`
	Description *string `gorm:"size:200" json:"description"`
}

func (RelationshipType) TableName() string {
	return "relationship_types"
}

// VillagerRelationship is a directed, typed kinship edge. The same directed
// edge with the same type cannot exist twice.
type VillagerRelationship struct {
	ID                 int `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceVillagerID   int `gorm:"not null;index;uniqueIndex:uniq_relationship_edge" json:"source_villager_id"`
	TargetVillagerID   int `gorm:"not null;index;uniqueIndex:uniq_relationship_edge" json:"target_villager_id"`
	RelationshipTypeID int `gorm:"not null;uniqueIndex:uniq_relationship_edge" json:"relationship_type_id"`
}

func (VillagerRelationship) TableName() string {
	return "villager_relationships"
}

type VillagerInput struct {
	Name       string  `json:"name" binding:"required"`
	Gender     string  `json:"gender" binding:"required,len=1"`
	Job        *string `json:"job"`
	URL        *string `json:"url"`
	Photo      *string `json:"photo"`
	LocationID *int    `json:"location_id"`
}

type RelationshipInput struct {
	SourceVillagerID   int `json:"source_villager_id" binding:"required"`
	TargetVillagerID   int `json:"target_villager_id" binding:"required"`
	RelationshipTypeID int `json:"relationship_type_id" binding:"required"`
}

// RelationshipInfo is one entry of the undirected "relatives of X" view: the
// edge, the villager on the other end, and the role X plays in it.
type RelationshipInfo struct {
	RelationshipID   int    `json:"relationship_id" gorm:"column:relationship_id"`
	RelativeID       int    `json:"relative_id" gorm:"column:relative_id"`
	RelativeName     string `json:"relative_name" gorm:"column:relative_name"`
	RelationshipType string `json:"relationship_type" gorm:"column:relationship_type"`
	Role             string `json:"role" gorm:"column:role"`
}

type VillagerListItem struct {
	VillagerID int    `json:"villagerid"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Job        *string `json:"job"`
	LocationID *int   `json:"locationid"`
}

type VillagerDetailResponse struct {
	VillagerID    int                `json:"villagerid"`
	Name          string             `json:"name"`
	Gender        string             `json:"gender"`
	Job           *string            `json:"job"`
	URL           *string            `json:"url"`
	Photo         *string            `json:"photo"`
	LocationID    *int               `json:"locationid"`
	Relationships []RelationshipInfo `json:"relationships"`
}

func toListItem(v Villager) VillagerListItem {
	return VillagerListItem{
		VillagerID: v.ID,
		Name:       v.Name,
		Gender:     v.Gender,
		Job:        v.Job,
		LocationID: v.LocationID,
	}
}

func toDetail(v Villager, relationships []RelationshipInfo) VillagerDetailResponse {
	return VillagerDetailResponse{
		VillagerID:    v.ID,
		Name:          v.Name,
		Gender:        v.Gender,
		Job:           v.Job,
		URL:           v.URL,
		Photo:         v.Photo,
		LocationID:    v.LocationID,
		Relationships: relationships,
	}
}
