package record

import (
	"time"

	"github.com/Kanahcian/kanahcian-backend/internal/util"
)

type Record struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Semester    string    `gorm:"size:3;not null" json:"semester"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Photo       *string   `gorm:"type:text" json:"photo"`
	Description *string   `gorm:"size:1000" json:"description"`
	LocationID  int       `gorm:"not null;index;column:location_id" json:"location_id"`
	AccountID   int       `gorm:"not null;index;column:account_id" json:"account_id"`
}

func (Record) TableName() string {
	return "records"
}

// StudentAtRecord and VillagerAtRecord are pure join rows owned by their
// record; they have no identity of their own.
type StudentAtRecord struct {
	AccountID int `gorm:"primaryKey;column:account_id;autoIncrement:false" json:"account_id"`
	RecordID  int `gorm:"primaryKey;column:record_id;autoIncrement:false" json:"record_id"`
}

func (StudentAtRecord) TableName() string {
	return "students_at_record"
}

type VillagerAtRecord struct {
	VillagerID int `gorm:"primaryKey;column:villager_id;autoIncrement:false" json:"villager_id"`
	RecordID   int `gorm:"primaryKey;column:record_id;autoIncrement:false" json:"record_id"`
}

func (VillagerAtRecord) TableName() string {
	return "villagers_at_record"
}

type RecordCreateInput struct {
	Semester    string  `json:"semester" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
	LocationID  int     `json:"location_id" binding:"required"`
	AccountID   int     `json:"account_id" binding:"required"`
	StudentIDs  []int   `json:"student_ids"`
	VillagerIDs []int   `json:"villager_ids"`
}

// RecordUpdateInput carries partial-update semantics: a nil field means "keep
// the stored value". The association lists use a pointer-to-slice so that an
// explicitly provided empty list replaces all join rows while an absent or
// null list leaves them untouched.
type RecordUpdateInput struct {
	Semester    *string `json:"semester"`
	Date        *string `json:"date"`
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
	LocationID  *int    `json:"location_id"`
	AccountID   *int    `json:"account_id"`
	StudentIDs  *[]int  `json:"student_ids"`
	VillagerIDs *[]int  `json:"villager_ids"`
}

type LocationIDInput struct {
	LocationID int `json:"locationid" binding:"required"`
}

// Participant is the narrow id+name projection for the association reads.
type Participant struct {
	ID   int    `json:"id" gorm:"column:id"`
	Name string `json:"name" gorm:"column:name"`
}

type RecordResponse struct {
	RecordID    int     `json:"recordid"`
	Semester    string  `json:"semester"`
	Date        string  `json:"date"`
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
	Location    int     `json:"location"`
	Account     int     `json:"account"`
}

// RecordDetailResponse is the enriched shape: the responsible visitor appears
// by name and the participants as name lists.
type RecordDetailResponse struct {
	RecordID    int      `json:"recordid"`
	Semester    string   `json:"semester"`
	Date        string   `json:"date"`
	Photo       *string  `json:"photo"`
	Description *string  `json:"description"`
	Location    int      `json:"location"`
	Account     string   `json:"account"`
	Students    []string `json:"students"`
	Villagers   []string `json:"villagers"`
}

func toResponse(r Record) RecordResponse {
	return RecordResponse{
		RecordID:    r.ID,
		Semester:    r.Semester,
		Date:        util.FormatDate(r.Date),
		Photo:       r.Photo,
		Description: r.Description,
		Location:    r.LocationID,
		Account:     r.AccountID,
	}
}
