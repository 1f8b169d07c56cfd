package record

import (
	"errors"
	"time"

	"github.com/Kanahcian/kanahcian-backend/internal/util"

	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrAccountNotFound  = errors.New("account not found")
)

type RecordService struct {
	DB *gorm.DB
}

func (rs *RecordService) GetAllRecords(skip, limit int) ([]Record, error) {
	var records []Record
	result := rs.DB.Order("date DESC").Offset(skip).Limit(limit).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// GetRecordByID returns nil (no error) when the id does not exist.
func (rs *RecordService) GetRecordByID(id int) (*Record, error) {
	var r Record
	if err := rs.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (rs *RecordService) GetRecordsByLocation(locationID int) ([]Record, error) {
	var records []Record
	result := rs.DB.Where("location_id = ?", locationID).Order("date DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (rs *RecordService) GetRecordsByAccount(accountID int) ([]Record, error) {
	var records []Record
	result := rs.DB.Where("account_id = ?", accountID).Order("date DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (rs *RecordService) GetRecordsBySemester(semester string) ([]Record, error) {
	var records []Record
	result := rs.DB.Where("semester = ?", semester).Order("date DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (rs *RecordService) CountRecords() (int64, error) {
	var count int64
	if err := rs.DB.Model(&Record{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rs *RecordService) CountRecordsByLocation(locationID int) (int64, error) {
	var count int64
	if err := rs.DB.Model(&Record{}).Where("location_id = ?", locationID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateRecord inserts the record and one join row per participant inside a
// single transaction. The referenced location and account must already exist.
func (rs *RecordService) CreateRecord(input RecordCreateInput) (*Record, error) {
	date, err := util.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	var locations int64
	if err := rs.DB.Table("locations").Where("id = ?", input.LocationID).Count(&locations).Error; err != nil {
		return nil, err
	}
	if locations == 0 {
		return nil, ErrLocationNotFound
	}

	var accounts int64
	if err := rs.DB.Table("accounts").Where("id = ?", input.AccountID).Count(&accounts).Error; err != nil {
		return nil, err
	}
	if accounts == 0 {
		return nil, ErrAccountNotFound
	}

	newRecord := Record{
		Semester:    input.Semester,
		Date:        date,
		Photo:       input.Photo,
		Description: input.Description,
		LocationID:  input.LocationID,
		AccountID:   input.AccountID,
	}

	err = rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRecord).Error; err != nil {
			return err
		}
		for _, studentID := range input.StudentIDs {
			if err := tx.Create(&StudentAtRecord{AccountID: studentID, RecordID: newRecord.ID}).Error; err != nil {
				return err
			}
		}
		for _, villagerID := range input.VillagerIDs {
			if err := tx.Create(&VillagerAtRecord{VillagerID: villagerID, RecordID: newRecord.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newRecord, nil
}

// UpdateRecord overwrites only the fields present in the input; fields left
// nil keep their stored value. A provided association list, even an empty one,
// fully replaces the existing join rows. Returns nil when the id does not
// exist.
func (rs *RecordService) UpdateRecord(id int, input RecordUpdateInput) (*Record, error) {
	var existing Record
	if err := rs.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if input.Semester != nil {
		existing.Semester = *input.Semester
	}
	if input.Date != nil {
		date, err := util.ParseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		existing.Date = date
	}
	if input.Photo != nil {
		existing.Photo = input.Photo
	}
	if input.Description != nil {
		existing.Description = input.Description
	}
	if input.LocationID != nil {
		var locations int64
		if err := rs.DB.Table("locations").Where("id = ?", *input.LocationID).Count(&locations).Error; err != nil {
			return nil, err
		}
		if locations == 0 {
			return nil, ErrLocationNotFound
		}
		existing.LocationID = *input.LocationID
	}
	if input.AccountID != nil {
		var accounts int64
		if err := rs.DB.Table("accounts").Where("id = ?", *input.AccountID).Count(&accounts).Error; err != nil {
			return nil, err
		}
		if accounts == 0 {
			return nil, ErrAccountNotFound
		}
		existing.AccountID = *input.AccountID
	}

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if input.StudentIDs != nil {
			if err := tx.Where("record_id = ?", id).Delete(&StudentAtRecord{}).Error; err != nil {
				return err
			}
			for _, studentID := range *input.StudentIDs {
				if err := tx.Create(&StudentAtRecord{AccountID: studentID, RecordID: id}).Error; err != nil {
					return err
				}
			}
		}
		if input.VillagerIDs != nil {
			if err := tx.Where("record_id = ?", id).Delete(&VillagerAtRecord{}).Error; err != nil {
				return err
			}
			for _, villagerID := range *input.VillagerIDs {
				if err := tx.Create(&VillagerAtRecord{VillagerID: villagerID, RecordID: id}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteRecord removes both kinds of join rows and then the record, in one
// transaction. Zero-row join deletes are fine.
func (rs *RecordService) DeleteRecord(id int) (bool, error) {
	var existing Record
	if err := rs.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", id).Delete(&StudentAtRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", id).Delete(&VillagerAtRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Record{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (rs *RecordService) GetStudentsByRecord(recordID int) ([]Participant, error) {
	var students []Participant
	err := rs.DB.
		Table("students_at_record sar").
		Select("a.id AS id, a.name AS name").
		Joins("JOIN accounts a ON a.id = sar.account_id").
		Where("sar.record_id = ?", recordID).
		Scan(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (rs *RecordService) GetVillagersByRecord(recordID int) ([]Participant, error) {
	var villagers []Participant
	err := rs.DB.
		Table("villagers_at_record var").
		Select("v.id AS id, v.name AS name").
		Joins("JOIN villagers v ON v.id = var.villager_id").
		Where("var.record_id = ?", recordID).
		Scan(&villagers).Error
	if err != nil {
		return nil, err
	}
	return villagers, nil
}

type recordDetailRow struct {
	ID          int       `gorm:"column:id"`
	Semester    string    `gorm:"column:semester"`
	Date        time.Time `gorm:"column:date"`
	Photo       *string   `gorm:"column:photo"`
	Description *string   `gorm:"column:description"`
	LocationID  int       `gorm:"column:location_id"`
	AccountName string    `gorm:"column:account_name"`
}

// GetRecordsByLocationWithDetails returns the visit history of a location,
// newest first, with the responsible visitor's name and both participant name
// lists resolved. One query fetches the base rows joined to accounts and one
// batched IN query per association kind fills in the participants.
func (rs *RecordService) GetRecordsByLocationWithDetails(locationID int) ([]RecordDetailResponse, error) {
	var rows []recordDetailRow
	err := rs.DB.
		Table("records r").
		Select(`r.id, r.semester, r.date, r.photo, r.description, r.location_id,
			a.name AS account_name`).
		Joins("JOIN accounts a ON a.id = r.account_id").
		Where("r.location_id = ?", locationID).
		Order("r.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rs.attachParticipants(rows)
}

// GetRecordDetail resolves one record into the enriched shape. Returns nil
// when the id does not exist.
func (rs *RecordService) GetRecordDetail(id int) (*RecordDetailResponse, error) {
	var rows []recordDetailRow
	err := rs.DB.
		Table("records r").
		Select(`r.id, r.semester, r.date, r.photo, r.description, r.location_id,
			a.name AS account_name`).
		Joins("JOIN accounts a ON a.id = r.account_id").
		Where("r.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	details, err := rs.attachParticipants(rows)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

type participantRow struct {
	RecordID int    `gorm:"column:record_id"`
	Name     string `gorm:"column:name"`
}

func (rs *RecordService) attachParticipants(rows []recordDetailRow) ([]RecordDetailResponse, error) {
	details := make([]RecordDetailResponse, 0, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	recordIDs := make([]int, 0, len(rows))
	for _, row := range rows {
		recordIDs = append(recordIDs, row.ID)
	}

	var studentRows []participantRow
	err := rs.DB.
		Table("students_at_record sar").
		Select("sar.record_id AS record_id, a.name AS name").
		Joins("JOIN accounts a ON a.id = sar.account_id").
		Where("sar.record_id IN ?", recordIDs).
		Scan(&studentRows).Error
	if err != nil {
		return nil, err
	}

	var villagerRows []participantRow
	err = rs.DB.
		Table("villagers_at_record var").
		Select("var.record_id AS record_id, v.name AS name").
		Joins("JOIN villagers v ON v.id = var.villager_id").
		Where("var.record_id IN ?", recordIDs).
		Scan(&villagerRows).Error
	if err != nil {
		return nil, err
	}

	studentsByRecord := map[int][]string{}
	for _, row := range studentRows {
		studentsByRecord[row.RecordID] = append(studentsByRecord[row.RecordID], row.Name)
	}
	villagersByRecord := map[int][]string{}
	for _, row := range villagerRows {
		villagersByRecord[row.RecordID] = append(villagersByRecord[row.RecordID], row.Name)
	}

	for _, row := range rows {
		students := studentsByRecord[row.ID]
		if students == nil {
			students = []string{}
		}
		villagers := villagersByRecord[row.ID]
		if villagers == nil {
			villagers = []string{}
		}
		details = append(details, RecordDetailResponse{
			RecordID:    row.ID,
			Semester:    row.Semester,
			Date:        util.FormatDate(row.Date),
			Photo:       row.Photo,
			Description: row.Description,
			Location:    row.LocationID,
			Account:     row.AccountName,
			Students:    students,
			Villagers:   villagers,
		})
	}
	return details, nil
}
