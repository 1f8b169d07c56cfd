package account

// Account rows are managed outside this service; the backend only reads them
// to resolve responsible visitors and record participants.
type Account struct {
	ID            int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"size:100;not null;index" json:"name"`
	Password      string  `gorm:"size:300;not null" json:"-"`
	EntrySemester string  `gorm:"size:3;not null" json:"entry_semester"`
	Photo         *string `gorm:"type:text" json:"photo"`
}

func (Account) TableName() string {
	return "accounts"
}

type AccountResponse struct {
	AccountID     int     `json:"accountid"`
	Name          string  `json:"name"`
	EntrySemester string  `json:"entry_semester"`
	Photo         *string `json:"photo"`
}

func toResponse(a Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.ID,
		Name:          a.Name,
		EntrySemester: a.EntrySemester,
		Photo:         a.Photo,
	}
}
