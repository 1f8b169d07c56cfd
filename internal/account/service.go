package account

import (
	"errors"

	"gorm.io/gorm"
)

type AccountService struct {
	DB *gorm.DB
}

// GetAccountByID returns nil (no error) when the id does not exist.
func (as *AccountService) GetAccountByID(id int) (*Account, error) {
	var a Account
	if err := as.DB.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetAccountByName returns nil (no error) when no account carries the name.
func (as *AccountService) GetAccountByName(name string) (*Account, error) {
	var a Account
	if err := as.DB.Where("name = ?", name).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
