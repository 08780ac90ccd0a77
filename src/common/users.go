package common

import (
	"errors"
	"log"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateUser(params *types.CreateUserRequestBody) (*models.User, error) {
	user := models.User{
		Name:  params.Name,
		Email: params.Email,
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", params.Email).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict("User with such Email already exists.")
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Created user %d (%s)", user.ID, user.Email)
	return &user, nil
}

func PatchUser(userId uint, params *types.UpdateUserRequestBody) (*models.User, error) {
	var user models.User
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.User{ID: userId}).
			First(&user).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("User not found.")
			}
			return err
		}
		if params.Email != nil && *params.Email != user.Email {
			var count int64
			if err := tx.
				Model(&models.User{}).
				Where("email = ? AND id <> ?", *params.Email, userId).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count > 0 {
				return Conflict("User with such Email already exists.")
			}
		}
		applyUserPatch(&user, params)
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUser(userId uint) (*models.User, error) {
	var user models.User
	db := db.GetDb()
	if err := db.
		Where(&models.User{ID: userId}).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("User not found.")
		}
		return nil, err
	}
	return &user, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	db := db.GetDb()
	if err := db.
		Order("id").
		Find(&users).
		Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user row. Deletion is refused while the user still
// owns items or has bookings so that no rows get orphaned.
func DeleteUser(userId uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.
			Where(&models.User{ID: userId}).
			First(&user).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("User not found.")
			}
			return err
		}
		var items int64
		if err := tx.
			Model(&models.Item{}).
			Where("owner_id = ?", userId).
			Count(&items).
			Error; err != nil {
			return err
		}
		var bookings int64
		if err := tx.
			Model(&models.Booking{}).
			Where("booker_id = ?", userId).
			Count(&bookings).
			Error; err != nil {
			return err
		}
		if items > 0 || bookings > 0 {
			return Conflict("User still owns items or has bookings.")
		}
		return tx.Delete(&user).Error
	})
}

func applyUserPatch(user *models.User, params *types.UpdateUserRequestBody) {
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
}
