package common

import (
	"errors"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateRequest(params *types.CreateRequestRequestBody, requesterId uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var requester models.User
		if err := tx.
			Where(&models.User{ID: requesterId}).
			First(&requester).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Requester not found.")
			}
			return err
		}
		request = models.ItemRequest{
			Description: params.Description,
			RequesterID: requesterId,
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func ListRequestsByUser(requesterId uint) ([]models.ItemRequest, error) {
	if _, err := GetUser(requesterId); err != nil {
		return nil, err
	}
	requests := []models.ItemRequest{}
	db := db.GetDb()
	if err := db.
		Where("requester_id = ?", requesterId).
		Order("created asc").
		Preload("Items").
		Find(&requests).
		Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListOtherRequests returns requests posted by everyone except the caller,
// so a user browsing for something to offer never sees their own asks.
func ListOtherRequests(callerId uint, from, size int) ([]models.ItemRequest, error) {
	if _, err := GetUser(callerId); err != nil {
		return nil, err
	}
	requests := []models.ItemRequest{}
	db := db.GetDb()
	if err := db.
		Where("requester_id <> ?", callerId).
		Order("created asc").
		Offset(from).
		Limit(size).
		Preload("Items").
		Find(&requests).
		Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func GetRequest(requestId uint, callerId uint) (*models.ItemRequest, error) {
	if _, err := GetUser(callerId); err != nil {
		return nil, err
	}
	var request models.ItemRequest
	db := db.GetDb()
	if err := db.
		Where(&models.ItemRequest{ID: requestId}).
		Preload("Items").
		First(&request).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Request not found.")
		}
		return nil, err
	}
	return &request, nil
}
