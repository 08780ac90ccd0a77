package models

import "shareit/src/types"

type Item struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Available   *bool  `gorm:"column:is_available" json:"available,omitempty"`
	OwnerID     uint   `json:"owner,omitempty"`
	RequestID   *uint  `json:"requestId,omitempty"`

	Owner    *User     `gorm:"foreignKey:OwnerID" json:"-"`
	Comments []Comment `gorm:"foreignKey:ItemID" json:"comments,omitempty"`

	// Filled for owner-facing views only, never persisted.
	LastBooking *BookingShort `gorm:"-" json:"lastBooking,omitempty"`
	NextBooking *BookingShort `gorm:"-" json:"nextBooking,omitempty"`

	types.Timestamps
}
