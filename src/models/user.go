package models

import "shareit/src/types"

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name,omitempty"`
	Email string `gorm:"size:512;not null;uniqueIndex" json:"email,omitempty"`

	Items    []Item    `gorm:"foreignKey:OwnerID" json:"items,omitempty"`
	Bookings []Booking `gorm:"foreignKey:BookerID" json:"bookings,omitempty"`

	types.Timestamps
}
