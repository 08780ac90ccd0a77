package models

import "time"

// ItemRequest is a free-text ask for an item that is not in the catalog
// yet. Items created against it carry its id in their RequestID column.
type ItemRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID uint      `json:"-"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`

	Requester *User  `gorm:"foreignKey:RequesterID" json:"-"`
	Items     []Item `gorm:"foreignKey:RequestID" json:"items,omitempty"`
}
