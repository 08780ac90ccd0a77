package models

import (
	"shareit/src/types"
	"time"
)

type Booking struct {
	ID       uint                `gorm:"primarykey" json:"id"`
	Start    time.Time           `gorm:"column:start_date" json:"start"`
	End      time.Time           `gorm:"column:end_date" json:"end"`
	ItemID   uint                `json:"itemId,omitempty"`
	BookerID uint                `json:"bookerId,omitempty"`
	Status   types.BookingStatus `gorm:"default:'WAITING'" json:"status,omitempty"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`

	types.Timestamps
}

// BookingShort is the trimmed shape embedded in item views as
// lastBooking/nextBooking.
type BookingShort struct {
	ID       uint      `json:"id"`
	BookerID uint      `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func (b *Booking) Short() *BookingShort {
	return &BookingShort{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
