package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	ItemID   uint      `json:"itemId,omitempty"`
	AuthorID uint      `json:"-"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`

	// Derived from the preloaded Author row when comments are rendered.
	AuthorName string `gorm:"-" json:"authorName,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
	Item   *Item `gorm:"foreignKey:ItemID" json:"-"`
}
