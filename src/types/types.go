package types

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type BookingStatus string

const (
	BOOKING_WAITING  BookingStatus = "WAITING"
	BOOKING_APPROVED BookingStatus = "APPROVED"
	BOOKING_REJECTED BookingStatus = "REJECTED"
)

// StateMode selects which slice of a user's bookings a listing returns.
// WAITING and REJECTED filter on the status column; the rest are windows
// relative to the time of the call.
type StateMode string

const (
	STATE_ALL      StateMode = "ALL"
	STATE_CURRENT  StateMode = "CURRENT"
	STATE_PAST     StateMode = "PAST"
	STATE_FUTURE   StateMode = "FUTURE"
	STATE_WAITING  StateMode = "WAITING"
	STATE_REJECTED StateMode = "REJECTED"
)

func ParseState(state string) (StateMode, error) {
	switch StateMode(state) {
	case STATE_ALL, STATE_CURRENT, STATE_PAST, STATE_FUTURE, STATE_WAITING, STATE_REJECTED:
		return StateMode(state), nil
	default:
		return "", fmt.Errorf("Unknown state: %s", state)
	}
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type Violation struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

type ValidationErrorResponse struct {
	Violations []Violation `json:"violations"`
}

type CreateUserRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequestBody struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type CreateItemRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *uint  `json:"requestId,omitempty"`
}

type UpdateItemRequestBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	RequestID   *uint   `json:"requestId,omitempty"`
}

type CreateBookingRequestBody struct {
	ItemID uint   `json:"itemId" binding:"required"`
	Start  string `json:"start" binding:"required,futuredate"`
	End    string `json:"end" binding:"required,futuredate,gtdate=Start"`
}

type CreateRequestRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type CreateCommentRequestBody struct {
	Text string `json:"text" binding:"required"`
}
