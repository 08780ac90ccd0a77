package common

import (
	"errors"
	"log"
	"shareit/src/config"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"
	"time"

	"gorm.io/gorm"
)

// CreateBooking reserves an item for a time window. The new booking always
// starts in WAITING. Overlapping windows on the same item are not
// arbitrated: two bookings for the same hours can both be created and both
// be approved. Owners are expected to resolve clashes through approval.
func CreateBooking(params *types.CreateBookingRequestBody, requesterId uint) (*models.Booking, error) {
	start, end, err := ParseBookingWindow(params.Start, params.End)
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.
			Where(&models.Item{ID: params.ItemID}).
			First(&item).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Item not found.")
			}
			return err
		}
		if item.OwnerID == requesterId {
			return NotFound("Booking your item? Why?")
		}
		if item.Available == nil || !*item.Available {
			return BadRequest("This item not available.")
		}
		var requester models.User
		if err := tx.
			Where(&models.User{ID: requesterId}).
			First(&requester).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Requester not found by ID.")
			}
			return err
		}
		booking = models.Booking{
			Start:    start,
			End:      end,
			ItemID:   item.ID,
			BookerID: requester.ID,
			Status:   types.BOOKING_WAITING,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		booking.Item = &item
		booking.Booker = &requester
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Saved new booking %d for item %d", booking.ID, booking.ItemID)
	return &booking, nil
}

// SetBookingStatus is the owner's one-shot approval gate. An APPROVED
// booking can never change again; nothing ever returns to WAITING.
func SetBookingStatus(bookingId uint, approved bool, ownerId uint) (*models.Booking, error) {
	var booking models.Booking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Booking{ID: bookingId}).
			Preload("Item").
			Preload("Booker").
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Booking not found.")
			}
			return err
		}
		if booking.Item == nil || booking.Item.OwnerID != ownerId {
			return NotFound("This is not user's item.")
		}
		if booking.Status == types.BOOKING_APPROVED {
			return BadRequest("Booking already approved")
		}
		status := types.BOOKING_REJECTED
		if approved {
			status = types.BOOKING_APPROVED
		}
		log.Printf("Booking %d: %s -> %s", bookingId, booking.Status, status)
		booking.Status = status
		return tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingId).
			Update("status", status).
			Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func GetBooking(bookingId uint, callerId uint) (*models.Booking, error) {
	var booking models.Booking
	db := db.GetDb()
	if err := db.
		Where(&models.Booking{ID: bookingId}).
		Preload("Item").
		Preload("Booker").
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Booking not found.")
		}
		return nil, err
	}
	ownerId := uint(0)
	if booking.Item != nil {
		ownerId = booking.Item.OwnerID
	}
	if booking.BookerID != callerId && ownerId != callerId {
		return nil, NotFound("This is not user's booking or item.")
	}
	return &booking, nil
}

func ListBookingsByBooker(state string, bookerId uint, from, size int) ([]models.Booking, error) {
	if _, err := GetUser(bookerId); err != nil {
		return nil, err
	}
	mode, err := types.ParseState(state)
	if err != nil {
		return nil, BadRequest(err.Error())
	}
	db := db.GetDb()
	q := db.
		Where("booker_id = ?", bookerId).
		Preload("Item").
		Preload("Booker").
		Order("start_date desc").
		Offset(from).
		Limit(size)
	if clause, args := stateFilter(mode, time.Now()); clause != "" {
		q = q.Where(clause, args...)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func ListBookingsByOwner(state string, ownerId uint, from, size int) ([]models.Booking, error) {
	if _, err := GetUser(ownerId); err != nil {
		return nil, err
	}
	mode, err := types.ParseState(state)
	if err != nil {
		return nil, BadRequest(err.Error())
	}
	db := db.GetDb()
	var itemIds []uint
	if err := db.
		Model(&models.Item{}).
		Where("owner_id = ?", ownerId).
		Pluck("id", &itemIds).
		Error; err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if len(itemIds) == 0 {
		return bookings, nil
	}
	q := db.
		Where("item_id IN ?", itemIds).
		Preload("Item").
		Preload("Booker").
		Order("start_date desc").
		Offset(from).
		Limit(size)
	if clause, args := stateFilter(mode, time.Now()); clause != "" {
		q = q.Where(clause, args...)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ParseBookingWindow parses the wire-format timestamps and enforces that
// the window is non-empty: start strictly before end.
func ParseBookingWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(config.TIME_PARSE_FORMAT, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, BadRequest("Cannot parse booking start.")
	}
	end, err := time.Parse(config.TIME_PARSE_FORMAT, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, BadRequest("Cannot parse booking end.")
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, BadRequest("Booking start is not before the end.")
	}
	return start, end, nil
}

// stateFilter translates a StateMode into the WHERE fragment both listing
// paths share. ALL yields no filter. CURRENT means start <= now < end.
func stateFilter(mode types.StateMode, now time.Time) (string, []any) {
	switch mode {
	case types.STATE_CURRENT:
		return "start_date <= ? AND end_date > ?", []any{now, now}
	case types.STATE_PAST:
		return "end_date < ?", []any{now}
	case types.STATE_FUTURE:
		return "start_date > ?", []any{now}
	case types.STATE_WAITING:
		return "status = ?", []any{types.BOOKING_WAITING}
	case types.STATE_REJECTED:
		return "status = ?", []any{types.BOOKING_REJECTED}
	default:
		return "", nil
	}
}
