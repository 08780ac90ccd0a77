package common

import (
	"errors"
	"log"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func CreateItem(params *types.CreateItemRequestBody, ownerId uint) (*models.Item, error) {
	item := models.Item{
		Name:        params.Name,
		Slug:        slug.Make(params.Name),
		Description: params.Description,
		Available:   params.Available,
		OwnerID:     ownerId,
		RequestID:   params.RequestID,
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.
			Where(&models.User{ID: ownerId}).
			First(&owner).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Owner not found.")
			}
			return err
		}
		if params.RequestID != nil {
			var request models.ItemRequest
			if err := tx.
				Where(&models.ItemRequest{ID: *params.RequestID}).
				First(&request).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFound("Request not found.")
				}
				return err
			}
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Created item %d (%s) for owner %d", item.ID, item.Slug, ownerId)
	return &item, nil
}

func PatchItem(itemId uint, params *types.UpdateItemRequestBody, callerId uint) (*models.Item, error) {
	var item models.Item
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Item{ID: itemId}).
			First(&item).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Item not found.")
			}
			return err
		}
		if item.OwnerID != callerId {
			return Forbidden("Restricted PATCH: user not owner.")
		}
		applyItemPatch(&item, params)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem returns the item with its comments. Booking annotations are an
// owner-only view.
func GetItem(itemId uint, callerId uint) (*models.Item, error) {
	var item models.Item
	db := db.GetDb()
	if err := db.
		Where(&models.Item{ID: itemId}).
		First(&item).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Item not found.")
		}
		return nil, err
	}
	if err := attachComments(db, &item); err != nil {
		return nil, err
	}
	if item.OwnerID != callerId {
		return &item, nil
	}
	var approved []models.Booking
	if err := db.
		Where("item_id = ? AND status = ?", itemId, types.BOOKING_APPROVED).
		Order("start_date desc").
		Find(&approved).
		Error; err != nil {
		return nil, err
	}
	item.LastBooking, item.NextBooking = pickLastNext(approved, time.Now())
	return &item, nil
}

func ListItemsByOwner(ownerId uint, from, size int) ([]models.Item, error) {
	db := db.GetDb()
	if _, err := GetUser(ownerId); err != nil {
		return nil, err
	}
	var items []models.Item
	if err := db.
		Where("owner_id = ?", ownerId).
		Order("id").
		Offset(from).
		Limit(size).
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	// One grouped pass over approved bookings instead of a query per item.
	var approved []models.Booking
	if err := db.
		Where("item_id IN ? AND status = ?", ids, types.BOOKING_APPROVED).
		Order("start_date desc").
		Find(&approved).
		Error; err != nil {
		return nil, err
	}
	grouped := groupBookingsByItem(approved)
	now := time.Now()
	for i := range items {
		items[i].LastBooking, items[i].NextBooking = pickLastNext(grouped[items[i].ID], now)
	}

	var comments []models.Comment
	if err := db.
		Where("item_id IN ?", ids).
		Order("created desc").
		Preload("Author").
		Find(&comments).
		Error; err != nil {
		return nil, err
	}
	commentsByItem := groupCommentsByItem(comments)
	for i := range items {
		items[i].Comments = commentsByItem[items[i].ID]
	}
	return items, nil
}

func SearchItems(text string, from, size int) ([]models.Item, error) {
	items := []models.Item{}
	if strings.TrimSpace(text) == "" {
		return items, nil
	}
	pattern := "%" + strings.ToUpper(text) + "%"
	db := db.GetDb()
	if err := db.
		Where("(upper(name) LIKE ? OR upper(description) LIKE ?) AND is_available", pattern, pattern).
		Order("id").
		Offset(from).
		Limit(size).
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateComment stores post-use feedback. Only an author with a finished
// APPROVED booking on the item may comment.
func CreateComment(itemId uint, params *types.CreateCommentRequestBody, authorId uint) (*models.Comment, error) {
	var comment models.Comment
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var author models.User
		if err := tx.
			Where(&models.User{ID: authorId}).
			First(&author).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Author not found.")
			}
			return err
		}
		var item models.Item
		if err := tx.
			Where(&models.Item{ID: itemId}).
			First(&item).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Item not found.")
			}
			return err
		}
		eligible, err := canComment(tx, itemId, authorId, time.Now())
		if err != nil {
			return err
		}
		if !eligible {
			return BadRequest("Probably, comment not truly.")
		}
		comment = models.Comment{
			Text:     params.Text,
			ItemID:   itemId,
			AuthorID: authorId,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		comment.AuthorName = author.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// canComment reports whether the author has at least one APPROVED booking
// on the item that already ended.
func canComment(tx *gorm.DB, itemId uint, authorId uint, now time.Time) (bool, error) {
	var count int64
	err := tx.
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND end_date < ? AND status = ?",
			authorId, itemId, now, types.BOOKING_APPROVED).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// pickLastNext selects, among a single item's APPROVED bookings, the one
// that finished most recently and the one starting soonest after now. A
// booking in progress counts as neither.
func pickLastNext(bookings []models.Booking, now time.Time) (last, next *models.BookingShort) {
	var lastBooking, nextBooking *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.End.Before(now) {
			if lastBooking == nil || b.End.After(lastBooking.End) {
				lastBooking = b
			}
		}
		if b.Start.After(now) {
			if nextBooking == nil || b.Start.Before(nextBooking.Start) {
				nextBooking = b
			}
		}
	}
	if lastBooking != nil {
		last = lastBooking.Short()
	}
	if nextBooking != nil {
		next = nextBooking.Short()
	}
	return last, next
}

func groupBookingsByItem(bookings []models.Booking) map[uint][]models.Booking {
	grouped := make(map[uint][]models.Booking)
	for _, b := range bookings {
		grouped[b.ItemID] = append(grouped[b.ItemID], b)
	}
	return grouped
}

func groupCommentsByItem(comments []models.Comment) map[uint][]models.Comment {
	grouped := make(map[uint][]models.Comment)
	for _, c := range comments {
		if c.Author != nil {
			c.AuthorName = c.Author.Name
		}
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}
	return grouped
}

func attachComments(tx *gorm.DB, item *models.Item) error {
	var comments []models.Comment
	if err := tx.
		Where("item_id = ?", item.ID).
		Order("created desc").
		Preload("Author").
		Find(&comments).
		Error; err != nil {
		return err
	}
	for i := range comments {
		if comments[i].Author != nil {
			comments[i].AuthorName = comments[i].Author.Name
		}
	}
	item.Comments = comments
	return nil
}

func applyItemPatch(item *models.Item, params *types.UpdateItemRequestBody) {
	if params.Name != nil && strings.TrimSpace(*params.Name) != "" {
		item.Name = *params.Name
		item.Slug = slug.Make(*params.Name)
	}
	if params.Description != nil && strings.TrimSpace(*params.Description) != "" {
		item.Description = *params.Description
	}
	if params.Available != nil {
		item.Available = params.Available
	}
	if params.RequestID != nil {
		item.RequestID = params.RequestID
	}
}
