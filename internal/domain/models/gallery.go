package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a named collection of media items backed by one provider folder.
//
// Title uniqueness is advisory only: the duplicate-check endpoint lets the UI
// warn the user, but no constraint exists at the data layer, so two concurrent
// creates with the same title can both succeed.
type Gallery struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FolderPath  string    `json:"folder_path"`
	OwnerID     uuid.UUID `json:"owner_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Items       []Item    `json:"items,omitempty"`
}

// Item is a single media asset belonging to a gallery.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	MediaURL  string    `json:"media_url"`
	GalleryID uuid.UUID `json:"gallery_id"`
	CreatedAt time.Time `json:"created_at"`
}
