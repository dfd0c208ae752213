package dto

import (
	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Title     string    `json:"title" validate:"required"`
	MediaURL  string    `json:"media_url" validate:"required,url"`
	GalleryID uuid.UUID `json:"gallery_id" validate:"required"`
}

// UpdateItemRequest is the PATCH body: pointer fields, only the set ones are
// written.
type UpdateItemRequest struct {
	Title     *string    `json:"title" validate:"omitnil,min=1"`
	MediaURL  *string    `json:"media_url" validate:"omitnil,url"`
	GalleryID *uuid.UUID `json:"gallery_id"`
}

// Updates flattens the set fields into the repository's column map.
func (r *UpdateItemRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.MediaURL != nil {
		updates["media_url"] = *r.MediaURL
	}
	if r.GalleryID != nil {
		updates["gallery_id"] = *r.GalleryID
	}
	return updates
}
