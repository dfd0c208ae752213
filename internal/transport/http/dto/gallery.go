package dto

import (
	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

type CheckDuplicateRequest struct {
	Title string `json:"title" validate:"required"`
}

type CheckDuplicateResponse struct {
	Exists bool `json:"exists"`
}

// AttachFolderRequest binds a provider folder to a gallery. A missing
// gallery gets created as a placeholder instead of failing.
type AttachFolderRequest struct {
	GalleryID   uuid.UUID `json:"gallery_id" validate:"required"`
	FolderPath  string    `json:"folder_path" validate:"required"`
	Description string    `json:"description"`
}

type DashboardSummaryResponse struct {
	GalleryCount int `json:"gallery_count"`
	ItemCount    int `json:"item_count"`
	UserCount    int `json:"user_count"`
	CommentCount int `json:"comment_count"`
}
