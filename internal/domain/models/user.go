package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleClient Role = "client"
)

// User is the shared account record. Role is fixed at creation time;
// no update path may change it.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Role         Role      `db:"role" json:"role"`
	Plan         string    `db:"plan" json:"plan"`
	GalleryCount int       `db:"gallery_count" json:"gallery_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SocialLink is one entry of an owner's social media list, stored as JSONB.
type SocialLink struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IsVisible bool   `json:"is_visible"`
}

type SocialLinks []SocialLink

// Value implements driver.Valuer for JSONB serialization.
func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (s *SocialLinks) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("social links: unexpected type %T", value)
	}
	return json.Unmarshal(b, s)
}

// Owner profile attached to a user with role=owner.
type Owner struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	UserID      uuid.UUID   `db:"user_id" json:"user_id"`
	ContactInfo string      `db:"contact_info" json:"contact_info"`
	SocialMedia SocialLinks `db:"social_media" json:"social_media"`
	Message     string      `db:"message" json:"message"`
}

// Client profile attached to a user with role=client.
type Client struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`
}
