package models

import (
	"time"

	"github.com/google/uuid"
)

type ShareType string

const (
	ShareTypePublic  ShareType = "public"
	ShareTypePrivate ShareType = "private"
	ShareTypeInvite  ShareType = "invite"
)

// ValidShareType reports whether t is one of the accepted share kinds.
func ValidShareType(t ShareType) bool {
	switch t {
	case ShareTypePublic, ShareTypePrivate, ShareTypeInvite:
		return true
	}
	return false
}

// Comment left by a client on an item.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	ItemID    uuid.UUID `json:"item_id"`
	ClientID  uuid.UUID `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Reaction is an emoji counter a client keeps on an item. Count never goes
// below zero.
type Reaction struct {
	ID        uuid.UUID `json:"id"`
	Emoji     string    `json:"emoji"`
	Count     int       `json:"count"`
	ItemID    uuid.UUID `json:"item_id"`
	ClientID  uuid.UUID `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Share records a client sharing an item through a typed link.
type Share struct {
	ID        uuid.UUID `json:"id"`
	ShareType ShareType `json:"share_type"`
	ShareLink string    `json:"share_link"`
	ItemID    uuid.UUID `json:"item_id"`
	ClientID  uuid.UUID `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}
