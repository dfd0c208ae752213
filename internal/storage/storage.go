package storage

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGalleryNotFound  = errors.New("gallery not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrReactionNotFound = errors.New("reaction not found")
	ErrShareNotFound    = errors.New("share not found")
)

var (
	ErrQuotaExceeded = errors.New("gallery limit reached for plan")
	ErrFolderExists  = errors.New("folder already exists")
)
