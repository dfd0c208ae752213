package mediafolder

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"snapfolio/internal/storage"
)

// Provider abstracts the external media host: per-gallery folder management
// and asset upload. Folder creation reports storage.ErrFolderExists when the
// remote folder is already there so callers can treat it as non-fatal.
type Provider interface {
	CreateFolder(ctx context.Context, folderPath string) error
	DeleteFolder(ctx context.Context, folderPath string) error
	Upload(ctx context.Context, source, folder, publicID string) (string, error)
	BaseFolder() string
}

// CloudinaryStorage talks to the Cloudinary admin and upload APIs.
type CloudinaryStorage struct {
	cld        *cloudinary.Cloudinary
	baseFolder string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret, baseFolder string) (*CloudinaryStorage, error) {
	const op = "storage.mediafolder.NewCloudinaryStorage"

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &CloudinaryStorage{
		cld:        cld,
		baseFolder: baseFolder,
	}, nil
}

func (s *CloudinaryStorage) CreateFolder(ctx context.Context, folderPath string) error {
	const op = "storage.mediafolder.CreateFolder"

	res, err := s.cld.Admin.CreateFolder(ctx, admin.CreateFolderParams{Folder: folderPath})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.Error.Message != "" {
		if strings.Contains(res.Error.Message, "already exists") {
			return fmt.Errorf("%s: %w", op, storage.ErrFolderExists)
		}
		return fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return nil
}

func (s *CloudinaryStorage) DeleteFolder(ctx context.Context, folderPath string) error {
	const op = "storage.mediafolder.DeleteFolder"

	res, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folderPath})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.Error.Message != "" {
		return fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return nil
}

// Upload sends source (a URL or local path) to the given remote folder and
// returns the secure URL of the stored asset.
func (s *CloudinaryStorage) Upload(ctx context.Context, source, folder, publicID string) (string, error) {
	const op = "storage.mediafolder.Upload"

	res, err := s.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if res.Error.Message != "" {
		return "", fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return res.SecureURL, nil
}

func (s *CloudinaryStorage) BaseFolder() string {
	return s.baseFolder
}
