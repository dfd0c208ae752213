package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/lib/logger/sl"
	"snapfolio/internal/storage"
	"snapfolio/internal/transport/http/dto"
	"snapfolio/internal/transport/http/dto/response"
)

type GalleryService interface {
	CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (models.Gallery, error)
	GetGallery(ctx context.Context, galleryID uuid.UUID) (models.Gallery, error)
	ListGalleries(ctx context.Context, withItems bool) ([]models.Gallery, error)
	CheckDuplicateTitle(ctx context.Context, title string) (bool, error)
	AttachFolder(ctx context.Context, req dto.AttachFolderRequest) (models.Gallery, error)
}

type MediaService interface {
	CreateFolder(ctx context.Context, folderName string) (string, error)
	UploadAsset(ctx context.Context, title, folder, source string) (string, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateItemRequest) (models.Item, error)
}

type EngagementService interface {
	UpdateComment(ctx context.Context, commentID uuid.UUID, req dto.UpdateCommentRequest) (models.Comment, error)
	UpdateReaction(ctx context.Context, reactionID uuid.UUID, req dto.UpdateReactionRequest) (models.Reaction, error)
	UpdateShare(ctx context.Context, shareID uuid.UUID, req dto.UpdateShareRequest) (models.Share, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (dto.DashboardSummaryResponse, error)
}

type Routers struct {
	log               *slog.Logger
	GalleryService    GalleryService
	MediaService      MediaService
	ItemService       ItemService
	EngagementService EngagementService
	DashboardService  DashboardService
}

func NewRouter(
	log *slog.Logger,
	galleryService GalleryService,
	mediaService MediaService,
	itemService ItemService,
	engagementService EngagementService,
	dashboardService DashboardService,
) *Routers {
	return &Routers{
		log:               log,
		GalleryService:    galleryService,
		MediaService:      mediaService,
		ItemService:       itemService,
		EngagementService: engagementService,
		DashboardService:  dashboardService,
	}
}

// fail converts a service error into the JSON error response. Raw error
// text stays in the logs; clients only see the classified message.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrGalleryNotFound),
		errors.Is(err, storage.ErrItemNotFound),
		errors.Is(err, storage.ErrCommentNotFound),
		errors.Is(err, storage.ErrReactionNotFound),
		errors.Is(err, storage.ErrShareNotFound):
		log.Warn("resource not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, storage.ErrQuotaExceeded):
		log.Warn("quota exceeded", sl.Err(err))
		return c.JSON(http.StatusForbidden, response.ErrQuotaExceeded)
	default:
		log.Error("request failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

// CreateGallery godoc
// @Summary Create a gallery
// @Description Creates a gallery and its provider folder. The owner falls back to the configured default when omitted.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Gallery data"
// @Success 201 {object} models.Gallery
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Plan gallery limit reached"
// @Failure 404 {object} response.ErrorResponse "Owner not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateGalleryRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, gallery)
}

// ListGalleries godoc
// @Summary List galleries
// @Description Returns every gallery, newest first, items embedded unless with_items=false.
// @Tags galleries
// @Produce json
// @Param with_items query bool false "Embed items" default(true)
// @Success 200 {array} models.Gallery
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries [get]
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	log := r.log.With(
		slog.String("op", op),
	)

	withItems := c.QueryParam("with_items") != "false"

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context(), withItems)
	if err != nil {
		return r.fail(c, log, err)
	}

	if galleries == nil {
		galleries = []models.Gallery{}
	}

	return c.JSON(http.StatusOK, galleries)
}

// GetGallery godoc
// @Summary Get a gallery
// @Description Returns one gallery with its items embedded.
// @Tags galleries
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 200 {object} models.Gallery
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries/{id} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid gallery ID format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "invalid gallery ID format"))
	}

	gallery, err := r.GalleryService.GetGallery(c.Request().Context(), galleryID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, gallery)
}

// CheckDuplicate godoc
// @Summary Check for a duplicate gallery title
// @Description Exact-match existence check. Advisory: nothing prevents a concurrent create with the same title.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CheckDuplicateRequest true "Title to check"
// @Success 200 {object} dto.CheckDuplicateResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries/check-duplicate [post]
func (r *Routers) CheckDuplicate(c echo.Context) error {
	const op = "http.routers.CheckDuplicate"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CheckDuplicateRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	exists, err := r.GalleryService.CheckDuplicateTitle(c.Request().Context(), req.Title)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.CheckDuplicateResponse{Exists: exists})
}

// AttachFolder godoc
// @Summary Attach a provider folder to a gallery
// @Description Updates the gallery's folder path, or creates a placeholder gallery when the ID is unknown.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.AttachFolderRequest true "Gallery and folder"
// @Success 200 {object} models.Gallery
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries/folder [post]
func (r *Routers) AttachFolder(c echo.Context) error {
	const op = "http.routers.AttachFolder"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.AttachFolderRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	gallery, err := r.GalleryService.AttachFolder(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, gallery)
}

// CreateProviderFolder godoc
// @Summary Create a folder at the media provider
// @Description Creates the named folder under the configured base prefix. An already existing folder is treated as success.
// @Tags provider
// @Accept json
// @Produce json
// @Param request body dto.CreateProviderFolderRequest true "Folder name"
// @Success 200 {object} dto.ProviderFolderResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/provider/folder [post]
func (r *Routers) CreateProviderFolder(c echo.Context) error {
	const op = "http.routers.CreateProviderFolder"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateProviderFolderRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	folderPath, err := r.MediaService.CreateFolder(c.Request().Context(), req.FolderName)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.ProviderFolderResponse{
		Message:    "Folder created successfully",
		FolderPath: folderPath,
	})
}

// UploadAsset godoc
// @Summary Upload an asset to the media provider
// @Description Uploads the source (or a placeholder when omitted) into the given folder and returns the secure URL. The item row is created by a separate request.
// @Tags provider
// @Accept json
// @Produce json
// @Param request body dto.ProviderUploadRequest true "Upload parameters"
// @Success 200 {object} dto.ProviderUploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/provider/upload [post]
func (r *Routers) UploadAsset(c echo.Context) error {
	const op = "http.routers.UploadAsset"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ProviderUploadRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	url, err := r.MediaService.UploadAsset(c.Request().Context(), req.Title, req.Folder, req.Source)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.ProviderUploadResponse{
		Success: true,
		URL:     url,
	})
}

// CreateItem godoc
// @Summary Create an item
// @Description Persists the metadata of an uploaded media asset.
// @Tags items
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item data"
// @Success 201 {object} models.Item
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/items [post]
func (r *Routers) CreateItem(c echo.Context) error {
	const op = "http.routers.CreateItem"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateItemRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	item, err := r.ItemService.CreateItem(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary Partially update an item
// @Description Applies the set fields only. Invalid fields return 400 with the message list and leave the record untouched.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID" format(uuid)
// @Param request body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} models.Item
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/items/{id} [patch]
func (r *Routers) UpdateItem(c echo.Context) error {
	const op = "http.routers.UpdateItem"

	log := r.log.With(
		slog.String("op", op),
	)

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid item ID format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "invalid item ID format"))
	}

	var req dto.UpdateItemRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	if len(req.Updates()) == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "no fields to update"))
	}

	item, err := r.ItemService.UpdateItem(c.Request().Context(), itemID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateComment godoc
// @Summary Partially update a comment
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Comment UUID" format(uuid)
// @Param request body dto.UpdateCommentRequest true "Fields to update"
// @Success 200 {object} models.Comment
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/comments/{id} [patch]
func (r *Routers) UpdateComment(c echo.Context) error {
	const op = "http.routers.UpdateComment"

	log := r.log.With(
		slog.String("op", op),
	)

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid comment ID format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "invalid comment ID format"))
	}

	var req dto.UpdateCommentRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	if len(req.Updates()) == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "no fields to update"))
	}

	comment, err := r.EngagementService.UpdateComment(c.Request().Context(), commentID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, comment)
}

// UpdateReaction godoc
// @Summary Partially update a reaction
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Reaction UUID" format(uuid)
// @Param request body dto.UpdateReactionRequest true "Fields to update"
// @Success 200 {object} models.Reaction
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/reactions/{id} [patch]
func (r *Routers) UpdateReaction(c echo.Context) error {
	const op = "http.routers.UpdateReaction"

	log := r.log.With(
		slog.String("op", op),
	)

	reactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid reaction ID format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "invalid reaction ID format"))
	}

	var req dto.UpdateReactionRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	if len(req.Updates()) == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "no fields to update"))
	}

	reaction, err := r.EngagementService.UpdateReaction(c.Request().Context(), reactionID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, reaction)
}

// UpdateShare godoc
// @Summary Partially update a share
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Share UUID" format(uuid)
// @Param request body dto.UpdateShareRequest true "Fields to update"
// @Success 200 {object} models.Share
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/shares/{id} [patch]
func (r *Routers) UpdateShare(c echo.Context) error {
	const op = "http.routers.UpdateShare"

	log := r.log.With(
		slog.String("op", op),
	)

	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid share ID format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "invalid share ID format"))
	}

	var req dto.UpdateShareRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", response.ValidationMessages(err)...))
	}

	if len(req.Updates()) == 0 {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			"invalid_request", "no fields to update"))
	}

	share, err := r.EngagementService.UpdateShare(c.Request().Context(), shareID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, share)
}

// DashboardSummary godoc
// @Summary Dashboard counts
// @Description Four independent count queries; each reflects the store at the moment of its own query.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/dashboard/summary [get]
func (r *Routers) DashboardSummary(c echo.Context) error {
	const op = "http.routers.DashboardSummary"

	log := r.log.With(
		slog.String("op", op),
	)

	summary, err := r.DashboardService.Summary(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, summary)
}
