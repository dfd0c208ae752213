package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/storage"
	transport "snapfolio/internal/transport/http"
	"snapfolio/internal/transport/http/dto"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (models.Gallery, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryService) GetGallery(ctx context.Context, galleryID uuid.UUID) (models.Gallery, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryService) ListGalleries(ctx context.Context, withItems bool) ([]models.Gallery, error) {
	args := m.Called(ctx, withItems)
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryService) CheckDuplicateTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockGalleryService) AttachFolder(ctx context.Context, req dto.AttachFolderRequest) (models.Gallery, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Gallery), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) CreateFolder(ctx context.Context, folderName string) (string, error) {
	args := m.Called(ctx, folderName)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) UploadAsset(ctx context.Context, title, folder, source string) (string, error) {
	args := m.Called(ctx, title, folder, source)
	return args.String(0), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (models.Item, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateItemRequest) (models.Item, error) {
	args := m.Called(ctx, itemID, req)
	return args.Get(0).(models.Item), args.Error(1)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) UpdateComment(ctx context.Context, commentID uuid.UUID, req dto.UpdateCommentRequest) (models.Comment, error) {
	args := m.Called(ctx, commentID, req)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockEngagementService) UpdateReaction(ctx context.Context, reactionID uuid.UUID, req dto.UpdateReactionRequest) (models.Reaction, error) {
	args := m.Called(ctx, reactionID, req)
	return args.Get(0).(models.Reaction), args.Error(1)
}

func (m *MockEngagementService) UpdateShare(ctx context.Context, shareID uuid.UUID, req dto.UpdateShareRequest) (models.Share, error) {
	args := m.Called(ctx, shareID, req)
	return args.Get(0).(models.Share), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (dto.DashboardSummaryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.DashboardSummaryResponse), args.Error(1)
}

type testEnv struct {
	echo       *echo.Echo
	gallery    *MockGalleryService
	media      *MockMediaService
	item       *MockItemService
	engagement *MockEngagementService
	dashboard  *MockDashboardService
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	env := &testEnv{
		echo:       e,
		gallery:    new(MockGalleryService),
		media:      new(MockMediaService),
		item:       new(MockItemService),
		engagement: new(MockEngagementService),
		dashboard:  new(MockDashboardService),
	}

	r := transport.NewRouter(
		slog.Default(), env.gallery, env.media, env.item, env.engagement, env.dashboard)

	e.POST("/api/v1/galleries", r.CreateGallery)
	e.GET("/api/v1/galleries", r.ListGalleries)
	e.GET("/api/v1/galleries/:id", r.GetGallery)
	e.POST("/api/v1/galleries/check-duplicate", r.CheckDuplicate)
	e.POST("/api/v1/galleries/folder", r.AttachFolder)
	e.POST("/api/v1/provider/folder", r.CreateProviderFolder)
	e.POST("/api/v1/provider/upload", r.UploadAsset)
	e.POST("/api/v1/items", r.CreateItem)
	e.PATCH("/api/v1/items/:id", r.UpdateItem)
	e.PATCH("/api/v1/comments/:id", r.UpdateComment)
	e.PATCH("/api/v1/reactions/:id", r.UpdateReaction)
	e.PATCH("/api/v1/shares/:id", r.UpdateShare)
	e.GET("/api/v1/dashboard/summary", r.DashboardSummary)

	return env
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func TestCreateGallery(t *testing.T) {
	ownerID := uuid.New()
	galleryID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(env *testEnv)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"title":"Summer Wedding","owner_id":"` + ownerID.String() + `"}`,
			mockSetup: func(env *testEnv) {
				env.gallery.On("CreateGallery", mock.Anything, mock.MatchedBy(func(req dto.CreateGalleryRequest) bool {
					return req.Title == "Summer Wedding" && req.OwnerID == ownerID
				})).Return(models.Gallery{ID: galleryID, Title: "Summer Wedding"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title rejected before service",
			body:       `{"description":"no title"}`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "quota exceeded maps to 403",
			body: `{"title":"One Too Many"}`,
			mockSetup: func(env *testEnv) {
				env.gallery.On("CreateGallery", mock.Anything, mock.Anything).
					Return(models.Gallery{}, storage.ErrQuotaExceeded).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "unknown owner maps to 404",
			body: `{"title":"Orphan"}`,
			mockSetup: func(env *testEnv) {
				env.gallery.On("CreateGallery", mock.Anything, mock.Anything).
					Return(models.Gallery{}, storage.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "internal error stays generic",
			body: `{"title":"Broken"}`,
			mockSetup: func(env *testEnv) {
				env.gallery.On("CreateGallery", mock.Anything, mock.Anything).
					Return(models.Gallery{}, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.mockSetup(env)

			rec := env.do(http.MethodPost, "/api/v1/galleries", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				// Raw driver errors must not leak to clients.
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
			env.gallery.AssertExpectations(t)
		})
	}
}

func TestListGalleries(t *testing.T) {
	galleries := []models.Gallery{
		{ID: uuid.New(), Title: "First"},
		{ID: uuid.New(), Title: "Second"},
	}

	t.Run("items embedded by default", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("ListGalleries", mock.Anything, true).Return(galleries, nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/galleries", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env.gallery.AssertExpectations(t)
	})

	t.Run("with_items=false disables embedding", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("ListGalleries", mock.Anything, false).Return(galleries, nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/galleries?with_items=false", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env.gallery.AssertExpectations(t)
	})

	t.Run("empty store returns empty array not null", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("ListGalleries", mock.Anything, true).
			Return([]models.Gallery(nil), nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/galleries", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestGetGallery(t *testing.T) {
	galleryID := uuid.New()

	t.Run("gallery returned with items", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("GetGallery", mock.Anything, galleryID).
			Return(models.Gallery{
				ID:    galleryID,
				Title: "Summer Wedding",
				Items: []models.Item{{ID: uuid.New(), Title: "ceremony"}},
			}, nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/galleries/"+galleryID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.Gallery
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodGet, "/api/v1/galleries/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown gallery maps to 404", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("GetGallery", mock.Anything, galleryID).
			Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()

		rec := env.do(http.MethodGet, "/api/v1/galleries/"+galleryID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckDuplicate(t *testing.T) {
	t.Run("existing title", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("CheckDuplicateTitle", mock.Anything, "Summer Wedding").
			Return(true, nil).Once()

		rec := env.do(http.MethodPost, "/api/v1/galleries/check-duplicate", `{"title":"Summer Wedding"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.CheckDuplicateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Exists)
	})

	t.Run("missing title", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodPost, "/api/v1/galleries/check-duplicate", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAttachFolder(t *testing.T) {
	galleryID := uuid.New()

	t.Run("folder attached", func(t *testing.T) {
		env := newTestEnv()
		env.gallery.On("AttachFolder", mock.Anything, mock.MatchedBy(func(req dto.AttachFolderRequest) bool {
			return req.GalleryID == galleryID && req.FolderPath == "snapfolio/gallery-1-abc"
		})).Return(models.Gallery{ID: galleryID, FolderPath: "snapfolio/gallery-1-abc"}, nil).Once()

		body := `{"gallery_id":"` + galleryID.String() + `","folder_path":"snapfolio/gallery-1-abc"}`
		rec := env.do(http.MethodPost, "/api/v1/galleries/folder", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		env.gallery.AssertExpectations(t)
	})

	t.Run("missing folder path", func(t *testing.T) {
		env := newTestEnv()

		body := `{"gallery_id":"` + galleryID.String() + `"}`
		rec := env.do(http.MethodPost, "/api/v1/galleries/folder", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateProviderFolder(t *testing.T) {
	t.Run("folder created", func(t *testing.T) {
		env := newTestEnv()
		env.media.On("CreateFolder", mock.Anything, "wedding-2026").
			Return("snapfolio/wedding-2026", nil).Once()

		rec := env.do(http.MethodPost, "/api/v1/provider/folder", `{"folder_name":"wedding-2026"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.ProviderFolderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "snapfolio/wedding-2026", resp.FolderPath)
	})

	t.Run("missing name", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodPost, "/api/v1/provider/folder", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadAsset(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		env := newTestEnv()
		env.media.On("UploadAsset", mock.Anything, "ceremony", "snapfolio/wedding-2026", "").
			Return("https://res.cloudinary.com/demo/ceremony.jpg", nil).Once()

		body := `{"title":"ceremony","folder":"snapfolio/wedding-2026"}`
		rec := env.do(http.MethodPost, "/api/v1/provider/upload", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.ProviderUploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.URL)
	})

	t.Run("provider failure maps to 500", func(t *testing.T) {
		env := newTestEnv()
		env.media.On("UploadAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("upload rejected")).Once()

		body := `{"title":"ceremony","folder":"snapfolio/wedding-2026"}`
		rec := env.do(http.MethodPost, "/api/v1/provider/upload", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateItem(t *testing.T) {
	galleryID := uuid.New()

	t.Run("created", func(t *testing.T) {
		env := newTestEnv()
		env.item.On("CreateItem", mock.Anything, mock.MatchedBy(func(req dto.CreateItemRequest) bool {
			return req.Title == "Ceremony" && req.GalleryID == galleryID
		})).Return(models.Item{ID: uuid.New(), Title: "Ceremony"}, nil).Once()

		body := `{"title":"Ceremony","media_url":"https://cdn.example.com/c.jpg","gallery_id":"` + galleryID.String() + `"}`
		rec := env.do(http.MethodPost, "/api/v1/items", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env.item.AssertExpectations(t)
	})

	t.Run("invalid media url", func(t *testing.T) {
		env := newTestEnv()

		body := `{"title":"Ceremony","media_url":"not-a-url","gallery_id":"` + galleryID.String() + `"}`
		rec := env.do(http.MethodPost, "/api/v1/items", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name       string
		path       string
		body       string
		mockSetup  func(env *testEnv)
		wantStatus int
	}{
		{
			name: "title updated",
			path: "/api/v1/items/" + itemID.String(),
			body: `{"title":"Renamed"}`,
			mockSetup: func(env *testEnv) {
				env.item.On("UpdateItem", mock.Anything, itemID, mock.MatchedBy(func(req dto.UpdateItemRequest) bool {
					return req.Title != nil && *req.Title == "Renamed"
				})).Return(models.Item{ID: itemID, Title: "Renamed"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid id",
			path:       "/api/v1/items/not-a-uuid",
			body:       `{"title":"Renamed"}`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body rejected before service",
			path:       "/api/v1/items/" + itemID.String(),
			body:       `{}`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid media url rejected before service",
			path:       "/api/v1/items/" + itemID.String(),
			body:       `{"media_url":"not-a-url"}`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown item maps to 404",
			path: "/api/v1/items/" + itemID.String(),
			body: `{"title":"Renamed"}`,
			mockSetup: func(env *testEnv) {
				env.item.On("UpdateItem", mock.Anything, itemID, mock.Anything).
					Return(models.Item{}, storage.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.mockSetup(env)

			rec := env.do(http.MethodPatch, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env.item.AssertExpectations(t)
		})
	}
}

func TestUpdateComment(t *testing.T) {
	commentID := uuid.New()

	t.Run("text updated", func(t *testing.T) {
		env := newTestEnv()
		env.engagement.On("UpdateComment", mock.Anything, commentID, mock.Anything).
			Return(models.Comment{ID: commentID, Text: "edited"}, nil).Once()

		rec := env.do(http.MethodPatch, "/api/v1/comments/"+commentID.String(), `{"text":"edited"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodPatch, "/api/v1/comments/"+commentID.String(), `{"text":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown comment maps to 404", func(t *testing.T) {
		env := newTestEnv()
		env.engagement.On("UpdateComment", mock.Anything, commentID, mock.Anything).
			Return(models.Comment{}, storage.ErrCommentNotFound).Once()

		rec := env.do(http.MethodPatch, "/api/v1/comments/"+commentID.String(), `{"text":"edited"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateReaction(t *testing.T) {
	reactionID := uuid.New()

	t.Run("count updated", func(t *testing.T) {
		env := newTestEnv()
		env.engagement.On("UpdateReaction", mock.Anything, reactionID, mock.Anything).
			Return(models.Reaction{ID: reactionID, Count: 5}, nil).Once()

		rec := env.do(http.MethodPatch, "/api/v1/reactions/"+reactionID.String(), `{"count":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative count rejected", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodPatch, "/api/v1/reactions/"+reactionID.String(), `{"count":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateShare(t *testing.T) {
	shareID := uuid.New()

	t.Run("share type updated", func(t *testing.T) {
		env := newTestEnv()
		env.engagement.On("UpdateShare", mock.Anything, shareID, mock.Anything).
			Return(models.Share{ID: shareID, ShareType: models.ShareTypeInvite}, nil).Once()

		rec := env.do(http.MethodPatch, "/api/v1/shares/"+shareID.String(), `{"share_type":"invite"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown share type rejected", func(t *testing.T) {
		env := newTestEnv()

		rec := env.do(http.MethodPatch, "/api/v1/shares/"+shareID.String(), `{"share_type":"everyone"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboardSummary(t *testing.T) {
	t.Run("counts returned", func(t *testing.T) {
		env := newTestEnv()
		env.dashboard.On("Summary", mock.Anything).Return(dto.DashboardSummaryResponse{
			GalleryCount: 4,
			ItemCount:    40,
			UserCount:    8,
			CommentCount: 21,
		}, nil).Once()

		rec := env.do(http.MethodGet, "/api/v1/dashboard/summary", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DashboardSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 40, resp.ItemCount)
	})

	t.Run("count failure maps to 500", func(t *testing.T) {
		env := newTestEnv()
		env.dashboard.On("Summary", mock.Anything).
			Return(dto.DashboardSummaryResponse{}, errors.New("query failed")).Once()

		rec := env.do(http.MethodGet, "/api/v1/dashboard/summary", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
