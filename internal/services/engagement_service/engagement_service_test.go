package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"snapfolio/internal/domain/models"
	"snapfolio/internal/storage"
	"snapfolio/internal/transport/http/dto"
)

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockEngagementRepository) SaveReaction(ctx context.Context, reaction models.Reaction) (models.Reaction, error) {
	args := m.Called(ctx, reaction)
	return args.Get(0).(models.Reaction), args.Error(1)
}

func (m *MockEngagementRepository) SaveShare(ctx context.Context, share models.Share) (models.Share, error) {
	args := m.Called(ctx, share)
	return args.Get(0).(models.Share), args.Error(1)
}

func (m *MockEngagementRepository) UpdateCommentFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Comment, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockEngagementRepository) UpdateReactionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Reaction, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(models.Reaction), args.Error(1)
}

func (m *MockEngagementRepository) UpdateShareFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Share, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(models.Share), args.Error(1)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestEngagementService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.New()

	tests := []struct {
		name        string
		req         dto.UpdateCommentRequest
		mockSetup   func(repo *MockEngagementRepository)
		wantError   bool
		wantErrIs   error
		expectedErr string
	}{
		{
			name: "text updated",
			req:  dto.UpdateCommentRequest{Text: strptr("edited")},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateCommentFields", ctx, commentID, map[string]interface{}{
					"text": "edited",
				}).Return(models.Comment{ID: commentID, Text: "edited"}, nil).Once()
			},
		},
		{
			name:        "empty body rejected before repository",
			req:         dto.UpdateCommentRequest{},
			mockSetup:   func(repo *MockEngagementRepository) {},
			wantError:   true,
			expectedErr: "no fields to update",
		},
		{
			name: "unknown comment",
			req:  dto.UpdateCommentRequest{Text: strptr("edited")},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateCommentFields", ctx, commentID, mock.Anything).
					Return(models.Comment{}, storage.ErrCommentNotFound).Once()
			},
			wantError: true,
			wantErrIs: storage.ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEngagementRepository)
			service := NewEngagementService(slog.Default(), repo)

			tt.mockSetup(repo)

			got, err := service.UpdateComment(ctx, commentID, tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				if tt.expectedErr != "" {
					assert.Contains(t, err.Error(), tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, commentID, got.ID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestEngagementService_UpdateReaction(t *testing.T) {
	ctx := context.Background()
	reactionID := uuid.New()

	tests := []struct {
		name      string
		req       dto.UpdateReactionRequest
		mockSetup func(repo *MockEngagementRepository)
		wantError bool
	}{
		{
			name: "emoji and count updated",
			req:  dto.UpdateReactionRequest{Emoji: strptr("🔥"), Count: intptr(7)},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateReactionFields", ctx, reactionID, map[string]interface{}{
					"emoji": "🔥",
					"count": 7,
				}).Return(models.Reaction{ID: reactionID, Emoji: "🔥", Count: 7}, nil).Once()
			},
		},
		{
			name: "count can be reset to zero",
			req:  dto.UpdateReactionRequest{Count: intptr(0)},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateReactionFields", ctx, reactionID, map[string]interface{}{
					"count": 0,
				}).Return(models.Reaction{ID: reactionID, Count: 0}, nil).Once()
			},
		},
		{
			name:      "empty body rejected before repository",
			req:       dto.UpdateReactionRequest{},
			mockSetup: func(repo *MockEngagementRepository) {},
			wantError: true,
		},
		{
			name: "repository error",
			req:  dto.UpdateReactionRequest{Count: intptr(3)},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateReactionFields", ctx, reactionID, mock.Anything).
					Return(models.Reaction{}, errors.New("update failed")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEngagementRepository)
			service := NewEngagementService(slog.Default(), repo)

			tt.mockSetup(repo)

			got, err := service.UpdateReaction(ctx, reactionID, tt.req)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, reactionID, got.ID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestEngagementService_UpdateShare(t *testing.T) {
	ctx := context.Background()
	shareID := uuid.New()

	tests := []struct {
		name      string
		req       dto.UpdateShareRequest
		mockSetup func(repo *MockEngagementRepository)
		wantError bool
		wantErrIs error
	}{
		{
			name: "type and link updated",
			req: dto.UpdateShareRequest{
				ShareType: strptr("private"),
				ShareLink: strptr("https://snapfolio.example.com/s/abc"),
			},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateShareFields", ctx, shareID, map[string]interface{}{
					"share_type": "private",
					"share_link": "https://snapfolio.example.com/s/abc",
				}).Return(models.Share{ID: shareID, ShareType: models.ShareTypePrivate}, nil).Once()
			},
		},
		{
			name:      "empty body rejected before repository",
			req:       dto.UpdateShareRequest{},
			mockSetup: func(repo *MockEngagementRepository) {},
			wantError: true,
		},
		{
			name:      "unknown share type rejected before repository",
			req:       dto.UpdateShareRequest{ShareType: strptr("everyone")},
			mockSetup: func(repo *MockEngagementRepository) {},
			wantError: true,
		},
		{
			name: "unknown share",
			req:  dto.UpdateShareRequest{ShareType: strptr("public")},
			mockSetup: func(repo *MockEngagementRepository) {
				repo.On("UpdateShareFields", ctx, shareID, mock.Anything).
					Return(models.Share{}, storage.ErrShareNotFound).Once()
			},
			wantError: true,
			wantErrIs: storage.ErrShareNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEngagementRepository)
			service := NewEngagementService(slog.Default(), repo)

			tt.mockSetup(repo)

			got, err := service.UpdateShare(ctx, shareID, tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, shareID, got.ID)
			}

			repo.AssertExpectations(t)
		})
	}
}
