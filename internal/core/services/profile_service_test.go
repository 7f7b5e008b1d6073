package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_EmptyWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	repo.On("GetProfile", ctx, testUserID).Return(nil, apperrors.NewNotFoundError("profile owner"))

	profile, err := services.NewProfileService(repo).GetProfile(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUserID, profile.ID)
	assert.Nil(t, profile.Username)
	assert.Nil(t, profile.FullName)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	username := "saver"
	repo.On("UpsertProfile", ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.ID == testUserID && p.Username != nil && *p.Username == username && p.FullName == nil && !p.UpdatedAt.IsZero()
	})).Return(nil).Once()

	profile, err := services.NewProfileService(repo).UpdateProfile(ctx, testUserID, domain.UpdateProfileInput{Username: &username})

	require.NoError(t, err)
	assert.Equal(t, username, *profile.Username)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_TooLong(t *testing.T) {
	repo := new(MockProfileRepository)
	long := strings.Repeat("x", 65)

	_, err := services.NewProfileService(repo).UpdateProfile(context.Background(), testUserID, domain.UpdateProfileInput{Username: &long})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}
