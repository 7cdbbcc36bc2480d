package usecase

import (
	"context"
	"testing"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/dto/request"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_OnePerProperty(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()
	tenant := fakes.users.add(entity.RoleTenant, "secret123")
	p := fakes.properties.add(uuid.New(), domain.PropertyTypeDormitory, entity.PropertyStatusPublished)

	resp, err := svc.CreateReview(ctx, tenant.ID, &request.CreateReviewRequest{
		PropertyID: p.ID.String(),
		Rating:     4,
		Comment:    ptr("  Clean and quiet  "),
	})
	require.NoError(t, err)
	assert.Equal(t, tenant.Name, resp.UserName)
	require.NotNil(t, resp.Comment)
	assert.Equal(t, "Clean and quiet", *resp.Comment)

	_, err = svc.CreateReview(ctx, tenant.ID, &request.CreateReviewRequest{PropertyID: p.ID.String(), Rating: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already reviewed")
}

func TestCreateReview_RatingRange(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewReviewService(repo, testLogger())
	p := fakes.properties.add(uuid.New(), domain.PropertyTypeDormitory, entity.PropertyStatusPublished)

	_, err := svc.CreateReview(context.Background(), uuid.New(), &request.CreateReviewRequest{PropertyID: p.ID.String(), Rating: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetPropertyReviews_Stats(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()
	p := fakes.properties.add(uuid.New(), domain.PropertyTypeDormitory, entity.PropertyStatusPublished)

	for _, rating := range []int{5, 4} {
		_, err := svc.CreateReview(ctx, uuid.New(), &request.CreateReviewRequest{PropertyID: p.ID.String(), Rating: rating})
		require.NoError(t, err)
	}

	resp, err := svc.GetPropertyReviews(ctx, p.ID.String(), &request.PaginatedRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, resp.Stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), resp.Stats.ReviewCount)
	assert.Len(t, resp.Reviews.Data, 2)
	assert.Equal(t, 1, resp.Reviews.Pagination.Page)
}
