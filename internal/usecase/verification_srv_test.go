package usecase

import (
	"context"
	"mime/multipart"
	"testing"

	"dorm-rental/internal/dto/request"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resubmitRequest() *request.ResubmitVerificationRequest {
	return &request.ResubmitVerificationRequest{
		IDType:  "passport",
		IDFront: upload("front.jpg"),
		IDBack:  upload("back.jpg"),
	}
}

func TestVerification_StatusDefaultsToNotSubmitted(t *testing.T) {
	repo, _ := newFakeRepos()
	svc := NewVerificationService(repo, &fakeStore{}, testLogger())

	status, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationNotSubmitted, status)

	mine, err := svc.MyVerification(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, mine.CanResubmit)
	assert.Empty(t, mine.History)
}

func TestVerification_ResubmitFlow(t *testing.T) {
	repo, _ := newFakeRepos()
	store := &fakeStore{}
	svc := NewVerificationService(repo, store, testLogger())
	ctx := context.Background()
	landlordID := uuid.New()
	adminID := uuid.New()

	first, err := svc.Resubmit(ctx, landlordID, resubmitRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, first.Status)
	assert.Len(t, store.saved, 2)

	// no resubmission while pending
	_, err = svc.Resubmit(ctx, landlordID, resubmitRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot resubmit")

	rejected, err := svc.Review(ctx, adminID, first.ID, &request.ReviewVerificationRequest{Status: "rejected", Notes: "blurry photo"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationRejected, rejected.Status)

	// a decided request cannot be reviewed again
	_, err = svc.Review(ctx, adminID, first.ID, &request.ReviewVerificationRequest{Status: "approved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot review")

	second, err := svc.Resubmit(ctx, landlordID, resubmitRequest())
	require.NoError(t, err)

	mine, err := svc.MyVerification(ctx, landlordID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, mine.Status)
	assert.False(t, mine.CanResubmit)
	require.Len(t, mine.History, 2)
	assert.Equal(t, second.ID, mine.History[0].ID)
}

func TestVerification_ResubmitValidation(t *testing.T) {
	repo, _ := newFakeRepos()
	store := &fakeStore{}
	svc := NewVerificationService(repo, store, testLogger())

	_, err := svc.Resubmit(context.Background(), uuid.New(), &request.ResubmitVerificationRequest{
		IDType:  "library_card",
		IDFront: upload("front.jpg"),
	})

	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_type")
	assert.Contains(t, verr.Fields, "id_back")
	assert.Empty(t, store.saved)
}

func TestVerification_ResubmitRemovesFrontWhenBackFails(t *testing.T) {
	repo, _ := newFakeRepos()
	store := &fakeStore{failOn: "back.jpg"}
	svc := NewVerificationService(repo, store, testLogger())

	req := resubmitRequest()
	req.IDBack = &multipart.FileHeader{Filename: "back.jpg"}
	_, err := svc.Resubmit(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Equal(t, store.saved, store.removed)
}
