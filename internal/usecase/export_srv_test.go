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
	"github.com/xuri/excelize/v2"
)

func TestExportBookings_WritesSheet(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewExportService(repo, testLogger())
	landlordID := uuid.New()
	p := fakes.properties.add(landlordID, domain.PropertyTypeDormitory, entity.PropertyStatusPublished)
	room := fakes.rooms.add(p.ID, 500, 0)
	b := fakes.bookings.add(p, room, domain.BookingStatusCancelled, 1500)
	reason := "guest request"
	refund := 500.0
	fakes.bookings.items[b.ID].CancellationReason = &reason
	fakes.bookings.items[b.ID].RefundAmount = &refund

	other := fakes.properties.add(uuid.New(), domain.PropertyTypeDormitory, entity.PropertyStatusPublished)
	fakes.bookings.add(other, fakes.rooms.add(other.ID, 500, 0), domain.BookingStatusPending, 900)

	buf, err := svc.ExportBookings(context.Background(), landlordID, &request.BookingListRequest{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "BK-TEST", rows[1][0])
	assert.Equal(t, "2026-03-01", rows[1][6])
	assert.Equal(t, "3", rows[1][8])
	assert.Equal(t, "cancelled", rows[1][10])
	assert.Equal(t, "guest request", rows[1][13])
}

func TestExportBookings_InvalidFilter(t *testing.T) {
	repo, _ := newFakeRepos()
	svc := NewExportService(repo, testLogger())

	_, err := svc.ExportBookings(context.Background(), uuid.New(), &request.BookingListRequest{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
