package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"vendorhub/modules/availability/dto"
	"vendorhub/modules/availability/entity"
)

// memoryRepo keys records by date string, mirroring the one-row-per-day
// constraint of the real table.
type memoryRepo struct {
	records map[string]entity.AvailabilityRecord
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: map[string]entity.AvailabilityRecord{}}
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (m *memoryRepo) Upsert(_ context.Context, record *entity.AvailabilityRecord) error {
	m.records[dayKey(record.Date)] = *record
	return nil
}

func (m *memoryRepo) Get(_ context.Context, _ uuid.UUID, date time.Time) (*entity.AvailabilityRecord, error) {
	r, ok := m.records[dayKey(date)]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memoryRepo) ListRange(_ context.Context, _ uuid.UUID, start, end time.Time) ([]entity.AvailabilityRecord, error) {
	var out []entity.AvailabilityRecord
	for _, r := range m.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) DeleteRange(_ context.Context, _ uuid.UUID, start, end time.Time) error {
	for key, r := range m.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			delete(m.records, key)
		}
	}
	return nil
}

func TestSetDayRecordsManualSource(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)
	vendorID := uuid.New()
	date := time.Date(2025, 6, 14, 15, 30, 0, 0, time.UTC)

	if appErr := svc.SetDay(context.Background(), vendorID, date, false); appErr != nil {
		t.Fatalf("SetDay: %v", appErr)
	}

	r, ok := repo.records["2025-06-14"]
	if !ok {
		t.Fatal("record not written, or time-of-day not truncated")
	}
	if r.IsAvailable || r.Source != entity.SourceManual {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestBulkMarkUnavailableWritesEveryDay(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)

	appErr := svc.BulkMark(context.Background(), uuid.New(), &dto.BulkMarkRequest{
		Start: "2025-06-10", End: "2025-06-13", IsAvailable: false,
	})
	if appErr != nil {
		t.Fatalf("BulkMark: %v", appErr)
	}
	if len(repo.records) != 4 {
		t.Fatalf("expected 4 records inclusive, got %d", len(repo.records))
	}
}

func TestBulkMarkAvailableRestoresDefaultOpen(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)
	vendorID := uuid.New()

	if appErr := svc.BulkMark(context.Background(), vendorID, &dto.BulkMarkRequest{
		Start: "2025-06-10", End: "2025-06-12", IsAvailable: false,
	}); appErr != nil {
		t.Fatalf("block: %v", appErr)
	}
	if appErr := svc.BulkMark(context.Background(), vendorID, &dto.BulkMarkRequest{
		Start: "2025-06-10", End: "2025-06-12", IsAvailable: true,
	}); appErr != nil {
		t.Fatalf("unblock: %v", appErr)
	}
	if len(repo.records) != 0 {
		t.Fatalf("marking available must delete rows, %d remain", len(repo.records))
	}
}

func TestBulkMarkValidatesRange(t *testing.T) {
	svc := NewAvailabilityService(newMemoryRepo())
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "not-a-date", "2025-06-12"},
		{"bad end", "2025-06-10", "soon"},
		{"inverted", "2025-06-12", "2025-06-10"},
		{"over a year", "2025-01-01", "2026-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := svc.BulkMark(context.Background(), uuid.New(), &dto.BulkMarkRequest{
				Start: tt.start, End: tt.end, IsAvailable: false,
			})
			if appErr == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestReleaseBookingBlockKeepsManualBlocks(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)
	vendorID := uuid.New()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	// Vendor blocked the day themselves; a booking cancellation on the same
	// date must not reopen it.
	if appErr := svc.SetDay(context.Background(), vendorID, date, false); appErr != nil {
		t.Fatalf("SetDay: %v", appErr)
	}
	if err := svc.ReleaseBookingBlock(context.Background(), vendorID, date); err != nil {
		t.Fatalf("ReleaseBookingBlock: %v", err)
	}
	if _, ok := repo.records["2025-06-14"]; !ok {
		t.Fatal("manual block was released by a booking cancellation")
	}
}

func TestReleaseBookingBlockReleasesBookingBlocks(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)
	vendorID := uuid.New()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	if err := svc.BlockForBooking(context.Background(), vendorID, date); err != nil {
		t.Fatalf("BlockForBooking: %v", err)
	}
	if repo.records["2025-06-14"].Source != entity.SourceBooking {
		t.Fatal("booking block not tagged")
	}
	if err := svc.ReleaseBookingBlock(context.Background(), vendorID, date); err != nil {
		t.Fatalf("ReleaseBookingBlock: %v", err)
	}
	if _, ok := repo.records["2025-06-14"]; ok {
		t.Fatal("booking block not released")
	}
}

func TestReleaseBookingBlockNoRecordIsNoop(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewAvailabilityService(repo)
	if err := svc.ReleaseBookingBlock(context.Background(), uuid.New(), time.Now()); err != nil {
		t.Fatalf("expected noop, got %v", err)
	}
}
