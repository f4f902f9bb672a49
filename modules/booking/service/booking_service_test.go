package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/errors"
	availDto "vendorhub/modules/availability/dto"
	"vendorhub/modules/booking/dto"
	"vendorhub/modules/booking/entity"
)

type memoryBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (m *memoryBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	booking.ID = uuid.New()
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *memoryBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memoryBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *memoryBookingRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.VendorID == vendorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) ListByVendorBetween(_ context.Context, vendorID uuid.UUID, start, end time.Time) ([]entity.Booking, error) {
	return m.ListByVendor(nil, vendorID)
}

// recordingAvailability tracks which dates are blocked and released. Setting
// blockErrOn makes BlockForBooking fail for that date only.
type recordingAvailability struct {
	blocked    []time.Time
	released   []time.Time
	blockErrOn time.Time
	blockErr   error
}

func (r *recordingAvailability) SetDay(_ context.Context, _ uuid.UUID, _ time.Time, _ bool) *errors.AppError {
	return nil
}

func (r *recordingAvailability) BulkMark(_ context.Context, _ uuid.UUID, _ *availDto.BulkMarkRequest) *errors.AppError {
	return nil
}

func (r *recordingAvailability) ListRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]availDto.AvailabilityRecordResponse, *errors.AppError) {
	return nil, nil
}

func (r *recordingAvailability) BlockForBooking(_ context.Context, _ uuid.UUID, date time.Time) error {
	if r.blockErr != nil && date.Equal(r.blockErrOn) {
		return r.blockErr
	}
	r.blocked = append(r.blocked, date)
	return nil
}

func (r *recordingAvailability) ReleaseBookingBlock(_ context.Context, _ uuid.UUID, date time.Time) error {
	r.released = append(r.released, date)
	return nil
}

func TestConfirmBlocksEventDate(t *testing.T) {
	repo := newMemoryBookingRepo()
	avail := &recordingAvailability{}
	svc := NewBookingService(repo, avail, nil)

	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	booking, appErr := svc.Confirm(context.Background(), uuid.New(), uuid.New(), date)
	if appErr != nil {
		t.Fatalf("Confirm: %v", appErr)
	}
	if booking.Status != entity.StatusConfirmed {
		t.Fatalf("status = %s", booking.Status)
	}
	if len(avail.blocked) != 1 || !avail.blocked[0].Equal(date) {
		t.Fatalf("event date not blocked: %v", avail.blocked)
	}
}

func TestUpdateStatusEnforcesMachine(t *testing.T) {
	repo := newMemoryBookingRepo()
	avail := &recordingAvailability{}
	svc := NewBookingService(repo, avail, nil)

	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	booking, _ := svc.Confirm(context.Background(), uuid.New(), uuid.New(), date)

	if _, appErr := svc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateStatusRequest{Status: "completed"}); appErr != nil {
		t.Fatalf("confirmed -> completed should pass: %v", appErr)
	}
	_, appErr := svc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateStatusRequest{Status: "cancelled"})
	if appErr == nil || appErr.Code != errors.ErrInvalidTransition {
		t.Fatalf("completed -> cancelled should fail, got %v", appErr)
	}
}

func TestCancellationReleasesBlock(t *testing.T) {
	repo := newMemoryBookingRepo()
	avail := &recordingAvailability{}
	svc := NewBookingService(repo, avail, nil)

	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	booking, _ := svc.Confirm(context.Background(), uuid.New(), uuid.New(), date)

	if _, appErr := svc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateStatusRequest{Status: "cancelled"}); appErr != nil {
		t.Fatalf("cancel: %v", appErr)
	}
	if len(avail.released) != 1 || !avail.released[0].Equal(date) {
		t.Fatalf("cancellation did not release the date: %v", avail.released)
	}
}

func TestCompletionKeepsBlock(t *testing.T) {
	repo := newMemoryBookingRepo()
	avail := &recordingAvailability{}
	svc := NewBookingService(repo, avail, nil)

	booking, _ := svc.Confirm(context.Background(), uuid.New(), uuid.New(),
		time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))
	if _, appErr := svc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateStatusRequest{Status: "completed"}); appErr != nil {
		t.Fatalf("complete: %v", appErr)
	}
	if len(avail.released) != 0 {
		t.Fatal("completion must not release the date")
	}
}

func TestRescheduleMovesBlock(t *testing.T) {
	repo := newMemoryBookingRepo()
	avail := &recordingAvailability{}
	svc := NewBookingService(repo, avail, nil)

	oldDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	booking, _ := svc.Confirm(context.Background(), uuid.New(), uuid.New(), oldDate)

	updated, appErr := svc.Reschedule(context.Background(), booking.ID, newDate)
	if appErr != nil {
		t.Fatalf("Reschedule: %v", appErr)
	}
	if updated.Status != entity.StatusConfirmed {
		t.Fatalf("rescheduled booking must return to confirmed, got %s", updated.Status)
	}
	if !updated.EventDate.Equal(newDate) {
		t.Fatalf("date not moved: %v", updated.EventDate)
	}
	if len(avail.released) != 1 || !avail.released[0].Equal(oldDate) {
		t.Fatalf("old date not released: %v", avail.released)
	}
	// Confirm blocked the old date, reschedule blocks the new one.
	if len(avail.blocked) != 2 || !avail.blocked[1].Equal(newDate) {
		t.Fatalf("new date not blocked: %v", avail.blocked)
	}
}

func TestUpdateStatusUnknownBookingIsNotFound(t *testing.T) {
	svc := NewBookingService(newMemoryBookingRepo(), &recordingAvailability{}, nil)
	_, appErr := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateStatusRequest{Status: "cancelled"})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not-found, got %v", appErr)
	}
}

func TestConfirmFailsWhenBlockFails(t *testing.T) {
	repo := newMemoryBookingRepo()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	avail := &recordingAvailability{blockErrOn: date, blockErr: stderrors.New("db down")}
	svc := NewBookingService(repo, avail, nil)

	_, appErr := svc.Confirm(context.Background(), uuid.New(), uuid.New(), date)
	if appErr == nil || appErr.Code != errors.ErrInternalServer {
		t.Fatalf("expected internal error, got %v", appErr)
	}
	// The created booking must not be left confirmed on an open date.
	for _, b := range repo.bookings {
		if b.Status == entity.StatusConfirmed {
			t.Fatalf("booking left confirmed without an availability block")
		}
	}
}

func TestRescheduleRevertsWhenNewDateBlockFails(t *testing.T) {
	repo := newMemoryBookingRepo()
	oldDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	avail := &recordingAvailability{blockErrOn: newDate, blockErr: stderrors.New("db down")}
	svc := NewBookingService(repo, avail, nil)

	booking, _ := svc.Confirm(context.Background(), uuid.New(), uuid.New(), oldDate)

	_, appErr := svc.Reschedule(context.Background(), booking.ID, newDate)
	if appErr == nil || appErr.Code != errors.ErrInternalServer {
		t.Fatalf("expected internal error, got %v", appErr)
	}
	stored, _ := repo.GetByID(context.Background(), booking.ID)
	if !stored.EventDate.Equal(oldDate) {
		t.Fatalf("booking not reverted to old date: %v", stored.EventDate)
	}
	// Confirm blocked the old date, the revert re-blocks it.
	if len(avail.blocked) != 2 || !avail.blocked[1].Equal(oldDate) {
		t.Fatalf("old date block not restored: %v", avail.blocked)
	}
}
