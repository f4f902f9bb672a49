package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/constants"
	"vendorhub/core/errors"
	"vendorhub/core/logger"
	"vendorhub/modules/availability/dto"
	"vendorhub/modules/availability/entity"
	"vendorhub/modules/availability/repository"
)

type AvailabilityService interface {
	SetDay(ctx context.Context, vendorID uuid.UUID, date time.Time, isAvailable bool) *errors.AppError
	BulkMark(ctx context.Context, vendorID uuid.UUID, req *dto.BulkMarkRequest) *errors.AppError
	ListRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]dto.AvailabilityRecordResponse, *errors.AppError)

	// Booking-driven flips; Source is tagged so cancellation can tell a
	// booking block from the vendor's own manual block.
	BlockForBooking(ctx context.Context, vendorID uuid.UUID, date time.Time) error
	ReleaseBookingBlock(ctx context.Context, vendorID uuid.UUID, date time.Time) error
}

type availabilityService struct {
	repo repository.AvailabilityRepository
}

func NewAvailabilityService(repo repository.AvailabilityRepository) AvailabilityService {
	return &availabilityService{repo: repo}
}

// SetDay records the vendor's manual open/closed toggle for one date.
func (s *availabilityService) SetDay(ctx context.Context, vendorID uuid.UUID, date time.Time, isAvailable bool) *errors.AppError {
	record := &entity.AvailabilityRecord{
		VendorID:    vendorID,
		Date:        truncateToDay(date),
		IsAvailable: isAvailable,
		Source:      entity.SourceManual,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to update availability", err)
	}
	return nil
}

// BulkMark applies one availability value to every day in the range. Marking
// a range available deletes the rows instead, restoring the default-open
// state.
func (s *availabilityService) BulkMark(ctx context.Context, vendorID uuid.UUID, req *dto.BulkMarkRequest) *errors.AppError {
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid start date", err)
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid end date", err)
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrInvalidInput, "end must not be before start", nil)
	}
	if end.Sub(start) > time.Duration(constants.MaxSyncRangeDays)*24*time.Hour {
		return errors.NewAppError(errors.ErrInvalidInput, "range cannot exceed one year", nil)
	}

	if req.IsAvailable {
		if err := s.repo.DeleteRange(ctx, vendorID, start, end); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to update availability", err)
		}
		return nil
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		record := &entity.AvailabilityRecord{
			VendorID:    vendorID,
			Date:        day,
			IsAvailable: false,
			Source:      entity.SourceManual,
		}
		if err := s.repo.Upsert(ctx, record); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to update availability", err)
		}
	}
	return nil
}

func (s *availabilityService) ListRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]dto.AvailabilityRecordResponse, *errors.AppError) {
	records, err := s.repo.ListRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load availability", err)
	}
	out := make([]dto.AvailabilityRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AvailabilityRecordResponse{
			Date:        r.Date.Format("2006-01-02"),
			IsAvailable: r.IsAvailable,
			Source:      r.Source,
		})
	}
	return out, nil
}

func (s *availabilityService) BlockForBooking(ctx context.Context, vendorID uuid.UUID, date time.Time) error {
	record := &entity.AvailabilityRecord{
		VendorID:    vendorID,
		Date:        truncateToDay(date),
		IsAvailable: false,
		Source:      entity.SourceBooking,
	}
	return s.repo.Upsert(ctx, record)
}

// ReleaseBookingBlock restores availability only when the existing block was
// created by a booking. A manual block on the same date survives a booking
// cancellation.
func (s *availabilityService) ReleaseBookingBlock(ctx context.Context, vendorID uuid.UUID, date time.Time) error {
	day := truncateToDay(date)
	existing, err := s.repo.Get(ctx, vendorID, day)
	if err != nil {
		return err
	}
	if existing == nil || existing.IsAvailable {
		return nil
	}
	if existing.Source != entity.SourceBooking {
		logger.Info("AvailabilityService:ReleaseBookingBlock:ManualBlockKept",
			"vendor_id", vendorID, "date", day.Format("2006-01-02"))
		return nil
	}
	return s.repo.DeleteRange(ctx, vendorID, day, day)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
