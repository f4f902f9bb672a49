package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/errors"
	"vendorhub/core/logger"
	availService "vendorhub/modules/availability/service"
	"vendorhub/modules/booking/dto"
	"vendorhub/modules/booking/entity"
	"vendorhub/modules/booking/repository"
	notifDto "vendorhub/modules/notification/dto"
	notifService "vendorhub/modules/notification/service"
)

type BookingService interface {
	Confirm(ctx context.Context, vendorID, inquiryID uuid.UUID, eventDate time.Time) (*entity.Booking, *errors.AppError)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateStatusRequest) (*entity.Booking, *errors.AppError)
	Reschedule(ctx context.Context, bookingID uuid.UUID, newDate time.Time) (*entity.Booking, *errors.AppError)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]dto.BookingResponse, *errors.AppError)
}

type bookingService struct {
	repo         repository.BookingRepository
	availability availService.AvailabilityService
	notifService *notifService.NotificationService
}

func NewBookingService(
	repo repository.BookingRepository,
	availability availService.AvailabilityService,
	notifSvc *notifService.NotificationService,
) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		notifService: notifSvc,
	}
}

// Confirm creates a confirmed booking and blocks the vendor's availability
// for that date. The block is an idempotent upsert, so a duplicated
// confirmation converges rather than duplicating rows. A confirmed booking
// must never leave its date reading as available, so a failed block cancels
// the booking and fails the call.
func (s *bookingService) Confirm(ctx context.Context, vendorID, inquiryID uuid.UUID, eventDate time.Time) (*entity.Booking, *errors.AppError) {
	booking := &entity.Booking{
		VendorID:  vendorID,
		InquiryID: inquiryID,
		EventDate: eventDate,
		Status:    entity.StatusConfirmed,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create booking", err)
	}

	if err := s.availability.BlockForBooking(ctx, vendorID, eventDate); err != nil {
		logger.Error("BookingService:Confirm:BlockForBooking:Error", "booking_id", booking.ID, "error", err)
		booking.Status = entity.StatusCancelled
		if uerr := s.repo.Update(ctx, booking); uerr != nil {
			logger.Error("BookingService:Confirm:Compensate:Error", "booking_id", booking.ID, "error", uerr)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to block availability for booking", err)
	}

	s.notify(ctx, vendorID, "New booking confirmed",
		fmt.Sprintf("A booking was confirmed for %s", eventDate.Format("2006-01-02")), "booking_confirmed")
	return booking, nil
}

// UpdateStatus applies one status-machine transition. Cancellation releases
// the availability block only if it was booking-linked; a manual block on
// the same date stays.
func (s *bookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateStatusRequest) (*entity.Booking, *errors.AppError) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}

	next := entity.BookingStatus(req.Status)
	if !booking.CanTransitionTo(next) {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			fmt.Sprintf("cannot move a %s booking to %s", booking.Status, next), nil)
	}

	booking.Status = next
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update booking", err)
	}

	if next == entity.StatusCancelled {
		if err := s.availability.ReleaseBookingBlock(ctx, booking.VendorID, booking.EventDate); err != nil {
			logger.Error("BookingService:UpdateStatus:ReleaseBookingBlock:Error", "booking_id", booking.ID, "error", err)
		}
		s.notify(ctx, booking.VendorID, "Booking cancelled",
			fmt.Sprintf("The booking for %s was cancelled", booking.EventDate.Format("2006-01-02")), "booking_cancelled")
	}

	return booking, nil
}

// Reschedule moves a booking to a new date: the old date's booking block is
// released, the new date blocked, and the booking returns to confirmed.
func (s *bookingService) Reschedule(ctx context.Context, bookingID uuid.UUID, newDate time.Time) (*entity.Booking, *errors.AppError) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}
	if !booking.CanTransitionTo(entity.StatusRescheduled) && booking.Status != entity.StatusRescheduled {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			fmt.Sprintf("cannot reschedule a %s booking", booking.Status), nil)
	}

	oldDate := booking.EventDate
	booking.EventDate = newDate
	booking.Status = entity.StatusConfirmed
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update booking", err)
	}

	// Releasing the old block can fail safely: the old date stays blocked,
	// which over-reports busyness but breaks no invariant.
	if err := s.availability.ReleaseBookingBlock(ctx, booking.VendorID, oldDate); err != nil {
		logger.Error("BookingService:Reschedule:ReleaseBookingBlock:Error", "booking_id", booking.ID, "error", err)
	}
	// Failing to block the new date would. Revert the booking to the old
	// date, restore its block, and fail the call.
	if err := s.availability.BlockForBooking(ctx, booking.VendorID, newDate); err != nil {
		logger.Error("BookingService:Reschedule:BlockForBooking:Error", "booking_id", booking.ID, "error", err)
		booking.EventDate = oldDate
		if uerr := s.repo.Update(ctx, booking); uerr != nil {
			logger.Error("BookingService:Reschedule:Revert:Error", "booking_id", booking.ID, "error", uerr)
		}
		if berr := s.availability.BlockForBooking(ctx, booking.VendorID, oldDate); berr != nil {
			logger.Error("BookingService:Reschedule:RestoreBlock:Error", "booking_id", booking.ID, "error", berr)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to block availability for the new date", err)
	}

	s.notify(ctx, booking.VendorID, "Booking rescheduled",
		fmt.Sprintf("A booking moved from %s to %s",
			oldDate.Format("2006-01-02"), newDate.Format("2006-01-02")), "booking_rescheduled")
	return booking, nil
}

func (s *bookingService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]dto.BookingResponse, *errors.AppError) {
	bookings, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load bookings", err)
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingResponse{
			ID:        b.ID.String(),
			VendorID:  b.VendorID.String(),
			InquiryID: b.InquiryID.String(),
			EventDate: b.EventDate.Format("2006-01-02"),
			Status:    string(b.Status),
		})
	}
	return out, nil
}

func (s *bookingService) notify(ctx context.Context, vendorID uuid.UUID, title, message, notifType string) {
	if s.notifService == nil {
		return
	}
	err := s.notifService.Create(ctx, &notifDto.CreateNotificationRequest{
		UserID:  vendorID,
		Title:   title,
		Message: message,
		Type:    notifType,
	})
	if err != nil {
		logger.Error("BookingService:Notify:Error", "vendor_id", vendorID, "error", err)
	}
}
