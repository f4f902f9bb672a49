package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/errors"
	"vendorhub/core/logger"
	"vendorhub/core/params"
	bookingService "vendorhub/modules/booking/service"
	"vendorhub/modules/inquiry/dto"
	"vendorhub/modules/inquiry/entity"
	"vendorhub/modules/inquiry/repository"
	notifDto "vendorhub/modules/notification/dto"
	notifService "vendorhub/modules/notification/service"
)

type InquiryService interface {
	Create(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, *errors.AppError)
	UpdateStatus(ctx context.Context, inquiryID uuid.UUID, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, *errors.AppError)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedInquiryEntity, *errors.AppError)
}

type inquiryService struct {
	repo         repository.InquiryRepository
	bookingSvc   bookingService.BookingService
	notifService *notifService.NotificationService
}

func NewInquiryService(
	repo repository.InquiryRepository,
	bookingSvc bookingService.BookingService,
	notifSvc *notifService.NotificationService,
) InquiryService {
	return &inquiryService{
		repo:         repo,
		bookingSvc:   bookingSvc,
		notifService: notifSvc,
	}
}

func (s *inquiryService) Create(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, *errors.AppError) {
	plannerID, err := uuid.Parse(req.PlannerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid planner id", err)
	}
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid vendor id", err)
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event date, expected YYYY-MM-DD", err)
	}

	inquiry := &entity.Inquiry{
		PlannerID: plannerID,
		VendorID:  vendorID,
		EventDate: eventDate,
		Message:   req.Message,
		Status:    entity.StatusPending,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create inquiry", err)
	}

	s.notify(ctx, vendorID, "New inquiry",
		fmt.Sprintf("A planner asked about %s", eventDate.Format("2006-01-02")), "inquiry_received")
	return inquiryResponse(inquiry, uuid.Nil), nil
}

// UpdateStatus moves an inquiry along its lifecycle. Transitioning to booked
// creates a confirmed booking, which in turn blocks the vendor's
// availability for the event date.
func (s *inquiryService) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, *errors.AppError) {
	inquiry, err := s.repo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load inquiry", err)
	}
	if inquiry == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "inquiry not found", nil)
	}

	next := entity.InquiryStatus(req.Status)
	if !inquiry.CanTransitionTo(next) {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			fmt.Sprintf("cannot move a %s inquiry to %s", inquiry.Status, next), nil)
	}

	bookingID := uuid.Nil
	if next == entity.StatusBooked {
		booking, appErr := s.bookingSvc.Confirm(ctx, inquiry.VendorID, inquiry.ID, inquiry.EventDate)
		if appErr != nil {
			return nil, appErr
		}
		bookingID = booking.ID
	}

	if err := s.repo.UpdateStatus(ctx, inquiryID, next); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update inquiry", err)
	}
	inquiry.Status = next

	return inquiryResponse(inquiry, bookingID), nil
}

func (s *inquiryService) ListByVendor(ctx context.Context, vendorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedInquiryEntity, *errors.AppError) {
	result, err := s.repo.ListByVendor(ctx, vendorID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load inquiries", err)
	}
	return result, nil
}

func (s *inquiryService) notify(ctx context.Context, vendorID uuid.UUID, title, message, notifType string) {
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
		logger.Error("InquiryService:Notify:Error", "vendor_id", vendorID, "error", err)
	}
}

func inquiryResponse(inquiry *entity.Inquiry, bookingID uuid.UUID) *dto.InquiryResponse {
	resp := &dto.InquiryResponse{
		ID:        inquiry.ID.String(),
		PlannerID: inquiry.PlannerID.String(),
		VendorID:  inquiry.VendorID.String(),
		EventDate: inquiry.EventDate.Format("2006-01-02"),
		Message:   inquiry.Message,
		Status:    string(inquiry.Status),
	}
	if bookingID != uuid.Nil {
		resp.BookingID = bookingID.String()
	}
	return resp
}
