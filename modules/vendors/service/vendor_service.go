package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"vendorhub/core/errors"
	"vendorhub/core/logger"
	"vendorhub/core/params"
	"vendorhub/core/storage"
	"vendorhub/core/utils"
	"vendorhub/modules/vendors/dto"
	"vendorhub/modules/vendors/entity"
	"vendorhub/modules/vendors/repository"
)

type VendorService interface {
	Create(ctx context.Context, req *dto.CreateVendorRequest) (*entity.Vendor, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, *errors.AppError)
	GetBySlug(ctx context.Context, vendorSlug string) (*entity.Vendor, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVendorRequest) (*entity.Vendor, *errors.AppError)
	List(ctx context.Context, category string, queryParams params.QueryParams) (*entity.PaginatedVendorEntity, *errors.AppError)
	UploadPortfolioImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*dto.PortfolioUploadResponse, *errors.AppError)
}

type vendorService struct {
	repo    repository.VendorRepository
	storage storage.ObjectStorage
}

func NewVendorService(repo repository.VendorRepository, objectStorage storage.ObjectStorage) VendorService {
	return &vendorService{repo: repo, storage: objectStorage}
}

func (s *vendorService) Create(ctx context.Context, req *dto.CreateVendorRequest) (*entity.Vendor, *errors.AppError) {
	if req.BusinessName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "business name is required", nil)
	}
	category := entity.VendorCategory(req.Category)
	if !category.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown vendor category", nil)
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone", err)
	}

	vendorSlug, appErr := s.uniqueSlug(ctx, req.BusinessName)
	if appErr != nil {
		return nil, appErr
	}

	vendor := &entity.Vendor{
		BusinessName: req.BusinessName,
		Slug:         vendorSlug,
		Category:     category,
		Timezone:     timezone,
		Bio:          req.Bio,
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create vendor", err)
	}

	logger.Info("VendorService:Create:Created", "vendor_id", vendor.ID, "slug", vendor.Slug)
	return vendor, nil
}

// uniqueSlug derives a URL slug from the business name, appending a short
// random suffix when the plain slug is already taken.
func (s *vendorService) uniqueSlug(ctx context.Context, businessName string) (string, *errors.AppError) {
	base := slug.Make(businessName)
	if base == "" {
		return "", errors.NewAppError(errors.ErrInvalidInput, "business name yields an empty slug", nil)
	}

	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to check slug", err)
	}
	if !exists {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, utils.GenerateID()), nil
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, *errors.AppError) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load vendor", err)
	}
	if vendor == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "vendor not found", nil)
	}
	return vendor, nil
}

func (s *vendorService) GetBySlug(ctx context.Context, vendorSlug string) (*entity.Vendor, *errors.AppError) {
	vendor, err := s.repo.GetBySlug(ctx, vendorSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load vendor", err)
	}
	if vendor == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "vendor not found", nil)
	}
	return vendor, nil
}

func (s *vendorService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVendorRequest) (*entity.Vendor, *errors.AppError) {
	vendor, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.BusinessName != "" {
		vendor.BusinessName = req.BusinessName
	}
	if req.Category != "" {
		category := entity.VendorCategory(req.Category)
		if !category.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown vendor category", nil)
		}
		vendor.Category = category
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone", err)
		}
		vendor.Timezone = req.Timezone
	}
	if req.Bio != "" {
		vendor.Bio = req.Bio
	}

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update vendor", err)
	}
	return vendor, nil
}

func (s *vendorService) List(ctx context.Context, category string, queryParams params.QueryParams) (*entity.PaginatedVendorEntity, *errors.AppError) {
	if category != "" && !entity.VendorCategory(category).Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown vendor category", nil)
	}
	result, err := s.repo.List(ctx, entity.VendorCategory(category), queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list vendors", err)
	}
	return result, nil
}

func (s *vendorService) UploadPortfolioImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*dto.PortfolioUploadResponse, *errors.AppError) {
	vendor, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	key := fmt.Sprintf("vendors/%s/portfolio/%s-%s", vendor.ID, utils.GenerateID(), slug.Make(filename))
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload image", err)
	}

	keys := append([]string(vendor.PortfolioKeys), key)
	if err := s.repo.UpdatePortfolioKeys(ctx, vendor.ID, keys); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to record image", err)
	}

	return &dto.PortfolioUploadResponse{Key: key, URL: url}, nil
}
