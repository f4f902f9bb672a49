package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/core/params"
	"vendorhub/modules/inquiry/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedInquiryEntity, error)
}

type inquiryRepository struct {
	db database.IDatabase
}

func NewInquiryRepository(db database.IDatabase) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (planner_id, vendor_id, event_date, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		inquiry.PlannerID, inquiry.VendorID, inquiry.EventDate, inquiry.Message, inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		logger.Error("InquiryRepository:Create:Error:", err)
	}
	return err
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	query := `
		SELECT id, planner_id, vendor_id, event_date, message, status, created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`
	var inquiry entity.Inquiry
	err := r.db.GetContext(ctx, &inquiry, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("InquiryRepository:GetByID:Error:", err)
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) error {
	return r.db.ExecContext(ctx, `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
}

func (r *inquiryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedInquiryEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	baseQuery := `FROM inquiries WHERE vendor_id = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, vendorID)
	if err != nil {
		logger.Error("InquiryRepository:ListByVendor:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var inquiries []entity.Inquiry
	err = r.db.SelectContext(ctx, &inquiries, query, vendorID, queryParams.PageSize, offset)
	if err != nil {
		logger.Error("InquiryRepository:ListByVendor:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedInquiryEntity{
		Items:      inquiries,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}
