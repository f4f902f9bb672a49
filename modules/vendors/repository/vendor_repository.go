package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/core/params"
	"vendorhub/modules/vendors/entity"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Vendor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdatePortfolioKeys(ctx context.Context, id uuid.UUID, keys []string) error
	List(ctx context.Context, category entity.VendorCategory, queryParams params.QueryParams) (*entity.PaginatedVendorEntity, error)
}

type vendorRepository struct {
	db database.IDatabase
}

func NewVendorRepository(db database.IDatabase) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (business_name, slug, category, timezone, bio, portfolio_keys, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		vendor.BusinessName, vendor.Slug, vendor.Category, vendor.Timezone, vendor.Bio, vendor.PortfolioKeys,
	).Scan(&vendor.ID, &vendor.CreatedAt, &vendor.UpdatedAt)
	if err != nil {
		logger.Error("VendorRepository:Create:Error:", err)
	}
	return err
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.GetContext(ctx, &vendor, `SELECT * FROM vendors WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("VendorRepository:GetByID:Error:", err)
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.GetContext(ctx, &vendor, `SELECT * FROM vendors WHERE slug = $1`, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("VendorRepository:GetBySlug:Error:", err)
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM vendors WHERE slug = $1)`, slug)
	if err != nil {
		logger.Error("VendorRepository:SlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET business_name = $1, category = $2, timezone = $3, bio = $4, updated_at = NOW()
		WHERE id = $5
	`
	err := r.db.ExecContext(ctx, query,
		vendor.BusinessName, vendor.Category, vendor.Timezone, vendor.Bio, vendor.ID,
	)
	if err != nil {
		logger.Error("VendorRepository:Update:Error:", err)
	}
	return err
}

func (r *vendorRepository) UpdatePortfolioKeys(ctx context.Context, id uuid.UUID, keys []string) error {
	err := r.db.ExecContext(ctx,
		`UPDATE vendors SET portfolio_keys = $1, updated_at = NOW() WHERE id = $2`,
		pq.StringArray(keys), id,
	)
	if err != nil {
		logger.Error("VendorRepository:UpdatePortfolioKeys:Error:", err)
	}
	return err
}

func (r *vendorRepository) List(ctx context.Context, category entity.VendorCategory, queryParams params.QueryParams) (*entity.PaginatedVendorEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	baseQuery := `FROM vendors`
	args := []any{}
	if category != "" {
		baseQuery += ` WHERE category = $1`
		args = append(args, category)
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...)
	if err != nil {
		logger.Error("VendorRepository:List:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT * %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		baseQuery, len(args)+1, len(args)+2,
	)
	args = append(args, queryParams.PageSize, offset)

	var vendors []entity.Vendor
	err = r.db.SelectContext(ctx, &vendors, query, args...)
	if err != nil {
		logger.Error("VendorRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedVendorEntity{
		Items:      vendors,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}
