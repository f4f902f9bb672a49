package entity

import (
	"github.com/lib/pq"

	"vendorhub/core/entity"
)

type VendorCategory string

const (
	CategoryVenue       VendorCategory = "venue"
	CategoryCatering    VendorCategory = "catering"
	CategoryPhotography VendorCategory = "photography"
	CategoryMusic       VendorCategory = "music"
	CategoryFlorist     VendorCategory = "florist"
	CategoryPlanning    VendorCategory = "planning"
	CategoryOther       VendorCategory = "other"
)

func (c VendorCategory) Valid() bool {
	switch c {
	case CategoryVenue, CategoryCatering, CategoryPhotography,
		CategoryMusic, CategoryFlorist, CategoryPlanning, CategoryOther:
		return true
	}
	return false
}

type Vendor struct {
	entity.BaseEntity
	BusinessName  string         `db:"business_name" json:"business_name"`
	Slug          string         `db:"slug" json:"slug"`
	Category      VendorCategory `db:"category" json:"category"`
	Timezone      string         `db:"timezone" json:"timezone"`
	Bio           string         `db:"bio" json:"bio"`
	PortfolioKeys pq.StringArray `db:"portfolio_keys" json:"portfolio_keys"`
}

type PaginatedVendorEntity = entity.Pagination[Vendor]
