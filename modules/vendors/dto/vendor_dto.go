package dto

type CreateVendorRequest struct {
	BusinessName string `json:"business_name"`
	Category     string `json:"category"`
	Timezone     string `json:"timezone"`
	Bio          string `json:"bio"`
}

type UpdateVendorRequest struct {
	BusinessName string `json:"business_name"`
	Category     string `json:"category"`
	Timezone     string `json:"timezone"`
	Bio          string `json:"bio"`
}

type VendorResponse struct {
	ID            string   `json:"id"`
	BusinessName  string   `json:"business_name"`
	Slug          string   `json:"slug"`
	Category      string   `json:"category"`
	Timezone      string   `json:"timezone"`
	Bio           string   `json:"bio"`
	PortfolioURLs []string `json:"portfolio_urls"`
}

type PortfolioUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
