package appointment

import (
	"context"

	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/dto"
)

// FormOptions populates the appointment form's selectors: every
// customer of the seller ordered by name, and the products still in
// stock ordered by name.
type FormOptions struct {
	Customers []dto.CustomerSummary `json:"customers"`
	Products  []dto.ProductSummary  `json:"products"`
	Durations []int                 `json:"durations"`
	Statuses  []domain.Status       `json:"statuses"`
}

type GetFormOptions struct {
	repo domain.Repository
}

func NewGetFormOptions(repo domain.Repository) *GetFormOptions {
	return &GetFormOptions{repo: repo}
}

func (uc *GetFormOptions) Execute(
	ctx context.Context,
	sellerID string,
) (*FormOptions, error) {

	customers, err := uc.repo.ListCustomersByName(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products, err := uc.repo.ListProductsInStock(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	out := &FormOptions{
		Customers: make([]dto.CustomerSummary, 0, len(customers)),
		Products:  make([]dto.ProductSummary, 0, len(products)),
		Durations: domain.AllowedDurations(),
		Statuses:  domain.AllStatuses(),
	}

	for _, c := range customers {
		out.Customers = append(out.Customers, dto.CustomerSummary{
			ID:             c.ID,
			FullName:       c.FullName,
			WhatsappNumber: c.WhatsappNumber,
		})
	}
	for _, p := range products {
		out.Products = append(out.Products, dto.ProductSummary{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}

	return out, nil
}
