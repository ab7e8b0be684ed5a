package billing

import (
	"context"
	"errors"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrCheckoutDisabled = errors.New("billing: checkout disabled")

// Checkout creates Mercado Pago payment preferences for plan upgrades.
// A nil Checkout means no access token was configured.
type Checkout struct {
	prefs preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

func (c *Checkout) Enabled() bool {
	return c != nil
}

// PlanPreference returns the init point URL the dashboard redirects the
// seller to.
func (c *Checkout) PlanPreference(
	ctx context.Context,
	plan Plan,
	sellerID string,
) (string, error) {

	if c == nil {
		return "", ErrCheckoutDisabled
	}

	resource, err := c.prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        plan.ID,
				Title:     "Omnishop " + plan.Name,
				Quantity:  1,
				UnitPrice: plan.PriceMonthly,
			},
		},
		ExternalReference: sellerID + ":" + plan.ID,
	})
	if err != nil {
		return "", err
	}

	return resource.InitPoint, nil
}
