package service

import (
	"context"

	"github.com/oparantho/saakwa-laundry-platform/internal/catalog"
	"github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/oparantho/saakwa-laundry-platform/internal/pricing"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
)

// CartView is the cart step payload: the lines plus the running price
// breakdown shown next to them.
type CartView struct {
	Cart  *models.Cart  `json:"cart"`
	Quote pricing.Quote `json:"quote"`
}

type CartService struct {
	catalog  *catalog.Catalog
	sessions repository.SessionStore
	pricing  pricing.Policy
}

func NewCartService(cat *catalog.Catalog, sessions repository.SessionStore, pricingPolicy pricing.Policy) *CartService {
	return &CartService{
		catalog:  cat,
		sessions: sessions,
		pricing:  pricingPolicy,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load cart").WithError(err)
	}

	return s.view(cart), nil
}

// AddItem adds one unit of the given catalog item to the session cart.
// Name and unit price are snapshotted from the catalog, never taken
// from the client.
func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return nil, errors.NotFoundError("Unknown catalog item")
	}

	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load cart").WithError(err)
	}

	cart.AddOrIncrement(item)

	if err := s.sessions.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, errors.ThirdPartyError("Failed to save cart").WithError(err)
	}

	return s.view(cart), nil
}

// DecrementItem removes one unit; the line disappears when its quantity
// reaches zero. Decrementing an item not in the cart changes nothing.
func (s *CartService) DecrementItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load cart").WithError(err)
	}

	cart.Decrement(itemID)

	if err := s.sessions.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, errors.ThirdPartyError("Failed to save cart").WithError(err)
	}

	return s.view(cart), nil
}

func (s *CartService) view(cart *models.Cart) *CartView {
	return &CartView{
		Cart:  cart,
		Quote: pricing.Compute(cart, s.pricing),
	}
}
