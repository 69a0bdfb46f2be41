package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Service struct {
	repo    Repository
	carts   *CartStore
	catalog []CatalogProduct
	now     func() time.Time
}

func NewService(repo Repository, carts *CartStore) *Service {
	return &Service{repo: repo, carts: carts, catalog: seedCatalog(), now: time.Now}
}

// Catalog lists the sellable products shown on the point-of-sale screen.
func (s *Service) Catalog(ctx context.Context) []CatalogProduct {
	out := make([]CatalogProduct, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Service) History(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateCart(ctx context.Context, req CreateCartRequest) (Cart, error) {
	store := req.Store
	if store == "" {
		store = shared.Stores[0]
	}
	if !shared.ValidStore(store) {
		return Cart{}, fmt.Errorf("%w: unknown store %q", httpx.ErrValidation, store)
	}
	return s.carts.New(store), nil
}

func (s *Service) GetCart(ctx context.Context, token string) (Cart, error) {
	return s.carts.Get(token)
}

// AddItem adds one unit of a catalog product. Adding a product already in
// the cart bumps its quantity instead of creating a second line.
func (s *Service) AddItem(ctx context.Context, token string, req AddItemRequest) (Cart, error) {
	if err := shared.Validate(req); err != nil {
		return Cart{}, err
	}
	cart, err := s.carts.Get(token)
	if err != nil {
		return Cart{}, err
	}
	product, ok := s.lookupProduct(req.ProductID)
	if !ok {
		return Cart{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, req.ProductID)
	}
	found := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == product.ID {
			cart.Lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       1,
		})
	}
	s.carts.Put(cart)
	return cart, nil
}

// SetQty sets the quantity of a cart line. A quantity of zero or less
// removes the line.
func (s *Service) SetQty(ctx context.Context, token string, productID int64, req SetQtyRequest) (Cart, error) {
	cart, err := s.carts.Get(token)
	if err != nil {
		return Cart{}, err
	}
	idx := -1
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Cart{}, fmt.Errorf("%w: product %d not in cart", httpx.ErrNotFound, productID)
	}
	if req.Qty <= 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Qty = req.Qty
	}
	s.carts.Put(cart)
	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, token string, productID int64) (Cart, error) {
	return s.SetQty(ctx, token, productID, SetQtyRequest{Qty: 0})
}

func (s *Service) SetDiscount(ctx context.Context, token string, req SetDiscountRequest) (Cart, error) {
	if err := shared.Validate(req); err != nil {
		return Cart{}, err
	}
	cart, err := s.carts.Get(token)
	if err != nil {
		return Cart{}, err
	}
	cart.DiscountPercent = req.Percent
	s.carts.Put(cart)
	return cart, nil
}

// Checkout turns a non-empty cart into a sale at the head of the history
// and discards the cart.
func (s *Service) Checkout(ctx context.Context, token string, req CheckoutRequest) (Sale, error) {
	if err := shared.Validate(req); err != nil {
		return Sale{}, err
	}
	cart, err := s.carts.Get(token)
	if err != nil {
		return Sale{}, err
	}
	if len(cart.Lines) == 0 {
		return Sale{}, fmt.Errorf("%w: cart is empty", httpx.ErrValidation)
	}
	total, _ := cart.Total().Round(2).Float64()
	sale, err := s.repo.Prepend(ctx, Sale{
		Store:         cart.Store,
		Date:          s.now().Format("2006-01-02"),
		Total:         total,
		Items:         len(cart.Lines),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return Sale{}, err
	}
	s.carts.Delete(token)
	return sale, nil
}

func (s *Service) lookupProduct(id int64) (CatalogProduct, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return CatalogProduct{}, false
}
