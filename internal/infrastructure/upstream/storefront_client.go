package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// StorefrontClient implements the product, cart, and order ports. All three
// are single-call passthroughs; the remote services own pricing, stock, and
// aggregation.
type StorefrontClient struct {
	*Client
}

func NewStorefrontClient(c *Client) *StorefrontClient {
	return &StorefrontClient{Client: c}
}

func (c *StorefrontClient) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.doJSON(ctx, "products_list", http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *StorefrontClient) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	path := "/api/products/" + url.PathEscape(id)
	if err := c.doJSON(ctx, "products_get", http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *StorefrontClient) Cart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.doJSON(ctx, "cart_get", http.MethodGet, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *StorefrontClient) AddItem(ctx context.Context, item domain.CartItem) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.doJSON(ctx, "cart_add", http.MethodPost, "/api/cart", item, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *StorefrontClient) UpdateItem(ctx context.Context, productID string, quantity int) error {
	path := "/api/cart/" + url.PathEscape(productID)
	body := map[string]int{"quantity": quantity}
	return c.doJSON(ctx, "cart_update", http.MethodPut, path, body, nil)
}

func (c *StorefrontClient) RemoveItem(ctx context.Context, productID string) error {
	path := "/api/cart/" + url.PathEscape(productID)
	return c.doJSON(ctx, "cart_remove", http.MethodDelete, path, nil, nil)
}

// Dashboard fetches the order aggregate for the authenticated caller. The
// remote order service shapes it by role; the gateway renders it as-is.
func (c *StorefrontClient) Dashboard(ctx context.Context) (*domain.OrderDashboard, error) {
	var dash domain.OrderDashboard
	if err := c.doJSON(ctx, "orders_dashboard", http.MethodGet, "/api/orders", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}
