package ports

import (
	"context"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// AuthAPI is the remote authentication endpoint.
type AuthAPI interface {
	// Login exchanges credentials for an identity and an access token.
	Login(ctx context.Context, email, password string) (*domain.Identity, string, error)
	// Signup registers a new account and returns the new user ID. No session
	// is established; login is a separate call.
	Signup(ctx context.Context, req domain.SignupRequest) (string, error)
}

// MediaAPI is the remote media endpoint.
type MediaAPI interface {
	// UploadAvatar binds an image to a user. Failures map to
	// domain.ErrUploadFailed and are non-fatal to the caller.
	UploadAvatar(ctx context.Context, userID string, avatar domain.Avatar) error
}

// ProductAPI is the remote product catalog.
type ProductAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
}

// CartAPI is the remote cart endpoint. All pricing happens server-side.
type CartAPI interface {
	Cart(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, item domain.CartItem) (*domain.Cart, error)
	UpdateItem(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
}

// OrderAPI is the remote order endpoint. The dashboard aggregate is shaped by
// the caller's role server-side.
type OrderAPI interface {
	Dashboard(ctx context.Context) (*domain.OrderDashboard, error)
}
