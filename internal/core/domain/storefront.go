package domain

import "time"

// ProductCategory mirrors the category set of the remote product service.
type ProductCategory string

const (
	CategoryElectronics    ProductCategory = "ELECTRONICS"
	CategoryFashion        ProductCategory = "FASHION"
	CategoryHomeAppliances ProductCategory = "HOME_APPLIANCES"
	CategoryBooks          ProductCategory = "BOOKS"
	CategoryToys           ProductCategory = "TOYS"
	CategorySports         ProductCategory = "SPORTS"
	CategoryBeauty         ProductCategory = "BEAUTY"
	CategoryAutomotive     ProductCategory = "AUTOMOTIVE"
	CategoryGrocery        ProductCategory = "GROCERY"
	CategoryHealth         ProductCategory = "HEALTH"
	CategoryOther          ProductCategory = "OTHER"
)

// Product is a catalog entry as served by the remote product service.
type Product struct {
	ID          string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Quantity    int             `json:"quantity"`
	OwnerID     string          `json:"owner_id"`
	Category    ProductCategory `json:"category,omitempty"`
	Images      []string        `json:"images,omitempty"`
}

// CartItem is a single add-to-cart submission.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the current cart as computed by the remote order service.
type Cart struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

// OrderItem is a priced line inside an order or cart. Subtotal is computed
// server-side and consumed as-is.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
	SellerID    string  `json:"seller_id"`
}

// Order is a placed order.
type Order struct {
	ID        string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total_price"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderDashboard is the aggregate the remote order service builds for the
// dashboards. Ranking and totals are opaque results; the gateway never
// recomputes them.
type OrderDashboard struct {
	Orders   []Order     `json:"orders"`
	TopItems []OrderItem `json:"top_items"`
	Total    float64     `json:"total"`
}
