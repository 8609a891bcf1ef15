package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
)

// StorefrontHandler exposes the product, cart, and dashboard views. All of
// them are single-call passthroughs: the remote services own pricing, stock,
// and aggregation, and the gateway renders their results as-is.
type StorefrontHandler struct {
	products ports.ProductAPI
	carts    ports.CartAPI
	orders   ports.OrderAPI
}

func NewStorefrontHandler(products ports.ProductAPI, carts ports.CartAPI, orders ports.OrderAPI) *StorefrontHandler {
	return &StorefrontHandler{products: products, carts: carts, orders: orders}
}

// ListProducts returns the catalog.
//
// @Summary      Browse products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      502  {object}  map[string]string
// @Router       /products [get]
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	products, err := h.products.Products(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns one catalog entry.
//
// @Summary      Product details
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	product, err := h.products.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// GetCart returns the current cart.
//
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  domain.Cart
// @Router       /cart [get]
func (h *StorefrontHandler) GetCart(c echo.Context) error {
	cart, err := h.carts.Cart(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddToCart adds one item and returns the updated cart.
//
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Item"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  map[string]string
// @Router       /cart [post]
func (h *StorefrontHandler) AddToCart(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.carts.AddItem(c.Request().Context(), domain.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// UpdateCartItem changes the quantity of one cart line.
//
// @Summary      Update cart item
// @Tags         cart
// @Accept       json
// @Param        productId  path  string                 true  "Product ID"
// @Param        body       body  updateCartItemRequest  true  "New quantity"
// @Success      204
// @Router       /cart/{productId} [put]
func (h *StorefrontHandler) UpdateCartItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.carts.UpdateItem(c.Request().Context(), c.Param("productId"), req.Quantity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveCartItem deletes one cart line.
//
// @Summary      Remove cart item
// @Tags         cart
// @Param        productId  path  string  true  "Product ID"
// @Success      204
// @Router       /cart/{productId} [delete]
func (h *StorefrontHandler) RemoveCartItem(c echo.Context) error {
	if err := h.carts.RemoveItem(c.Request().Context(), c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard renders the order aggregate for the authenticated user. The same
// remote endpoint serves sellers (sales view) and clients (purchase view);
// the guard in front of each route decides who gets here.
//
// @Summary      Order dashboard
// @Tags         orders
// @Produce      json
// @Success      200  {object}  domain.OrderDashboard
// @Failure      502  {object}  map[string]string
// @Router       /seller/dashboard [get]
func (h *StorefrontHandler) Dashboard(c echo.Context) error {
	dash, err := h.orders.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}
