package handler

import "github.com/buy01/storefront-gateway/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// signupRequest is bound from the multipart signup form. The avatar file part
// is read separately; field validation happens inside the orchestrator so the
// invalid-input path is identical for every caller.
type signupRequest struct {
	Firstname       string `json:"firstname" form:"firstname"`
	Lastname        string `json:"lastname" form:"lastname"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type userResponse struct {
	User *domain.Identity `json:"user"`
}
