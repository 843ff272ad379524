package dto

// SignUpRequest is the payload for manager registration
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignUpResponse carries the checkout redirect URL for the new account
type SignUpResponse struct {
	MidtransPaymentURL string `json:"midtrans_payment_url"`
}

// SignInRequest is the payload for authentication
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carries the issued token and profile fields
type SignInResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
	Role  string `json:"role"`
}
