package dto

// PaymentCallbackRequest is the webhook payload sent by the payment gateway
type PaymentCallbackRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
}
