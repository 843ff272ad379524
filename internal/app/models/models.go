package models

// RoleType defines the user role type
type RoleType string

const (
	RoleManager RoleType = "manager"
	RoleStudent RoleType = "student"
)

// ContentType defines the kind of a course content item
type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeText  ContentType = "text"
)

// TransactionStatus defines the payment state of a transaction
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)
