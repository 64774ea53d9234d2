package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User role
const (
	RoleCustomer = 0
	RoleProvider = 1
	RoleAdmin    = 2
)

// Decor service status
const (
	ServiceStatusHidden    = 0
	ServiceStatusAvailable = 1
	ServiceStatusBusy      = 2
)

// Transaction status
const (
	TransactionStatusPending = 0
	TransactionStatusSuccess = 1
	TransactionStatusFailed  = 2
)

// Transaction type
const (
	TransactionTypeTopUp               = 0
	TransactionTypeDeposit             = 1
	TransactionTypeConstructionPayment = 2
	TransactionTypeRefund              = 3
)
