package models

import "time"

// TransactionType distinguishes money movement directions.
type TransactionType string

const (
	TransactionPayment TransactionType = "PAYMENT"
	TransactionRefund  TransactionType = "REFUND"
	TransactionPayout  TransactionType = "PAYOUT"
)

// TransactionStatus tracks a transaction through its lifecycle.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// Transaction is a single money movement. CompletedAt is only meaningful
// when Status is COMPLETED.
type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

// ModelTransaction is a sale attributed to a specific model, with the
// platform-fee split applied.
type ModelTransaction struct {
	ID            string            `json:"id"`
	ModelID       string            `json:"modelId"`
	BuyerID       string            `json:"buyerId"`
	Amount        float64           `json:"amount"`
	PlatformFee   float64           `json:"platformFee"`
	ModelEarnings float64           `json:"modelEarnings"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	PaymentMethod string            `json:"paymentMethod"`
	TransactionID string            `json:"transactionId"`
}

// ModelTransactionSummary aggregates the transactions of one listing page.
type ModelTransactionSummary struct {
	TotalTransactions        int     `json:"totalTransactions"`
	TotalRevenue             float64 `json:"totalRevenue"`
	TotalPlatformFees        float64 `json:"totalPlatformFees"`
	TotalModelEarnings       float64 `json:"totalModelEarnings"`
	AverageTransactionAmount float64 `json:"averageTransactionAmount"`
}

// ModelTransactionList is the payload of the per-model transaction endpoint.
type ModelTransactionList struct {
	Transactions []ModelTransaction      `json:"transactions"`
	Pagination   Pagination              `json:"pagination"`
	Summary      ModelTransactionSummary `json:"summary"`
}
