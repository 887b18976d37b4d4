package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MandateStatusPending = "PENDING"
	MandateStatusActive  = "ACTIVE"
	MandateStatusRevoked = "REVOKED"
)

// Mandate is a recurring-debit authorization against a bank account. It is
// tracked independently of loan applications but may reference one.
type Mandate struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	BankID    string          `json:"bank_id" db:"bank_id"`
	UserID    string          `json:"user_id" db:"user_id"`
	LoanID    *string         `json:"loan_id,omitempty" db:"loan_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	FreqType  string          `json:"freq_type" db:"freq_type"`
	DebitType string          `json:"debit_type" db:"debit_type"`
	Status    string          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// MandateDetail pairs a mandate with its linked loan application when the
// lookup succeeds. Loan stays nil when the link is absent or unresolvable;
// the mandate itself always renders.
type MandateDetail struct {
	Mandate *Mandate         `json:"mandate"`
	Loan    *LoanApplication `json:"loan,omitempty"`
}

type CreateMandateRequest struct {
	BankID    string          `json:"bank_id" validate:"required"`
	UserID    string          `json:"user_id" validate:"required"`
	LoanID    *string         `json:"loan_id,omitempty"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	FreqType  string          `json:"freq_type" validate:"required,oneof=MNTH QURT YEAR ADHO"`
	DebitType string          `json:"debit_type" validate:"required,oneof=FIXED MAXIMUM"`
}
