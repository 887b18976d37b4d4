package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review lifecycle stages. Created and scored applications both surface as
// "pending" to callers; a decision is terminal.
const (
	ApplicationStatusCreated = "created"
	ApplicationStatusScored  = "scored"
	ApplicationStatusDecided = "decided"
)

// Risk buckets derived from the CIBIL score
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// BankDetails is the account the loan would be disbursed to. Free text at
// submission, presence checked only.
type BankDetails struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	IFSCCode      string `json:"ifscCode" validate:"required"`
}

// UserDetails identifies the applicant. PAN and phone have fixed formats.
type UserDetails struct {
	FullName      string `json:"fullName" validate:"required"`
	PANCardNumber string `json:"panCardNumber" validate:"required,pan"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"required,inphone"`
}

// LoanApplication is the aggregate root of the review flow. Score, approval
// and risk stay nil until evaluation and decision happen; risk is present
// exactly when the score is. JSON field names match the snapshot format the
// dashboard has always persisted, so old snapshots deserialize unchanged.
type LoanApplication struct {
	ID             string          `json:"id"`
	BankDetails    BankDetails     `json:"bankDetails"`
	UserDetails    UserDetails     `json:"userDetails"`
	LoanAmount     decimal.Decimal `json:"loanAmount"`
	CibilScore     *int            `json:"cibilScore,omitempty"`
	Approved       *bool           `json:"approved,omitempty"`
	RiskAssessment string          `json:"riskAssessment,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	DecidedAt      *time.Time      `json:"decidedAt,omitempty"`
	IsRead         bool            `json:"isRead"`
}

// Status reports the review lifecycle stage. Evaluation writes an
// eligibility value into Approved, so the stage hinges on DecidedAt, which
// only a human decision sets.
func (a *LoanApplication) Status() string {
	switch {
	case a.DecidedAt != nil:
		return ApplicationStatusDecided
	case a.CibilScore != nil:
		return ApplicationStatusScored
	default:
		return ApplicationStatusCreated
	}
}

// Clone returns a copy safe to hand outside the store.
func (a *LoanApplication) Clone() *LoanApplication {
	cp := *a
	if a.CibilScore != nil {
		v := *a.CibilScore
		cp.CibilScore = &v
	}
	if a.Approved != nil {
		v := *a.Approved
		cp.Approved = &v
	}
	if a.DecidedAt != nil {
		v := *a.DecidedAt
		cp.DecidedAt = &v
	}
	return &cp
}

// DTOs for requests and responses

type SubmitApplicationRequest struct {
	BankDetails BankDetails     `json:"bank_details" validate:"required"`
	UserDetails UserDetails     `json:"user_details" validate:"required"`
	LoanAmount  decimal.Decimal `json:"loan_amount" validate:"required"`
}

type ApplicationResponse struct {
	Application *LoanApplication `json:"application"`
	Status      string           `json:"status"`
}

type EvaluationResponse struct {
	ApplicationID  string `json:"application_id"`
	CibilScore     int    `json:"cibil_score"`
	Eligible       bool   `json:"eligible"`
	RiskAssessment string `json:"risk_assessment"`
}

// DashboardStats is the aggregate block shown on the bank dashboard.
type DashboardStats struct {
	TotalApplications int `json:"total_applications"`
	Approved          int `json:"approved"`
	DailyMandates     int `json:"daily_mandates"`
	MonthlyMandates   int `json:"monthly_mandates"`
	ApprovalRate      int `json:"approval_rate"`
}
