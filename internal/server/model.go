package server

import (
	"github.com/rgehrsitz/payoutopt/internal/domain"
)

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CalculationResponse wraps a result with run metadata.
type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Result              *domain.Result      `json:"result,omitempty"`
	Issues              []string            `json:"issues,omitempty"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// ValidationResponse lists the consistency issues of a profile.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
