package handler

import (
	"errors"
	"net/http"

	customError "github.com/finveda/loan-review-engine/pkg/errors"
	"github.com/finveda/loan-review-engine/pkg/response"
)

// writeBusinessError maps business error codes to HTTP statuses.
func writeBusinessError(w http.ResponseWriter, err error) {
	var be *customError.BusinessError
	if !errors.As(err, &be) {
		response.InternalServerError(w, "Internal server error", err)
		return
	}

	status := http.StatusInternalServerError
	switch be.Code {
	case customError.ErrCodeApplicationNotFound,
		customError.ErrCodeMandateNotFound,
		customError.ErrCodeNoCurrentApplication:
		status = http.StatusNotFound
	case customError.ErrCodeInvalidApplication,
		customError.ErrCodeInvalidLoanAmount:
		status = http.StatusUnprocessableEntity
	case customError.ErrCodeApplicationNotEvaluated,
		customError.ErrCodeMandateNotPending:
		status = http.StatusConflict
	}

	response.ErrorWithCode(w, status, be.Code, be.Message, be.Unwrap())
}
