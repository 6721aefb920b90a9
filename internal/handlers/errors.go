package handlers

import (
	"net/http"

	"items-api/internal/repositories"
	"items-api/pkg/lambda"
)

// translateError maps a handler error to a response descriptor at the
// single router boundary. Known error kinds get their own status code;
// anything unrecognized falls through to a 500 with the error message
// forwarded verbatim.
func translateError(err error) *lambda.Response {
	switch {
	case repositories.IsNotFound(err):
		return respond(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case repositories.IsValidation(err):
		return respond(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case repositories.IsDuplicate(err):
		return respond(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return respond(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
