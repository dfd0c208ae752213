package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status: "error",
		Error:  "invalid_request",
	}

	ErrNotFound = ErrorResponse{
		Status: "error",
		Error:  "not_found",
	}

	ErrQuotaExceeded = ErrorResponse{
		Status:  "error",
		Error:   "quota_exceeded",
		Details: []string{"You have reached your gallery limit for this plan."},
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: []string{"Internal server error"},
	}
)
