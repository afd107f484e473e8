package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Outbound collaborator errors
var (
	ErrEmailDelivery = errors.New("email delivery failed")
	ErrUploadFailed  = errors.New("upload failed")
)

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewDeliveryError wraps a failure from the transactional-email collaborator.
// The caller logs the cause; the response carries only the short message.
func NewDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmailDelivery,
		Details:    "Unable to deliver message",
		Cause:      cause,
	}
}

// NewUploadError wraps a failure from the object-storage collaborator.
func NewUploadError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Upload failed during %s", operation),
		Cause:      cause,
	}
}

func IsDeliveryError(err error) bool {
	return errors.Is(err, ErrEmailDelivery)
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
