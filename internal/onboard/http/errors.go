package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// writeServiceError maps service sentinels onto API errors. Anything
// unrecognised is logged and answered as server_error.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		onboardsdk.ErrMissingField.WriteError(w)
	case errors.Is(err, service.ErrDuplicateEmail):
		onboardsdk.ErrDuplicateEmail.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		onboardsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrNoActiveSession):
		onboardsdk.ErrNoActiveSession.WriteError(w)
	case errors.Is(err, service.ErrSessionStoreMismatch):
		onboardsdk.ErrSessionStoreMismatch.WriteError(w)
	default:
		slogx.FromContext(ctx).Error(msg, "err", err)
		onboardsdk.ErrServerError.WriteError(w)
	}
}
