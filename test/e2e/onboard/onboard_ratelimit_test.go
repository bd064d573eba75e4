//go:build e2e

package onboard_test

import (
	"testing"

	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies /api/login allows 5 attempts per
// minute for one IP and email.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupOnboardContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := newClient(t, baseURL)
	ctx := t.Context()

	for i := range 5 {
		err := client.Login(ctx, "mallory@example.com", "guess")
		require.Error(t, err)
		require.False(t, onboardsdk.IsCode(err, onboardsdk.ErrorCodeRateLimited),
			"Should not be rate limited yet (request %d)", i+1)
	}

	err := client.Login(ctx, "mallory@example.com", "guess")
	assertAPIError(t, err, onboardsdk.ErrorCodeRateLimited)
}

func TestRateLimitSignupEndpoint(t *testing.T) {
	baseURL, cleanup := setupOnboardContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := newClient(t, baseURL)
	ctx := t.Context()

	var lastErr error
	for range 6 {
		lastErr = client.Signup(ctx, onboardsdk.SignupRequest{})
	}
	assertAPIError(t, lastErr, onboardsdk.ErrorCodeRateLimited)
}
