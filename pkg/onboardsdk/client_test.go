package onboardsdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorIsMatchesCode(t *testing.T) {
	err := error(&onboardsdk.APIError{StatusCode: 409, Code: onboardsdk.ErrorCodeDuplicateEmail, Description: "x"})

	require.ErrorIs(t, err, onboardsdk.ErrDuplicateEmail)
	require.False(t, errors.Is(err, onboardsdk.ErrMissingField))
	require.True(t, onboardsdk.IsCode(err, onboardsdk.ErrorCodeDuplicateEmail))
}

func TestWriteErrorRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onboardsdk.ErrInvalidCredentials.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	c, err := onboardsdk.NewClient(srv.URL + "/")
	require.NoError(t, err)

	err = c.Login(context.Background(), "a@b.c", "pw")
	var apiErr *onboardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid email or password.", apiErr.Description)
}

func TestNonJSONErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c, err := onboardsdk.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.True(t, onboardsdk.IsCode(err, onboardsdk.ErrorCodeServerError))
}

func TestClientDoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login.html", http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	c, err := onboardsdk.NewClient(srv.URL)
	require.NoError(t, err)

	page, err := c.GetPage(context.Background(), "/dashboard.html")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, page.StatusCode)
	require.Equal(t, "/login.html", page.Location)
}
