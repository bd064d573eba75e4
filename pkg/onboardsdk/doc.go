/*
Package onboardsdk provides the wire types and a small HTTP client for the
onboard service.

# Overview

The service keeps a visitor's login in a signed session cookie, so the
client is built around an http.Client with a cookie jar. Every call made
through one Client shares the same browser-like session:

	c, err := onboardsdk.NewClient("http://localhost:8080")

	err = c.Signup(ctx, onboardsdk.SignupRequest{
		Username: "fox",
		Email:    "fox@example.com",
		Password: "hunter2",
	})

	err = c.SelectAvatar(ctx, "fox.png")
	err = c.Personalize(ctx, []string{"dark-mode", "weekly-digest"})

	me, err := c.Me(ctx)

	err = c.Logout(ctx)

# Errors

Failed API calls return *APIError. Compare against the predefined values
with errors.Is, which matches on the error code:

	if errors.Is(err, onboardsdk.ErrDuplicateEmail) {
		// pick another email
	}
*/
package onboardsdk
