package web

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestHomeAnonymous(t *testing.T) {
	got := render(t, Home(nil))
	require.Contains(t, got, `href="/signup.html"`)
	require.Contains(t, got, `href="/login.html"`)
	require.NotContains(t, got, `href="/logout"`)
}

func TestPagesEscapeUserData(t *testing.T) {
	sess := &domain.Session{
		Username:    `<script>alert(1)</script>`,
		Email:       "fox@example.com",
		AvatarURL:   `fox.png" onerror="x`,
		Preferences: domain.NewPreferences(`<b>bold</b>`),
	}

	for name, c := range map[string]templ.Component{
		"home":      Home(sess),
		"avatar":    Avatar(sess),
		"main_menu": MainMenu(sess),
		"dashboard": Dashboard(sess),
	} {
		t.Run(name, func(t *testing.T) {
			got := render(t, c)
			require.NotContains(t, got, `<script>alert(1)</script>`)
			require.NotContains(t, got, `onerror="x`)
			require.NotContains(t, got, `<b>bold</b>`)
			require.Contains(t, got, `href="/logout"`)
		})
	}
}

func TestAvatarMarksCurrentChoice(t *testing.T) {
	got := render(t, Avatar(&domain.Session{Username: "fox", AvatarURL: "owl.png"}))
	require.Contains(t, got, `value="owl.png" checked`)
	require.NotContains(t, got, `value="fox.png" checked`)
}

func TestDashboardMarksPreferences(t *testing.T) {
	got := render(t, Dashboard(&domain.Session{Username: "fox", Preferences: domain.NewPreferences("music", "tech")}))
	require.Contains(t, got, `value="music" checked`)
	require.Contains(t, got, `value="tech" checked`)
	require.NotContains(t, got, `value="film" checked`)
}

func TestFormsTargetAPI(t *testing.T) {
	require.Contains(t, render(t, Signup()), `data-api="/api/signup"`)
	require.Contains(t, render(t, Login()), `data-api="/api/login"`)
}

func TestLayoutRendersChildren(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), templ.Raw(`<p id="body">hi</p>`))
	require.NoError(t, Layout("Title <x>", nil).Render(ctx, &b))

	got := b.String()
	require.Contains(t, got, `<p id="body">hi</p>`)
	require.Contains(t, got, `<title>Title &lt;x&gt; | Onboard</title>`)
	require.Contains(t, got, `href="/login.html"`)
}

func TestLoginFormFields(t *testing.T) {
	got := render(t, Login())
	require.Contains(t, got, `type="email" name="email"`)
	require.Contains(t, got, `type="password" name="password"`)
	require.NotContains(t, got, `name="username"`)
}

func TestAvatarBadge(t *testing.T) {
	require.Equal(t, "fox", avatarName("fox.png"))
	require.Equal(t, "F", avatarInitial("fox.png"))
	require.Equal(t, "", avatarInitial(""))
	require.Contains(t, render(t, avatarBadge("owl.png")), `title="owl">O</span>`)
}
