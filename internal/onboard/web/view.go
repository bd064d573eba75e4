// Package web renders the HTML pages of the onboarding flow.
package web

//go:generate templ generate

import (
	"path"
	"strings"
)

// Avatars offered on the avatar page.
var Avatars = []string{"fox.png", "owl.png", "bear.png", "otter.png", "cat.png", "wolf.png"}

// Interests offered on the dashboard page.
var Interests = []string{"music", "sport", "travel", "cooking", "gaming", "reading", "film", "tech"}

// avatarName strips the extension from an avatar reference such as "fox.png".
func avatarName(ref string) string {
	return strings.TrimSuffix(ref, path.Ext(ref))
}

func avatarInitial(ref string) string {
	name := avatarName(ref)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1])
}

func inputType(field string) string {
	switch field {
	case "email", "password":
		return field
	default:
		return "text"
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return ""
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

const pageStyle = `<style>
body{font-family:system-ui,sans-serif;margin:0;color:#1d1d1f}
nav{display:flex;gap:1rem;align-items:center;padding:.75rem 1.5rem;background:#f4f4f6}
main{max-width:36rem;margin:2rem auto;padding:0 1rem}
label{display:block;margin:.5rem 0}
.avatar{display:inline-block;width:2rem;height:2rem;line-height:2rem;text-align:center;border-radius:50%;background:#ffd8a8;margin-right:.4rem}
.grid{display:grid;grid-template-columns:repeat(3,1fr);gap:.75rem}
#message:empty{display:none}
</style>`

// pageScript posts data-api forms as JSON and follows data-next on success.
const pageScript = `<script>
document.querySelectorAll("form[data-api]").forEach(function (form) {
  form.addEventListener("submit", async function (ev) {
    ev.preventDefault();
    var body = {};
    new FormData(form).forEach(function (v, k) {
      if (k === "preferences") { (body[k] = body[k] || []).push(v); } else { body[k] = v; }
    });
    if (form.dataset.api === "/api/personalize" && !body.preferences) { body.preferences = []; }
    var res = await fetch(form.dataset.api, {method: "POST", headers: {"Content-Type": "application/json"}, body: JSON.stringify(body)});
    var data = await res.json().catch(function () { return {}; });
    if (res.ok) { window.location = form.dataset.next; return; }
    document.getElementById("message").textContent = data.error_description || "Something went wrong.";
  });
});
</script>`
