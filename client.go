package main

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

type endpointForm struct {
	ID       string
	Title    string
	Endpoint string
	Field    string
	Hint     string
}

var endpointForms = []endpointForm{
	{ID: "resolve", Title: "Find a download", Endpoint: "/search", Field: "url", Hint: "SoundCloud, YouTube or Spotify track URL"},
	{ID: "keywords", Title: "Search by keywords", Endpoint: "/keyword-search", Field: "keywords", Hint: "artist and track name"},
	{ID: "check", Title: "Check a track page", Endpoint: "/check-track", Field: "track_url", Hint: "any track page URL"},
}

const homeHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>trackfinder</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; max-width: 720px; }
        form { margin: 16px 0; }
        input { width: 420px; padding: 4px; }
        pre { background: #f4f4f4; padding: 8px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>trackfinder</h1>
    <p>Find where a track can be downloaded or bought.</p>
`

// each form posts its single field as JSON and prints the reply below it
const homeScript = `
<script>
document.querySelectorAll("form[data-endpoint]").forEach(function (form) {
    form.addEventListener("submit", function (ev) {
        ev.preventDefault();
        var input = form.querySelector("input");
        var out = document.getElementById(form.id + "-result");
        var body = {};
        body[input.name] = input.value;
        out.textContent = "...";
        fetch(form.dataset.endpoint, {
            method: "POST",
            headers: {"Content-Type": "application/json"},
            body: JSON.stringify(body)
        }).then(function (r) { return r.json(); })
          .then(function (data) { out.textContent = JSON.stringify(data, null, 2); })
          .catch(function (err) { out.textContent = String(err); });
    });
});
</script>
</body>
</html>
`

func formComponent(f endpointForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `
    <h2>`+templ.EscapeString(f.Title)+`</h2>
    <form id="`+templ.EscapeString(f.ID)+`" data-endpoint="`+templ.EscapeString(f.Endpoint)+`">
        <input name="`+templ.EscapeString(f.Field)+`" placeholder="`+templ.EscapeString(f.Hint)+`">
        <button type="submit">Go</button>
    </form>
    <pre id="`+templ.EscapeString(f.ID)+`-result"></pre>
`)
		return err
	})
}

func homePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, homeHead); err != nil {
			return err
		}

		for _, f := range endpointForms {
			if err := formComponent(f).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, homeScript)
		return err
	})
}

func Homepage(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return homePage().Render(c.Request().Context(), c.Response())
}
