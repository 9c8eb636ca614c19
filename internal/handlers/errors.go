package handlers

import (
	"net/http"
	"strings"
)

// NotFoundHandler serves a styled 404 page or JSON error for API routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "endpoint not found"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(errorPageHTML("404", "Page not found", "The page you are looking for does not exist or has moved.")))
}

// InternalErrorHandler serves a styled 500 page or JSON error for API routes.
func InternalErrorHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(errorPageHTML("500", "Server error", "Something went wrong on our side. Please try again in a moment.")))
}

func errorPageHTML(code, title, message string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + title + ` — Gator Engineered Technologies</title>
<meta name="robots" content="noindex">
<style>
:root{--bg:#0b1220;--card:#0f1b33;--line:#213055;--text:#e6eefc;--sub:#c6d5f7;--btn:#18356d}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:Inter,'Segoe UI',Arial,sans-serif;background:var(--bg);color:var(--text);min-height:100vh;display:flex;flex-direction:column;font-size:15px;line-height:1.65}
.error-wrap{flex:1;display:flex;align-items:center;justify-content:center;text-align:center;padding:40px 24px}
.error-code{font-size:clamp(5rem,15vw,8rem);font-weight:800;line-height:1;margin-bottom:8px;background:linear-gradient(90deg,#4f9cf9,#7ad1f9);-webkit-background-clip:text;-webkit-text-fill-color:transparent}
h1{font-size:clamp(1.3rem,3vw,1.8rem);margin-bottom:12px}
p{color:var(--sub);max-width:480px;margin:0 auto 24px;font-size:1rem}
.btn-home{display:inline-block;padding:12px 28px;background:var(--btn);color:#fff;border-radius:12px;font-weight:600;font-size:.95rem;text-decoration:none}
footer{border-top:1px solid var(--line);padding:24px 0;text-align:center;color:#8fa3c6;font-size:.82rem}
footer a{color:var(--sub);margin:0 8px;text-decoration:none}
</style>
</head>
<body>
<main class="error-wrap">
<div>
<div class="error-code">` + code + `</div>
<h1>` + title + `</h1>
<p>` + message + `</p>
<a href="/" class="btn-home">Back to home</a>
</div>
</main>
<footer><a href="/">Home</a><a href="/contact">Contact</a></footer>
</body>
</html>`
}
