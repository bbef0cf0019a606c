package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"miniblog/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLData is the single view-model every page template receives.
type HTMLData struct {
	Title       string
	Flash       string
	CurrentUser *models.User
	Post        *models.Post
	Page        *models.PostPage
	FormData    map[string]string
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i + 1
		}
		return s
	},
}

// RenderHTML renders a page template inside the base layout. The flash
// cookie, if any, is consumed here so the message shows exactly once.
func (h *Handlers) RenderHTML(w http.ResponseWriter, r *http.Request, pageFile string, status int, data *HTMLData) {
	if data == nil {
		data = &HTMLData{}
	}

	if data.Flash == "" {
		data.Flash = PopFlash(w, r)
	}

	if data.CurrentUser == nil {
		data.CurrentUser = CurrentUser(r)
	}

	ts, err := template.New(pageFile).Funcs(functions).ParseFS(templateFS,
		"templates/base.layout.html",
		"templates/"+pageFile,
	)
	if err != nil {
		log.Printf("Ошибка парсинга шаблона %s: %v", pageFile, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// render into a buffer first so a template error cannot leave a
	// half-written page behind
	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Printf("Ошибка рендеринга шаблона %s: %v", pageFile, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
