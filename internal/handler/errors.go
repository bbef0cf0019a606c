package handlers

import (
	"net/http"
)

// RenderError renders the error page with the given status.
func (h *Handlers) RenderError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	h.RenderHTML(w, r, "error.html", statusCode, &HTMLData{
		Title:    http.StatusText(statusCode),
		FormData: map[string]string{"Message": message},
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RenderError(w, r, http.StatusNotFound, "Страница не найдена")
}

func (h *Handlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.RenderError(w, r, http.StatusForbidden, "Нет прав на это действие")
}
