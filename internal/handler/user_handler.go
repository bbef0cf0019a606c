package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"miniblog/internal/models"
)

// Profile shows the current user and their posts.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	posts, err := h.PostService.PostsByAuthor(r.Context(), user.ID)
	if err != nil {
		log.Printf("Ошибка при получении постов пользователя: %v", err)
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось загрузить профиль")
		return
	}

	h.RenderHTML(w, r, "profile.html", http.StatusOK, &HTMLData{
		Title: user.Username,
		Page:  &models.PostPage{Posts: posts},
	})
}

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.RenderHTML(w, r, "about.html", http.StatusOK, &HTMLData{Title: "О проекте"})
}

// HealthHandler reports DB reachability as JSON.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	if err := h.DB.HealthCheck(); err != nil {
		status = "db unavailable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
