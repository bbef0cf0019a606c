package handlers

import (
	"errors"
	"log"
	"net/http"

	"miniblog/internal/repository"
	"miniblog/internal/service"
)

type SignupForm struct {
	Username        string `validate:"required,min=3,max=32"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.RenderHTML(w, r, "login.html", http.StatusOK, &HTMLData{Title: "Вход"})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.RenderError(w, r, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	remember := r.FormValue("remember") != ""

	user, token, maxAge, err := h.AuthService.Login(r.Context(), email, password, remember)
	if err != nil {
		// one message for both unknown email and wrong password
		h.RenderHTML(w, r, "login.html", http.StatusOK, &HTMLData{
			Title:    "Вход",
			Flash:    "Please check your login details and try again.",
			FormData: map[string]string{"Email": email},
		})
		return
	}

	log.Printf("Пользователь %s вошел в систему", user.Username)

	SetSessionCookie(w, token, maxAge)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.RenderHTML(w, r, "signup.html", http.StatusOK, &HTMLData{Title: "Регистрация"})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.RenderError(w, r, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	form := SignupForm{
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	formData := map[string]string{
		"Username": form.Username,
		"Email":    form.Email,
	}

	if err := h.Validate.Struct(form); err != nil {
		h.RenderHTML(w, r, "signup.html", http.StatusOK, &HTMLData{
			Title:    "Регистрация",
			Flash:    "Please fill in all fields correctly.",
			FormData: formData,
		})
		return
	}

	_, err := h.AuthService.Signup(r.Context(), service.SignupRequest{
		Username:        form.Username,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		var message string
		switch {
		case errors.Is(err, repository.ErrPasswordMismatch):
			message = "Password and Confirm Password fields must match."
		case errors.Is(err, repository.ErrUsernameTaken):
			message = "Username already exists."
		case errors.Is(err, repository.ErrEmailTaken):
			message = "Email already exists."
		default:
			log.Printf("Ошибка при регистрации: %v", err)
			message = "Could not create the account, try again."
		}

		h.RenderHTML(w, r, "signup.html", http.StatusOK, &HTMLData{
			Title:    "Регистрация",
			Flash:    message,
			FormData: formData,
		})
		return
	}

	SetFlash(w, "Account created successfully.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
