package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"miniblog/cmd/app"
	"miniblog/internal/config"
	handlers "miniblog/internal/handler"
	"miniblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/about", handler.About).Methods(http.MethodGet)

	router.HandleFunc("/login", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/signup", handler.Signup).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)
	router.HandleFunc("/profile", middleware.RequireAuth(handler.Profile)).Methods(http.MethodGet)

	router.HandleFunc("/create", middleware.RequireAuth(handler.CreatePost)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", handler.ViewPost).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/edit", middleware.RequireAuth(handler.EditPost)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/delete", handler.DeletePost).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/images/{imageId}/delete", middleware.RequireAuth(handler.DeleteImage)).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	handlerChain := middleware.Chain(
		router,
		middleware.CurrentUserMiddleware(services.Auth),
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Адрес: http://localhost:%d/\n", cfg.ServerPort)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
