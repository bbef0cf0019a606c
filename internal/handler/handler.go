package handlers

import (
	"github.com/go-playground/validator/v10"

	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/service"
)

type Handlers struct {
	PostService  service.PostService
	AuthService  service.AuthService
	ImageService service.ImageService
	DB           *database.DB
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		PostService:  services.Post,
		AuthService:  services.Auth,
		ImageService: services.Image,
		DB:           db,
		Cfg:          config,
		Validate:     validator.New(),
	}
}
