package service

import (
	"miniblog/internal/config"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type Service struct {
	Post  PostService
	Auth  AuthService
	Image ImageService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	images := NewImageService(rep.Image, storage, cfg)
	return &Service{
		Post:  NewPostService(rep.Post, rep.Image, images, cfg),
		Auth:  NewAuthService(rep.User, cfg),
		Image: images,
	}
}
