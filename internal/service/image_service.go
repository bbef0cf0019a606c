package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type ImageService interface {
	AttachImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, imageID string) error
	DeletePostImages(ctx context.Context, postID int64) error
}

type imageService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewImageService(imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (s *imageService) AttachImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	objectName, imageURL, err := s.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		PostID:   postID,
		ImageURL: imageURL,
	}

	err = s.imageRepo.Create(ctx, image)
	if err != nil {
		s.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	return image, nil
}

func (s *imageService) DeleteImage(ctx context.Context, imageID string) error {
	image, err := s.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteImage(ctx, s.objectPath(image.ImageURL)); err != nil {
		log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
	}

	return s.imageRepo.Delete(ctx, imageID)
}

// DeletePostImages removes every object of the post from storage and
// then drops the rows. A failed object delete only logs: the rows go
// regardless so the post delete is never blocked.
func (s *imageService) DeletePostImages(ctx context.Context, postID int64) error {
	images, err := s.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return err
	}

	for _, image := range images {
		if err := s.storage.DeleteImage(ctx, s.objectPath(image.ImageURL)); err != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
		}
	}

	return s.imageRepo.DeleteByPostID(ctx, postID)
}

// objectPath is the URL tail after the bucket segment.
func (s *imageService) objectPath(imageURL string) string {
	if idx := strings.Index(imageURL, "/"+s.cfg.MinIO.BucketName+"/"); idx >= 0 {
		return imageURL[idx+len(s.cfg.MinIO.BucketName)+2:]
	}
	return imageURL
}
