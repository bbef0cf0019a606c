package app

import (
	"log"

	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// second handle over GORM for the user store
	orm, err := database.ConnectORM(cfg)
	if err != nil {
		log.Fatalf("Не удалось открыть GORM-подключение: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB, orm)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
