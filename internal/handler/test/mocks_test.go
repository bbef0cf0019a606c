package test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"miniblog/internal/models"
	"miniblog/internal/service"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPage(ctx context.Context, query string, page int) (*models.PostPage, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostPage), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req service.UpdatePostRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64) (string, error) {
	args := m.Called(ctx, postID)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) PostsByAuthor(ctx context.Context, userID int64) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, remember bool) (*models.User, string, time.Duration, error) {
	args := m.Called(ctx, email, password, remember)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Get(2).(time.Duration), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.Get(2).(time.Duration), args.Error(3)
}

func (m *MockAuthService) ParseSessionToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) AttachImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockImageService) DeletePostImages(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
