package service

import (
	"context"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type CreatePostRequest struct {
	Title    string
	Content  string
	AuthorID int64
}

type UpdatePostRequest struct {
	PostID      int64
	Title       string
	Content     string
	RequesterID int64
}

type PostService interface {
	ListPage(ctx context.Context, query string, page int) (*models.PostPage, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) error
	DeletePost(ctx context.Context, postID int64) (string, error)
	PostsByAuthor(ctx context.Context, userID int64) ([]models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	images    ImageService
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, images ImageService, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		images:    images,
		cfg:       cfg,
	}
}

// ListPage fetches the full (optionally filtered) post list and slices
// out one page of PageSize posts. A page past the end comes back empty,
// not as an error.
func (p *postService) ListPage(ctx context.Context, query string, page int) (*models.PostPage, error) {
	posts, err := p.postRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	perPage := p.cfg.PageSize
	if perPage < 1 {
		perPage = config.DefaultPageSize
	}
	pageCount := len(posts)/perPage + boolToInt(len(posts)%perPage != 0)

	if page < 1 {
		page = 1
	}

	startIdx := (page - 1) * perPage
	endIdx := startIdx + perPage

	if startIdx > len(posts) {
		startIdx = len(posts)
	}
	if endIdx > len(posts) {
		endIdx = len(posts)
	}

	return &models.PostPage{
		Posts:     posts[startIdx:endIdx],
		Page:      page,
		PageCount: pageCount,
		Query:     query,
	}, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	images, err := p.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, repository.ErrTitleRequired
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.AuthorID,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) error {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	// only the author may edit
	if post.UserID != req.RequesterID {
		return repository.ErrForbidden
	}

	if req.Title == "" {
		return repository.ErrTitleRequired
	}

	post.Title = req.Title
	post.Content = req.Content

	return p.postRepo.Update(ctx, post)
}

// DeletePost returns the deleted post's title for the flash message.
// There is deliberately no ownership check here, matching the original
// behavior where any visitor may delete any post.
func (p *postService) DeletePost(ctx context.Context, postID int64) (string, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	// images first: the rows and the MinIO objects go together
	if err := p.images.DeletePostImages(ctx, postID); err != nil {
		return "", err
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return "", err
	}

	return post.Title, nil
}

func (p *postService) PostsByAuthor(ctx context.Context, userID int64) ([]models.Post, error) {
	return p.postRepo.GetByUserID(ctx, userID)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
