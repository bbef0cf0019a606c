package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"miniblog/internal/repository"
	"miniblog/internal/service"
)

// Index renders the paginated post list; q filters by substring.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	page := 1
	if rawPage := r.URL.Query().Get("page"); rawPage != "" {
		if parsed, err := strconv.Atoi(rawPage); err == nil {
			page = parsed
		}
	}

	postPage, err := h.PostService.ListPage(r.Context(), query, page)
	if err != nil {
		log.Printf("Ошибка при получении списка постов: %v", err)
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось загрузить посты")
		return
	}

	h.RenderHTML(w, r, "index.html", http.StatusOK, &HTMLData{
		Title: "Посты",
		Page:  postPage,
	})
}

func (h *Handlers) ViewPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			h.NotFound(w, r)
			return
		}
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось загрузить пост")
		return
	}

	h.RenderHTML(w, r, "post.html", http.StatusOK, &HTMLData{
		Title: post.Title,
		Post:  post,
	})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	if r.Method == http.MethodGet {
		h.RenderHTML(w, r, "create.html", http.StatusOK, &HTMLData{Title: "Новый пост"})
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		// plain form posts without an image land here
		if err := r.ParseForm(); err != nil {
			h.RenderError(w, r, http.StatusBadRequest, "Неверный формат запроса")
			return
		}
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		Title:    title,
		Content:  content,
		AuthorID: user.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTitleRequired) {
			h.RenderHTML(w, r, "create.html", http.StatusOK, &HTMLData{
				Title:    "Новый пост",
				Flash:    "Title is required!",
				FormData: map[string]string{"Title": title, "Content": content},
			})
			return
		}
		log.Printf("Ошибка при создании поста: %v", err)
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось создать пост")
		return
	}

	h.attachUploadedImage(w, r, post.ID)

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	postID, err := parsePostID(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			h.NotFound(w, r)
			return
		}
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось загрузить пост")
		return
	}

	if post.UserID != user.ID {
		h.Forbidden(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.RenderHTML(w, r, "edit.html", http.StatusOK, &HTMLData{
			Title: "Редактирование",
			Post:  post,
		})
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err := r.ParseForm(); err != nil {
			h.RenderError(w, r, http.StatusBadRequest, "Неверный формат запроса")
			return
		}
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	err = h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:      postID,
		Title:       title,
		Content:     content,
		RequesterID: user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrForbidden):
			h.Forbidden(w, r)
		case errors.Is(err, repository.ErrTitleRequired):
			post.Content = content
			h.RenderHTML(w, r, "edit.html", http.StatusOK, &HTMLData{
				Title: "Редактирование",
				Flash: "Title is required!",
				Post:  post,
			})
		default:
			log.Printf("Ошибка при обновлении поста: %v", err)
			h.RenderError(w, r, http.StatusInternalServerError, "Не удалось обновить пост")
		}
		return
	}

	h.attachUploadedImage(w, r, postID)

	http.Redirect(w, r, "/", http.StatusFound)
}

// DeletePost deletes any post by id without an ownership check,
// preserving the original application's behavior.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	title, err := h.PostService.DeletePost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("Ошибка при удалении поста: %v", err)
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось удалить пост")
		return
	}

	SetFlash(w, fmt.Sprintf("\"%s\" was successfully deleted!", title))
	http.Redirect(w, r, "/", http.StatusFound)
}

// DeleteImage detaches an image from a post: the MinIO object and the
// row go together. Only the post's author may do this, same as editing.
func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	postID, err := parsePostID(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			h.NotFound(w, r)
			return
		}
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось загрузить пост")
		return
	}

	if post.UserID != user.ID {
		h.Forbidden(w, r)
		return
	}

	imageID := mux.Vars(r)["imageId"]
	if err := h.ImageService.DeleteImage(r.Context(), imageID); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("Ошибка при удалении изображения: %v", err)
		h.RenderError(w, r, http.StatusInternalServerError, "Не удалось удалить изображение")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%d/edit", postID), http.StatusFound)
}

// attachUploadedImage stores the optional multipart image. Upload
// failures only log: the post write already succeeded.
func (h *Handlers) attachUploadedImage(w http.ResponseWriter, r *http.Request, postID int64) {
	if r.MultipartForm == nil {
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return
	}
	defer file.Close()

	_, err = h.ImageService.AttachImage(r.Context(), postID, header.Filename, file, header.Size)
	if err != nil {
		log.Printf("Ошибка при загрузке изображения: %v", err)
	}
}

func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
