package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"tinyblog/app/models"
	"tinyblog/app/repositories"
	"tinyblog/app/services"

	"go.uber.org/zap"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	logger      *zap.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, logger *zap.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.internalError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendEmpty(w, http.StatusNotFound)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendEmpty(w, http.StatusNotFound)
		return
	}
	if err != nil {
		pc.internalError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NewPost
	if err := decodeJSON(w, r, &req); err != nil {
		sendDecodeError(w, err)
		return
	}

	post, err := pc.postService.CreatePost(&req)
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		sendError(w, "Invalid post: "+verr.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		pc.internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/posts/%d", post.ID))
	sendEmpty(w, http.StatusCreated)
}

func (pc *PostController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	pc.logger.Error("post request failed", zap.String("path", r.URL.Path), zap.Error(err))
	sendError(w, "internal server error", http.StatusInternalServerError)
}
