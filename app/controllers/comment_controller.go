package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"tinyblog/app/models"
	"tinyblog/app/services"

	"go.uber.org/zap"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         *zap.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

// Index handles listing all comments for a post. A post without comments,
// or one that does not exist, yields an empty list.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendEmpty(w, http.StatusNotFound)
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		cc.internalError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles creating a new comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NewComment
	if err := decodeJSON(w, r, &req); err != nil {
		sendDecodeError(w, err)
		return
	}

	comment, err := cc.commentService.CreateComment(&req)
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		sendError(w, "Invalid comment: "+verr.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		cc.internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/posts/%d/comments", comment.PostID))
	sendEmpty(w, http.StatusCreated)
}

func (cc *CommentController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	cc.logger.Error("comment request failed", zap.String("path", r.URL.Path), zap.Error(err))
	sendError(w, "internal server error", http.StatusInternalServerError)
}
