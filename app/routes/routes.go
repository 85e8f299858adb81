package routes

import (
	"net/http"

	"tinyblog/app/controllers"
	"tinyblog/app/middleware"
	"tinyblog/app/repositories"
	"tinyblog/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes wires the stores in repo to the blog's routes and returns the router.
func SetupRoutes(repo *repositories.Repository, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	postController := controllers.NewPostController(services.NewPostService(repo.Posts), logger)
	commentController := controllers.NewCommentController(services.NewCommentService(repo.Comments), logger)

	router.HandleFunc("/", controllers.Home).Methods(http.MethodGet)

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.ETag)

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods(http.MethodGet)
	posts.HandleFunc("", postController.Create).Methods(http.MethodPost)
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods(http.MethodGet)

	// Comments API endpoints
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods(http.MethodGet)
	api.HandleFunc("/comments", commentController.Create).Methods(http.MethodPost)

	return router
}
