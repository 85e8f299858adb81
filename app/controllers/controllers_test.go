package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tinyblog/app/models"
	"tinyblog/app/repositories"
	"tinyblog/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingPostRepo struct{}

func (failingPostRepo) Create(string, string) (*models.Post, error) {
	return nil, errors.New("boom")
}
func (failingPostRepo) GetByID(uint32) (*models.Post, error) { return nil, errors.New("boom") }
func (failingPostRepo) List() ([]*models.Post, error)         { return nil, errors.New("boom") }

type failingCommentRepo struct{}

func (failingCommentRepo) Create(uint32, string) (*models.Comment, error) {
	return nil, errors.New("boom")
}
func (failingCommentRepo) ListByPost(uint32) ([]*models.Comment, error) {
	return nil, errors.New("boom")
}

func setupRouter(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *mux.Router {
	logger := zap.NewNop()
	pc := NewPostController(services.NewPostService(postRepo), logger)
	cc := NewCommentController(services.NewCommentService(commentRepo), logger)

	router := mux.NewRouter()
	router.HandleFunc("/", Home).Methods("GET")
	router.HandleFunc("/api/posts", pc.Index).Methods("GET")
	router.HandleFunc("/api/posts", pc.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id:[0-9]+}", pc.Show).Methods("GET")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments", cc.Index).Methods("GET")
	router.HandleFunc("/api/comments", cc.Create).Methods("POST")
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostController(t *testing.T) {
	router := setupRouter(repositories.NewMemoryPostRepository(), repositories.NewMemoryCommentRepository())

	t.Run("list with no posts", func(t *testing.T) {
		w := do(router, "GET", "/api/posts", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("create post", func(t *testing.T) {
		w := do(router, "POST", "/api/posts", `{"title": "T", "body": "B"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/posts/1", w.Header().Get("Location"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("get post", func(t *testing.T) {
		w := do(router, "GET", "/api/posts/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, models.Post{ID: 1, Title: "T", Body: "B"}, post)
	})

	t.Run("missing post", func(t *testing.T) {
		w := do(router, "GET", "/api/posts/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("id out of range", func(t *testing.T) {
		w := do(router, "GET", "/api/posts/4294967296", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())

		w = do(router, "GET", "/api/posts/4294967296/comments", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		payload := `{"title": "` + strings.Repeat("a", maxBodyBytes) + `", "body": "B"}`
		w := do(router, "POST", "/api/posts", payload)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"error":"Request body too large"}`, w.Body.String())
	})

	t.Run("list posts", func(t *testing.T) {
		do(router, "POST", "/api/posts", `{"title": "U", "body": ""}`)

		w := do(router, "GET", "/api/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		var posts []models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		assert.ElementsMatch(t, []models.Post{
			{ID: 1, Title: "T", Body: "B"},
			{ID: 2, Title: "U", Body: ""},
		}, posts)
	})

	t.Run("client errors", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
			wantMsg string
		}{
			{"malformed JSON", `{"title": `, "Invalid JSON"},
			{"empty body", ``, "Invalid JSON"},
			{"wrong type", `{"title": 1, "body": "B"}`, "Invalid JSON"},
			{"missing body", `{"title": "T"}`, "Invalid post: missing field `body`"},
			{"trailing garbage", `{"title": "T", "body": "B"} garbage`, "Invalid JSON"},
			{"two objects", `{"title": "T", "body": "B"}{"title": "U"}`, "Invalid JSON"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(tt.payload))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Contains(t, body["error"], tt.wantMsg)
			})
		}

		w := do(router, "GET", "/api/posts", "")
		var posts []models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		assert.Len(t, posts, 2)
	})

	t.Run("trailing whitespace", func(t *testing.T) {
		w := do(router, "POST", "/api/posts", "{\"title\": \"V\", \"body\": \"\"}\n\t ")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/posts/3", w.Header().Get("Location"))
	})
}

func TestCommentController(t *testing.T) {
	router := setupRouter(repositories.NewMemoryPostRepository(), repositories.NewMemoryCommentRepository())

	t.Run("no comments", func(t *testing.T) {
		w := do(router, "GET", "/api/posts/2/comments", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("create comments", func(t *testing.T) {
		for _, text := range []string{"x", "y"} {
			w := do(router, "POST", "/api/comments", `{"post_id": 2, "text": "`+text+`"}`)
			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, "/api/posts/2/comments", w.Header().Get("Location"))
			assert.Empty(t, w.Body.String())
		}
	})

	t.Run("list comments", func(t *testing.T) {
		w := do(router, "GET", "/api/posts/2/comments", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"post_id":2,"text":"x"},{"id":2,"post_id":2,"text":"y"}]`, w.Body.String())
	})

	t.Run("client errors", func(t *testing.T) {
		for _, payload := range []string{
			`{"text": "x"}`,
			`{"post_id": -1, "text": "x"}`,
			`{"post_id": "2", "text": "x"}`,
			`nope`,
			`{"post_id": 2, "text": "z"} garbage`,
			`{"post_id": 2, "text": "z"}{"post_id": 3}`,
		} {
			w := do(router, "POST", "/api/comments", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		}

		w := do(router, "GET", "/api/posts/2/comments", "")
		assert.JSONEq(t, `[{"id":1,"post_id":2,"text":"x"},{"id":2,"post_id":2,"text":"y"}]`, w.Body.String())
	})
}

func TestInternalErrors(t *testing.T) {
	router := setupRouter(failingPostRepo{}, failingCommentRepo{})

	tests := []struct {
		method, path, body string
	}{
		{"GET", "/api/posts", ""},
		{"GET", "/api/posts/1", ""},
		{"POST", "/api/posts", `{"title": "T", "body": "B"}`},
		{"GET", "/api/posts/1/comments", ""},
		{"POST", "/api/comments", `{"post_id": 1, "text": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
		})
	}
}

func TestHome(t *testing.T) {
	router := setupRouter(repositories.NewMemoryPostRepository(), repositories.NewMemoryCommentRepository())

	w := do(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "fetch('/api/posts')")
}
