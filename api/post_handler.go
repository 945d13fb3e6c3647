package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/demosite/blogshop-backend/database"
	"github.com/demosite/blogshop-backend/errs"
	"github.com/demosite/blogshop-backend/models"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
}

func newPostHandler(postRepo *database.PostRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
	}
}

// PostCollection represents multiple posts with a total count
type PostCollection struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total,omitempty"`
}

// getAllPosts retrieves all posts with their tags and comments
// @Summary Get all posts
// @Description Retrieves all posts from the database with their tags and comments
// @Tags Posts
// @Produce json
// @Param published query bool false "Only return published posts"
// @Success 200 {object} PostCollection "List of posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /posts [get]
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			posts []*models.Post
			err   error
		)
		if r.URL.Query().Get("published") == "true" {
			posts, err = h.postRepo.FindPublished()
		} else {
			posts, err = h.postRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		collection := PostCollection{Total: len(posts)}
		for _, post := range posts {
			collection.Posts = append(collection.Posts, *post)
		}

		h.responder.WriteJSON(w, collection)
	}
}

// getPost retrieves a specific post by ID
// @Summary Get post
// @Description Retrieves a post by ID with its tags and comments
// @Tags Posts
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} models.Post "Post details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid postID"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /post/{postID} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a new post
// @Summary Create post
// @Description Creates a new post; published_date is set by the database at insert time
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body models.Post true "Post data"
// @Success 201 {object} models.Post "Created post"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /post [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if post.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if post.Author == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("author"))
			return
		}

		// Associations are managed through their own endpoints
		post.ID = 0
		post.Comments = nil
		post.Tags = nil

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updatePost updates an existing post
// @Summary Update post
// @Description Updates a post's title, content, author and published flag.
// The published_date column is create-only and keeps its original value.
// @Tags Posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Param post body models.Post true "Post data"
// @Success 200 {object} models.Post "Updated post"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /post/{postID} [put]
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		existing, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		var payload models.Post
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != "" {
			existing.Title = payload.Title
		}
		if payload.Content != "" {
			existing.Content = payload.Content
		}
		if payload.Author != "" {
			existing.Author = payload.Author
		}
		existing.IsPublished = payload.IsPublished

		if err := h.postRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deletePost removes a post; its comments and tag associations cascade
// @Summary Delete post
// @Tags Posts
// @Param postID path int true "Post ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /post/{postID} [delete]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		if err := h.postRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// parseID parses a positive int64 route parameter
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
