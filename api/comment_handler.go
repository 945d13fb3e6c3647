package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/demosite/blogshop-backend/database"
	"github.com/demosite/blogshop-backend/errs"
	"github.com/demosite/blogshop-backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	postRepo    *database.PostRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, postRepo *database.PostRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// getComments returns all comments for a post
func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		comments, err := h.commentRepo.FindByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// createComment attaches a new comment to a post. The post must exist; a
// comment never floats without its post reference.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		if _, err := h.postRepo.FindByID(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		var comment models.Comment
		if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if comment.Author == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("author"))
			return
		}
		if comment.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		comment.ID = 0
		comment.PostID = postID
		comment.Post = nil

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a single comment by id
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := parseID(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete comment", "comment", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
