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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
	postRepo  *database.PostRepo
}

func newTagHandler(tagRepo *database.TagRepo, postRepo *database.PostRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
		postRepo:  postRepo,
	}
}

// getAllTags returns all tags
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		h.responder.WriteJSON(w, tags)
	}
}

// createTag creates a new tag. Names are unique storage-wide; a duplicate
// surfaces as a conflict from the unique index.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if tag.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		tag.ID = 0
		tag.Posts = nil

		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag removes a tag and its post associations
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseID(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// tagPost links a tag to a post in the join table
func (h tagHandler) tagPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, post, ok := h.resolvePair(w, r)
		if !ok {
			return
		}

		if err := h.tagRepo.TagPost(tag, post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("tag post", "tag", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// untagPost removes a tag's link to a post from the join table
func (h tagHandler) untagPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, post, ok := h.resolvePair(w, r)
		if !ok {
			return
		}

		if err := h.tagRepo.UntagPost(tag, post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("untag post", "tag", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// resolvePair loads the tag and post named in the route, writing the error
// response itself when either lookup fails.
func (h tagHandler) resolvePair(w http.ResponseWriter, r *http.Request) (*models.Tag, *models.Post, bool) {
	postID, err := parseID(chi.URLParam(r, "postID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
		return nil, nil, false
	}

	tagID, err := parseID(chi.URLParam(r, "tagID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
		return nil, nil, false
	}

	post, err := h.postRepo.FindByID(postID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
		return nil, nil, false
	}

	tag, err := h.tagRepo.FindByID(tagID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
		return nil, nil, false
	}

	return tag, post, true
}
