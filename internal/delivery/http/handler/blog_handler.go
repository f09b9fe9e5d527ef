package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/repository"
	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
	"wellness-cms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type BlogHandler struct {
	blogUsecase usecase.BlogUsecase
	validator   *validator.CustomValidator
}

func NewBlogHandler(blogUsecase usecase.BlogUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		validator:   validator,
	}
}

// GetAll lists published posts, filterable by ?featured=true, ?tags= and
// ?search=.
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := repository.BlogFilter{
		FeaturedOnly: boolQuery(r, "featured"),
		Tag:          r.URL.Query().Get("tags"),
		Search:       r.URL.Query().Get("search"),
	}

	blogs, err := h.blogUsecase.GetBlogs(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	detail, err := h.blogUsecase.GetBlogDetail(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, usecase.ErrBlogNotFound) {
			response.NotFound(w, "Blog post not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.blogUsecase.CreateBlog(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSlugTaken) {
			response.ValidationError(w, map[string]string{
				"slug": "A blog post with this slug already exists",
			})
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.blogUsecase.UpdateBlog(r.Context(), mux.Vars(r)["slug"], &req)
	if err != nil {
		if errors.Is(err, usecase.ErrBlogNotFound) {
			response.NotFound(w, "Blog post not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}
