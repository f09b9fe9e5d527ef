package handler

import (
	"errors"
	"net/http"

	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
)

// ContentHandler serves the read-only landing page and listing endpoints.
type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
}

func NewContentHandler(contentUsecase usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

func (h *ContentHandler) GetLandingBackground(w http.ResponseWriter, r *http.Request) {
	bg, err := h.contentUsecase.GetLandingBackground(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrLandingBgNotFound) {
			response.NotFound(w, "No active landing background")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, bg)
}

func (h *ContentHandler) GetTreatmentFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.contentUsecase.GetTreatmentFAQs(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, faqs)
}

func (h *ContentHandler) GetLandingFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.contentUsecase.GetLandingFAQs(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, faqs)
}

func (h *ContentHandler) GetSkinConcerns(w http.ResponseWriter, r *http.Request) {
	concerns, err := h.contentUsecase.GetSkinConcerns(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, concerns)
}

func (h *ContentHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.contentUsecase.GetTestimonials(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, testimonials)
}

// GetResults serves the full results gallery, or the single landing hero
// image with ?isLanding=true.
func (h *ContentHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	if boolQuery(r, "isLanding") {
		result, err := h.contentUsecase.GetLandingResult(r.Context())
		if err != nil {
			response.InternalServerError(w)
			return
		}
		response.JSON(w, http.StatusOK, result)
		return
	}

	results, err := h.contentUsecase.GetResults(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, results)
}
