package handler

import (
	"errors"
	"net/http"

	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
)

type AboutHandler struct {
	aboutUsecase usecase.AboutUsUsecase
}

func NewAboutHandler(aboutUsecase usecase.AboutUsUsecase) *AboutHandler {
	return &AboutHandler{aboutUsecase: aboutUsecase}
}

// Get serves the About-Us payload. ?isLanding=true selects the landing
// shape, falling back to the normal page when no landing row exists.
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutUsecase.GetAboutUs(r.Context(), boolQuery(r, "isLanding"))
	if err != nil {
		if errors.Is(err, usecase.ErrAboutUsNotFound) {
			response.NotFound(w, "About us content not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, about)
}
