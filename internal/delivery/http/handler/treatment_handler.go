package handler

import (
	"errors"
	"net/http"

	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase) *TreatmentHandler {
	return &TreatmentHandler{treatmentUsecase: treatmentUsecase}
}

// GetAll serves the treatments listing. ?isLanding=true returns the flat
// featured list for the landing page; otherwise categories with their items,
// optionally filtered by ?clinic_id= and ?category_id=.
func (h *TreatmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clinicID := uintQuery(r, "clinic_id")

	if boolQuery(r, "isLanding") {
		treatments, err := h.treatmentUsecase.GetFeaturedTreatments(r.Context(), clinicID)
		if err != nil {
			response.InternalServerError(w)
			return
		}
		response.JSON(w, http.StatusOK, treatments)
		return
	}

	page, err := h.treatmentUsecase.GetTreatmentsPage(r.Context(), clinicID, uintQuery(r, "category_id"))
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *TreatmentHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.treatmentUsecase.GetCategorySummaries(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, summaries)
}

func (h *TreatmentHandler) GetNav(w http.ResponseWriter, r *http.Request) {
	nav, err := h.treatmentUsecase.GetCategoryNav(r.Context(), intQuery(r, "limit"))
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, nav)
}

// GetDetail serves one treatment. With ?clinic_id= the treatment must be
// priced at that clinic; otherwise it is reported as unavailable there.
func (h *TreatmentHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := uintPath(r, "id")
	if !ok {
		response.NotFound(w, "Treatment not found")
		return
	}

	detail, err := h.treatmentUsecase.GetTreatmentDetail(r.Context(), id, uintQuery(r, "clinic_id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTreatmentNotFound):
			response.NotFound(w, "Treatment not found")
		case errors.Is(err, usecase.ErrTreatmentNotAtClinic):
			response.NotFound(w, "Treatment not available at this clinic")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, detail)
}
