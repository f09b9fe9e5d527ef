package handler

import (
	"errors"
	"net/http"

	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase) *ClinicHandler {
	return &ClinicHandler{clinicUsecase: clinicUsecase}
}

func (h *ClinicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetClinics(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, clinics)
}

func (h *ClinicHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := uintPath(r, "id")
	if !ok {
		response.NotFound(w, "Clinic not found")
		return
	}

	detail, err := h.clinicUsecase.GetClinicDetail(r.Context(), id)
	if err != nil {
		h.writeClinicError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

func (h *ClinicHandler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	id, ok := uintPath(r, "id")
	if !ok {
		response.NotFound(w, "Clinic not found")
		return
	}

	treatments, err := h.clinicUsecase.GetClinicTreatments(r.Context(), id)
	if err != nil {
		h.writeClinicError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, treatments)
}

func (h *ClinicHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	id, ok := uintPath(r, "id")
	if !ok {
		response.NotFound(w, "Clinic not found")
		return
	}

	offers, err := h.clinicUsecase.GetClinicOffers(r.Context(), id)
	if err != nil {
		h.writeClinicError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, offers)
}

func (h *ClinicHandler) writeClinicError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrClinicNotFound) {
		response.NotFound(w, "Clinic not found")
		return
	}
	response.InternalServerError(w)
}
