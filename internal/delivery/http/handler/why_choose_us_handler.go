package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
	"wellness-cms-backend/pkg/validator"
)

type WhyChooseUsHandler struct {
	benefitUsecase usecase.WhyChooseUsUsecase
	validator      *validator.CustomValidator
}

func NewWhyChooseUsHandler(benefitUsecase usecase.WhyChooseUsUsecase, validator *validator.CustomValidator) *WhyChooseUsHandler {
	return &WhyChooseUsHandler{
		benefitUsecase: benefitUsecase,
		validator:      validator,
	}
}

func (h *WhyChooseUsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	benefits, err := h.benefitUsecase.GetWhyChooseUs(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, benefits)
}

func (h *WhyChooseUsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveWhyChooseUsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	benefit, err := h.benefitUsecase.CreateWhyChooseUs(r.Context(), &req)
	if err != nil {
		h.writeBenefitError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, benefit)
}

func (h *WhyChooseUsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintPath(r, "id")
	if !ok {
		response.NotFound(w, "Benefit not found")
		return
	}

	var req dto.SaveWhyChooseUsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	benefit, err := h.benefitUsecase.UpdateWhyChooseUs(r.Context(), id, &req)
	if err != nil {
		h.writeBenefitError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, benefit)
}

func (h *WhyChooseUsHandler) writeBenefitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrWhyChooseUsNotFound):
		response.NotFound(w, "Benefit not found")
	case errors.Is(err, usecase.ErrTooManyActiveBenefits):
		response.ValidationError(w, map[string]string{"is_active": err.Error()})
	default:
		response.InternalServerError(w)
	}
}
