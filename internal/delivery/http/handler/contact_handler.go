package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
	"wellness-cms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.contactUsecase.CreateContactMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Contact message not found")
		return
	}

	if err := h.contactUsecase.MarkContactMessageRead(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrContactMessageNotFound) {
			response.NotFound(w, "Contact message not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Contact message marked as read"})
}
