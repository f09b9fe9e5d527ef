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

type SiteSettingsHandler struct {
	settingsUsecase usecase.SiteSettingsUsecase
	validator       *validator.CustomValidator
}

func NewSiteSettingsHandler(settingsUsecase usecase.SiteSettingsUsecase, validator *validator.CustomValidator) *SiteSettingsHandler {
	return &SiteSettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SiteSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.GetSiteSettings(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, settings)
}

// Update replaces the singleton settings row, creating it on first save.
func (h *SiteSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSiteSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.UpdateSiteSettings(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSettingsExists) {
			response.BadRequest(w, "Site settings already exist")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, settings)
}

// Delete always refuses; the settings row is permanent once created.
func (h *SiteSettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsUsecase.DeleteSiteSettings(r.Context()); err != nil {
		response.Error(w, http.StatusForbidden, "Site settings cannot be deleted")
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
