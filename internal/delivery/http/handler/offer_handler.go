package handler

import (
	"net/http"

	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/response"
)

type OfferHandler struct {
	offerUsecase usecase.OfferUsecase
}

func NewOfferHandler(offerUsecase usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{offerUsecase: offerUsecase}
}

func (h *OfferHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offerUsecase.GetOffers(r.Context(), uintQuery(r, "clinic_id"))
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, offers)
}
