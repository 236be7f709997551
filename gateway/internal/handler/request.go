package handler

import (
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/utils"
)

func (h *Handler) CreateItemRequest(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateItemRequestRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.CreateItemRequest(r.Context(), userId, body)
	relay(w, r, reply, err)
}

func (h *Handler) GetOwnItemRequests(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetOwnItemRequests(r.Context(), userId)
	relay(w, r, reply, err)
}

func (h *Handler) GetOtherItemRequests(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	page, err := h.page(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetOtherItemRequests(r.Context(), userId, page)
	relay(w, r, reply, err)
}

func (h *Handler) GetItemRequest(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	requestId, err := pathId(r, "requestId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetItemRequest(r.Context(), userId, requestId)
	relay(w, r, reply, err)
}
