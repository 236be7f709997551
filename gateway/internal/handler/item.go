package handler

import (
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/utils"
)

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateItemRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.CreateItem(r.Context(), userId, body)
	relay(w, r, reply, err)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	itemId, err := pathId(r, "itemId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateItemRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.UpdateItem(r.Context(), userId, itemId, body)
	relay(w, r, reply, err)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	itemId, err := pathId(r, "itemId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetItem(r.Context(), userId, itemId)
	relay(w, r, reply, err)
}

func (h *Handler) GetOwnItems(w http.ResponseWriter, r *http.Request) {
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
	reply, err := h.client.GetOwnItems(r.Context(), userId, page)
	relay(w, r, reply, err)
}

func (h *Handler) SearchItems(w http.ResponseWriter, r *http.Request) {
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
	reply, err := h.client.SearchItems(r.Context(), userId, r.URL.Query().Get("text"), page)
	relay(w, r, reply, err)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	itemId, err := pathId(r, "itemId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.CreateComment(r.Context(), userId, itemId, body)
	relay(w, r, reply, err)
}
