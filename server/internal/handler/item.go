package handler

import (
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
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

	item, err := h.item.Create(r.Context(), domain.ItemCreationData{
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		OwnerId:     userId,
		RequestId:   body.RequestId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, item)
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

	item, err := h.item.Update(r.Context(), userId, itemId, domain.ItemUpdateData{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, item)
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

	item, err := h.item.Get(r.Context(), userId, itemId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, item)
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

	items, err := h.item.ListByOwner(r.Context(), userId, page)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, items)
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

	items, err := h.item.Search(r.Context(), userId, r.URL.Query().Get("text"), page)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, items)
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

	comment, err := h.item.AddComment(r.Context(), domain.CommentCreationData{Text: body.Text, ItemId: itemId, AuthorId: userId})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, comment)
}
