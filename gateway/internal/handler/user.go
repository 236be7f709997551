package handler

import (
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body api.CreateUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.CreateUser(r.Context(), body)
	relay(w, r, reply, err)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	reply, err := h.client.GetUsers(r.Context())
	relay(w, r, reply, err)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userId, err := pathId(r, "userId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetUser(r.Context(), userId)
	relay(w, r, reply, err)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userId, err := pathId(r, "userId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.UpdateUser(r.Context(), userId, body)
	relay(w, r, reply, err)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userId, err := pathId(r, "userId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.DeleteUser(r.Context(), userId)
	relay(w, r, reply, err)
}
