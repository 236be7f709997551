package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shareit-dev/shareit/gateway/internal/apiclient"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/logger"
	mw "github.com/shareit-dev/shareit/shared/middleware"
	"github.com/shareit-dev/shareit/shared/utils"
)

// Handler checks every call and hands the valid ones to the server.
type Handler struct {
	client *apiclient.APIClient
	paging config.Paging
	now    func() time.Time
}

func New(client *apiclient.APIClient, paging config.Paging) *Handler {
	return &Handler{client: client, paging: paging, now: time.Now}
}

// relay copies the server's answer to w.
func relay(w http.ResponseWriter, r *http.Request, reply *apiclient.Reply, err error) {
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if reply.ContentType != "" {
		w.Header().Set("Content-Type", reply.ContentType)
	}
	w.WriteHeader(reply.StatusCode)
	if _, err := w.Write(reply.Body); err != nil {
		logger.FromContext(r.Context()).Warn("failed to relay reply", "error", err)
	}
}

func sharer(r *http.Request) (domain.UserId, error) {
	id, ok := mw.GetUserIdFromContext(r)
	if !ok {
		return 0, errors.BadRequest("Required request header '%s' is not present", mw.SharerHeader)
	}
	return id, nil
}

func pathId(r *http.Request, name string) (int64, error) {
	id, err := utils.ParseIntParam(chi.URLParam(r, name), name)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.BadRequest("%s must be positive", name)
	}
	return id, nil
}

func (h *Handler) page(r *http.Request) (domain.Page, error) {
	return utils.ParsePage(r, h.paging.DefaultSize, h.paging.MaxSize)
}

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
