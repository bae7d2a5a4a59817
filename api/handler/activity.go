package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/semexe/backend/api/transport"
	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/pkg/httpcontext"
	activityUC "github.com/semexe/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List upcoming activities
// @Tags activities
// @Router /api/atividades [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	sport := string(ctx.QueryArgs().Peek("esporte"))
	if sport == "Todos" {
		sport = ""
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.List(stdCtx, sport)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary List the acting user's activities
// @Tags activities
// @Router /api/atividades/minhas [get]
func (h *ActivityHandler) ListMine(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.ListMine(stdCtx, identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Create an activity
// @Tags activities
// @Router /api/atividades [post]
func (h *ActivityHandler) Create(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	activity, ok := h.parseActivity(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, identity, activity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, map[string]interface{}{"id": created.ID})
}

// @Summary Update an owned activity
// @Tags activities
// @Router /api/atividades/{id} [put]
func (h *ActivityHandler) Update(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	id, ok := h.activityID(ctx)
	if !ok {
		return
	}

	activity, ok := h.parseActivity(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, identity, id, activity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete an owned activity
// @Tags activities
// @Router /api/atividades/{id} [delete]
func (h *ActivityHandler) Delete(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	id, ok := h.activityID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, identity, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": "activity deleted"})
}

func (h *ActivityHandler) parseActivity(ctx *fasthttp.RequestCtx) (*domain.Activity, bool) {
	var req transport.ActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	var startsAt time.Time
	if req.Time != "" {
		parsed, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "time must be RFC 3339", nil))
			return nil, false
		}
		startsAt = parsed
	}

	return &domain.Activity{
		Sport:    req.Sport,
		Title:    req.Title,
		Location: req.Location,
		StartsAt: startsAt,
		Capacity: req.Capacity,
	}, true
}

func (h *ActivityHandler) activityID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid activity id", nil))
		return 0, false
	}
	return id, true
}
