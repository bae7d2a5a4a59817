package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/semexe/backend/api/transport"
	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/pkg/httpcontext"
	feedbackUC "github.com/semexe/backend/usecase/feedback"
)

type FeedbackHandler struct {
	baseHandler
	uc *feedbackUC.UseCase
}

func NewFeedbackHandler(uc *feedbackUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Submit feedback
// @Tags feedback
// @Router /api/feedback [post]
func (h *FeedbackHandler) Submit(ctx *fasthttp.RequestCtx) {
	var req transport.FeedbackRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	fb := &domain.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.uc.Submit(stdCtx, fb); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, map[string]string{"message": "feedback received"})
}
