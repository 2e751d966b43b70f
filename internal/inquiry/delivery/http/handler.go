package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"case-assistant/internal/inquiry"
	"case-assistant/internal/model"
	"case-assistant/internal/ratelimit"
	"case-assistant/pkg/response"
)

// ProcessInquiry handles one user message
// @Summary Process a case inquiry
// @Description Classify the message, govern the generated answer, and return quick actions
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body processReq true "Inquiry"
// @Success 200 {object} processResp
// @Failure 400 {object} response.Resp "Validation failed"
// @Failure 429 {object} response.Resp "Rate limit exceeded"
// @Router /api/v1/assistant/inquiries [post]
func (h *handler) ProcessInquiry(c *gin.Context) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "inquiry.http.ProcessInquiry: malformed body: %v", err)
		response.ErrorWithStatus(c, http.StatusBadRequest, inquiry.ValidationMessage(model.Scope{}.Lang()), nil)
		return
	}

	sc := req.scope()
	out, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, sc, err)
		return
	}

	response.OK(c, newProcessResp(sc, out))
}

// mapError renders pipeline rejections. User-facing text is always in the
// caller's declared language; diagnostic detail stays in the logs.
func (h *handler) mapError(c *gin.Context, sc model.Scope, err error) {
	ctx := c.Request.Context()

	var verr *inquiry.ValidationError
	if errors.As(err, &verr) {
		h.l.Warnf(ctx, "inquiry.http.ProcessInquiry: validation failed: %v", verr)
		response.ErrorWithStatus(c, http.StatusBadRequest, inquiry.ValidationMessage(sc.Lang()), map[string]interface{}{
			"category": string(inquiry.CategoryValidation),
			"field":    verr.Field,
		})
		return
	}

	var exceeded *ratelimit.ExceededError
	if errors.As(err, &exceeded) {
		response.TooManyRequests(c, inquiry.RateLimitMessage(sc.Lang()), exceeded.RetryAfter.Milliseconds())
		return
	}

	h.l.Errorf(ctx, "inquiry.http.ProcessInquiry: unexpected error: %v", err)
	response.InternalError(c, inquiry.Apology(sc.Lang()), map[string]interface{}{
		"category": string(inquiry.CategoryUpstream),
	})
}
