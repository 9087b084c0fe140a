package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"rodeioapp/internal/adapter/http/page"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/core/domain"
	"rodeioapp/internal/core/model/request"
	"rodeioapp/internal/core/port"
	"rodeioapp/internal/core/telemetry"
	ct "rodeioapp/pkg/context"
	. "rodeioapp/pkg/tracing"
)

type RegistrationHandler struct {
	svc       port.RegistrationService
	page      *page.Renderer
	validator port.Validator
	metrics   *telemetry.AppMetrics
	Logger    *logger.LokiLogger
}

func NewRegistrationHandler(svc port.RegistrationService, renderer *page.Renderer, validator port.Validator, metrics *telemetry.AppMetrics, log *logger.LokiLogger) *RegistrationHandler {
	if log == nil {
		log = logger.NewNop()
	}

	return &RegistrationHandler{
		svc:       svc,
		page:      renderer,
		validator: validator,
		metrics:   metrics,
		Logger:    log,
	}
}

// Index renders the bare form.
func (h *RegistrationHandler) Index(c *gin.Context) {
	h.render(c, "")
}

// Submit stores one registration and renders the page with the outcome message.
// The response is 200 for every outcome.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.registration.Submit", []attribute.KeyValue{
		attribute.String("handler.operation", "Submit"),
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	var req request.RegistrationRequest

	if err := c.ShouldBind(&req); err != nil {
		h.Logger.Logger.Ctx(ctx).Debug("Failed to bind registration form", zap.Error(err))
	}

	saved, err := h.svc.Register(ctx, req.ToDomain())
	outcome := domain.OutcomeOf(err)

	switch outcome {
	case domain.OutcomeInvalid:
		h.Logger.Logger.Ctx(ctx).Debug("Registration rejected",
			zap.Any("fields", h.validator.FormatValidationErrors(err)),
			zap.String("request_id", ct.RequestID(ctx)),
		)

	case domain.OutcomeFailed:
		AddSpanError(span, err)

		h.Logger.ErrorWithTrace(ctx, "Failed to save registration",
			zap.Error(err),
			zap.String("request_id", ct.RequestID(ctx)),
		)

	case domain.OutcomeSuccess:
		span.SetAttributes(attribute.Int64("registration.id", saved.ID))
	}

	AddSpanEvent(span, "registration.submitted", []attribute.KeyValue{
		attribute.String("registration.outcome", outcome.String()),
	})

	if h.metrics != nil {
		h.metrics.RecordRegistration(ctx, outcome)
	}

	h.render(c, outcome.Message())
}

func (h *RegistrationHandler) render(c *gin.Context, message string) {
	body, err := h.page.Render(message)
	if err != nil {
		h.Logger.ErrorWithTrace(c.Request.Context(), "Failed to render page", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
