package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/service"
)

// AuditHandler serves the packing audit trail stored by the logging service.
type AuditHandler struct {
	logs service.LoggingService
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(logs service.LoggingService) *AuditHandler {
	return &AuditHandler{logs: logs}
}

// ListEntries handles GET /api/audit-entries.
//
// @Summary      List packing audit entries
// @Description  Returns the audit entries of a shipment or a packing session, newest first.
// @Tags         Audit
// @Produce      json
// @Param        shipmentId query string false "Shipment record ID"
// @Param        sessionId  query string false "Packing session ID"
// @Param        action     query string false "Audit action, e.g. shipment.packed"
// @Param        limit      query int    false "Page size, 1 to 200" default(50)
// @Param        skip       query int    false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditEntriesResponse}
// @Failure      400 {object} dto.ErrorResponse "Missing scope or invalid paging"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Log store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/audit-entries [get]
func (h *AuditHandler) ListEntries(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AuditQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}
	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest,
				i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, i18n.GetLocale(c)),
				map[string]string{validationErr.Field: validationErr.Message}, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	opts := req.QueryOptions()
	entries, err := h.logs.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.logs.CountLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.AuditEntriesResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}
