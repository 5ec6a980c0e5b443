package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/packing"
	"github.com/guttosm/pack-planner/internal/service"
	"github.com/guttosm/pack-planner/internal/shipments"
)

const (
	paramSessionID = "id"
	paramBoxTypeID = "boxTypeId"
)

// PackingHandler serves the packing session API.
type PackingHandler struct {
	sessions       service.PackingService
	loggingService service.LoggingService
}

// NewPackingHandler creates a PackingHandler. loggingService may be nil.
func NewPackingHandler(sessions service.PackingService, loggingService service.LoggingService) *PackingHandler {
	return &PackingHandler{
		sessions:       sessions,
		loggingService: loggingService,
	}
}

// editor resolves the session in the path. It writes a 404 and returns
// false when the session does not exist.
func (h *PackingHandler) editor(c *gin.Context) (*service.Editor, bool) {
	editor, err := h.sessions.Get(c.Param(paramSessionID))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, nil)
		return nil, false
	}
	middleware.SetPackingContext(c, editor.ID(), editor.Snapshot().Session.ShipmentID)
	return editor, true
}

// OpenSession handles POST /api/packing-sessions.
//
// @Summary      Open a packing session
// @Description  Starts editing the packing of a shipment. Persisted packing lines on the shipment are loaded as box types; a shipment without lines starts with one empty box type.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        request body dto.OpenSessionRequest true "Shipment and its line items"
// @Success      201 {object} dto.SuccessResponse{data=service.Snapshot} "Session opened"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions [post]
func (h *PackingHandler) OpenSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.OpenSessionRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest,
				i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, i18n.GetLocale(c)),
				map[string]string{validationErr.Field: validationErr.Message}, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		return
	}

	editor, err := h.sessions.Open(c.Request.Context(), req.Shipment, req.Items)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	snap := editor.Snapshot()
	middleware.SetPackingContext(c, snap.ID, snap.Session.ShipmentID)
	middleware.AuditLog(h.loggingService, c, middleware.AuditActionSessionOpened, "Packing session opened", map[string]interface{}{
		"items":      len(req.Items),
		"box_types":  len(snap.Session.BoxTypes),
		"has_record": req.Shipment.Identifier() != "",
	})

	builder.SuccessWithMessage(http.StatusCreated, snap, i18n.SuccessKeySessionOpened)
}

// GetSession handles GET /api/packing-sessions/:id.
//
// @Summary      Get a packing session
// @Description  Returns the session, its derived allocation summary, recorded critical errors, soft warnings and the live advisory.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id} [get]
func (h *PackingHandler) GetSession(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(editor.Snapshot())
}

// CloseSession handles DELETE /api/packing-sessions/:id.
//
// @Summary      Close a packing session
// @Description  Abandons the session. A save in flight still completes upstream but its result is discarded.
// @Tags         Packing
// @Param        id path string true "Session ID"
// @Success      204 "Session closed"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id} [delete]
func (h *PackingHandler) CloseSession(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	if err := h.sessions.Close(c.Request.Context(), editor.ID()); err != nil {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, nil)
		return
	}
	middleware.AuditLog(h.loggingService, c, middleware.AuditActionSessionClosed, "Packing session closed", nil)
	c.Status(http.StatusNoContent)
}

// AddBoxType handles POST /api/packing-sessions/:id/box-types.
//
// @Summary      Add a box type
// @Description  Appends an empty box type with a zero units entry for every line item.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      201 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/box-types [post]
func (h *PackingHandler) AddBoxType(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	snap, err := editor.AddBoxType()
	h.respondEdit(c, http.StatusCreated, snap, err)
}

// RemoveBoxType handles DELETE /api/packing-sessions/:id/box-types/:boxTypeId.
//
// @Summary      Remove a box type
// @Description  Removes the box type and any critical errors recorded for it. Unknown ids leave the session unchanged.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        boxTypeId path string true "Box type ID"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/box-types/{boxTypeId} [delete]
func (h *PackingHandler) RemoveBoxType(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	snap, err := editor.RemoveBoxType(c.Param(paramBoxTypeID))
	h.respondEdit(c, http.StatusOK, snap, err)
}

// ToggleBoxType handles POST /api/packing-sessions/:id/box-types/:boxTypeId/toggle.
//
// @Summary      Toggle a box type
// @Description  Flips the expanded state of a box type in the editing surface.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        boxTypeId path string true "Box type ID"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      404 {object} dto.ErrorResponse "Session or box type not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/box-types/{boxTypeId}/toggle [post]
func (h *PackingHandler) ToggleBoxType(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	snap, err := editor.ToggleExpanded(c.Param(paramBoxTypeID))
	h.respondEdit(c, http.StatusOK, snap, err)
}

// EditBoxType handles PATCH /api/packing-sessions/:id/box-types/:boxTypeId.
//
// @Summary      Edit a box type field
// @Description  Applies one field edit as typed by the operator. Malformed input is ignored and the unchanged session is returned. Units per box that would exceed the shipment quantity are clamped and an advisory is set.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        boxTypeId path string true "Box type ID"
// @Param        request body dto.FieldEditRequest true "Field edit"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      400 {object} dto.ErrorResponse "Unknown field or SKU"
// @Failure      404 {object} dto.ErrorResponse "Session or box type not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/box-types/{boxTypeId} [patch]
func (h *PackingHandler) EditBoxType(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.FieldEditRequest](c)
	if err != nil {
		builder := NewResponseBuilder(c)
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			key := i18n.ErrKeyInvalidRequest
			if errors.Is(err, dto.ErrUnknownEditField) {
				key = i18n.ErrKeyUnknownField
			}
			builder.ErrorWithDetails(http.StatusBadRequest,
				i18n.GetTranslator().Translate(key, i18n.GetLocale(c)),
				map[string]string{validationErr.Field: validationErr.Message}, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		return
	}

	boxTypeID := c.Param(paramBoxTypeID)
	raw := req.RawValue()

	var snap service.Snapshot
	switch req.Field {
	case dto.FieldBoxCount:
		snap, err = editor.SetBoxCount(boxTypeID, raw)
	case dto.FieldUnits:
		snap, err = editor.SetUnitsPerProduct(boxTypeID, req.SKU, raw)
	case dto.FieldLength, dto.FieldWidth, dto.FieldHeight:
		snap, err = editor.SetDimension(boxTypeID, packing.DimensionField(req.Field), raw)
	case dto.FieldWeight:
		snap, err = editor.SetWeight(boxTypeID, raw)
	case dto.FieldDimensionUnit:
		snap, err = editor.SetDimensionUnit(boxTypeID, raw)
	case dto.FieldWeightUnit:
		snap, err = editor.SetWeightUnit(boxTypeID, raw)
	}

	h.respondEdit(c, http.StatusOK, snap, err)
}

// SetPlannedTotalBoxes handles PUT /api/packing-sessions/:id/planned-total-boxes.
//
// @Summary      Set the planned number of boxes
// @Description  Sets the operator's planned total box count; an empty or null value clears it.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.PlannedTotalRequest true "Planned total"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/planned-total-boxes [put]
func (h *PackingHandler) SetPlannedTotalBoxes(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.PlannedTotalRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		return
	}

	snap, err := editor.SetPlannedTotalBoxes(req.RawValue())
	h.respondEdit(c, http.StatusOK, snap, err)
}

// DismissAdvisory handles DELETE /api/packing-sessions/:id/advisory.
//
// @Summary      Dismiss the advisory
// @Description  Clears the advisory message shown above the editing surface.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=service.Snapshot}
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/advisory [delete]
func (h *PackingHandler) DismissAdvisory(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(editor.DismissAdvisory())
}

// Validate handles GET /api/packing-sessions/:id/validation.
//
// @Summary      Validate for save
// @Description  Runs the save validation without saving. Critical errors block a commit; warnings do not.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=packing.ValidationResult}
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/validation [get]
func (h *PackingHandler) Validate(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(editor.Validate())
}

// Commit handles POST /api/packing-sessions/:id/commit.
//
// @Summary      Save the packing
// @Description  Validates the session and saves its packing lines to the shipments API with status Packed. The saved shipment record replaces the local session. Failed saves keep the session open for a manual retry. Supports idempotency via Idempotency-Key header.
// @Tags         Packing
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse{data=service.CommitResult} "Packing saved"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Session is saving or finished"
// @Failure      422 {object} dto.ErrorResponse "Critical errors, see details"
// @Failure      502 {object} dto.ErrorResponse "Shipments API rejected or failed the save"
// @Failure      503 {object} dto.ErrorResponse "Shipments API temporarily unavailable"
// @Security     ApiKeyAuth
// @Router       /api/packing-sessions/{id}/commit [post]
func (h *PackingHandler) Commit(c *gin.Context) {
	editor, ok := h.editor(c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	result, err := editor.Commit(c.Request.Context())
	if err == nil {
		builder.SuccessWithMessage(http.StatusOK, result, i18n.SuccessKeyPackingSaved)
		return
	}

	var validationErr *service.ValidationFailedError
	var saveErr *service.SaveError
	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithDetails(http.StatusUnprocessableEntity,
			i18n.GetTranslator().Translate(i18n.ErrKeyValidationFailed, locale),
			validationErr.Result.CriticalErrors, nil)
	case errors.As(err, &saveErr):
		middleware.AuditLogError(h.loggingService, c, middleware.AuditActionCommitFailed, "Saving packing failed", saveErr.Err, nil)
		status := http.StatusBadGateway
		if errors.Is(err, shipments.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		builder.ErrorWithMessage(status, i18n.GetTranslator().Translatef(i18n.ErrKeySaveFailed, locale, saveErr.Err.Error()), err)
	default:
		h.respondLocked(c, err)
	}
}

// respondEdit writes the outcome of an edit. Rejected input is not an error
// for the client: the unchanged snapshot is returned.
func (h *PackingHandler) respondEdit(c *gin.Context, status int, snap service.Snapshot, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case err == nil:
		builder.Success(status, snap)
	case errors.Is(err, packing.ErrInputRejected):
		builder.SuccessOK(snap)
	case errors.Is(err, packing.ErrBoxTypeNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyBoxTypeNotFound, nil)
	case errors.Is(err, packing.ErrUnknownSKU):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownSKU, nil)
	case errors.Is(err, packing.ErrUnknownField):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownField, nil)
	default:
		h.respondLocked(c, err)
	}
}

func (h *PackingHandler) respondLocked(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case errors.Is(err, service.ErrSessionSaving):
		builder.Error(http.StatusConflict, i18n.ErrKeySessionSaving, nil)
	case errors.Is(err, service.ErrSessionFinished), errors.Is(err, service.ErrSessionClosed):
		builder.Error(http.StatusConflict, i18n.ErrKeySessionFinished, nil)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
