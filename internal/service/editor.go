package service

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/logger"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/packing"
	"github.com/guttosm/pack-planner/internal/shipments"
	"github.com/rs/zerolog"
)

const (
	// MsgCorrectCriticalErrors is the advisory set when a commit is blocked by critical errors.
	MsgCorrectCriticalErrors = "Please correct critical errors before saving."
	saveFailedPrefix         = "Error saving packing: "

	// DefaultAdvisoryTTL is how long a clamp advisory stays visible.
	DefaultAdvisoryTTL = 4 * time.Second
)

// EditorState is the lifecycle state of a packing session.
type EditorState string

const (
	StateOpen       EditorState = "open"
	StateEditing    EditorState = "editing"
	StateSaving     EditorState = "saving"
	StateSaved      EditorState = "saved"
	StateSaveFailed EditorState = "save_failed"
	StateClosed     EditorState = "closed"
)

// AdvisoryKind classifies the message shown above the editing surface.
type AdvisoryKind string

const (
	AdvisoryInfo  AdvisoryKind = "info"
	AdvisoryError AdvisoryKind = "error"
)

// Advisory is a dismissable message for the operator. Clamp advisories expire
// on their own; error advisories stay until dismissed or replaced.
type Advisory struct {
	Kind      AdvisoryKind `json:"kind" example:"info"`
	Message   string       `json:"message" example:"Adjusted units for WH-001 to 100 per box to not exceed total shipment quantity."`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

func (a *Advisory) expired(now time.Time) bool {
	return a.ExpiresAt != nil && !now.Before(*a.ExpiresAt)
}

// Snapshot is a consistent view of an editor taken under its lock.
//
// @Description Packing session state with derived allocation
type Snapshot struct {
	ID             string                `json:"id" example:"0b9d7c1e-6a4f-4f0e-9d51-3c1f1d2b9a77"`
	State          EditorState           `json:"state" example:"editing"`
	Session        model.PackingSession  `json:"session"`
	Summary        packing.Summary       `json:"summary"`
	CriticalErrors map[string]string     `json:"criticalErrors"`
	Warnings       []string              `json:"warnings"`
	Advisory       *Advisory             `json:"advisory,omitempty"`
	Adjustment     *packing.Adjustment   `json:"adjustment,omitempty"`
	Record         *model.ShipmentRecord `json:"record,omitempty"`
	UpdatedAt      time.Time             `json:"updatedAt"`
} // @name PackingSnapshot

// CommitResult is the outcome of a successful commit.
type CommitResult struct {
	Record   *model.ShipmentRecord `json:"record"`
	Warnings []string              `json:"warnings"`
}

// SaveHook runs after a successful save with the authoritative record.
type SaveHook func(ctx context.Context, record *model.ShipmentRecord)

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithOnSave registers a hook invoked after each successful commit.
func WithOnSave(hook SaveHook) EditorOption {
	return func(e *Editor) {
		e.onSave = hook
	}
}

// WithEditorAdvisoryTTL sets how long clamp advisories stay visible.
func WithEditorAdvisoryTTL(ttl time.Duration) EditorOption {
	return func(e *Editor) {
		if ttl > 0 {
			e.advisoryTTL = ttl
		}
	}
}

// WithEditorClock replaces time.Now.
func WithEditorClock(now func() time.Time) EditorOption {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

// Editor owns one PackingSession and serialises every edit applied to it.
// The shipments API is called without holding the lock; while the call is in
// flight the session is locked against edits.
type Editor struct {
	mu sync.Mutex

	id             string
	state          EditorState
	session        model.PackingSession
	criticalErrors map[string]string
	advisory       *Advisory
	record         *model.ShipmentRecord
	updatedAt      time.Time

	client      shipments.Client
	onSave      SaveHook
	advisoryTTL time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

// NewEditor opens an editor for shipment. The session is built from the
// shipment's persisted packing lines when it has any.
func NewEditor(id string, shipment model.ShipmentRecord, items []model.ShipmentLineItem, client shipments.Client, opts ...EditorOption) *Editor {
	e := &Editor{
		id:             id,
		state:          StateOpen,
		criticalErrors: make(map[string]string),
		client:         client,
		advisoryTTL:    DefaultAdvisoryTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.session = packing.InitSession(shipment, items)
	e.updatedAt = e.now()
	e.log = logger.ForSession(id, e.session.ShipmentID)
	return e
}

// ID returns the session id.
func (e *Editor) ID() string {
	return e.id
}

// State returns the current lifecycle state.
func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot returns the current state of the editor.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(nil)
}

func (e *Editor) snapshotLocked(adj *packing.Adjustment) Snapshot {
	now := e.now()
	if e.advisory != nil && e.advisory.expired(now) {
		e.advisory = nil
	}

	errs := make(map[string]string, len(e.criticalErrors))
	for k, v := range e.criticalErrors {
		errs[k] = v
	}

	snap := Snapshot{
		ID:             e.id,
		State:          e.state,
		Session:        e.session.Clone(),
		Summary:        packing.Summarize(e.session),
		CriticalErrors: errs,
		Warnings:       packing.ValidateForSave(e.session).Warnings,
		Adjustment:     adj,
		Record:         e.record,
		UpdatedAt:      e.updatedAt,
	}
	if e.advisory != nil {
		a := *e.advisory
		snap.Advisory = &a
	}
	return snap
}

// editableLocked reports why the session cannot be edited, if it cannot.
func (e *Editor) editableLocked() error {
	switch e.state {
	case StateSaving:
		return ErrSessionSaving
	case StateSaved, StateClosed:
		return ErrSessionFinished
	}
	return nil
}

// apply runs a pure reducer against the session. On success the recorded
// critical errors for the edited fields are cleared. A rejected input leaves
// the session untouched and returns the current snapshot with the error.
func (e *Editor) apply(op string, clear []string, fn func(model.PackingSession) (model.PackingSession, *packing.Adjustment, error)) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.editableLocked(); err != nil {
		metrics.RecordEdit(op, "locked")
		return e.snapshotLocked(nil), err
	}

	next, adj, err := fn(e.session)
	if err != nil {
		result := "error"
		if errors.Is(err, packing.ErrInputRejected) {
			result = "rejected"
		}
		metrics.RecordEdit(op, result)
		return e.snapshotLocked(nil), err
	}

	e.session = next
	for _, key := range clear {
		delete(e.criticalErrors, key)
	}
	e.state = StateEditing
	e.updatedAt = e.now()

	if adj != nil {
		metrics.RecordClamp()
		expires := e.updatedAt.Add(e.advisoryTTL)
		e.advisory = &Advisory{
			Kind:      AdvisoryInfo,
			Message:   adj.Message(),
			CreatedAt: e.updatedAt,
			ExpiresAt: &expires,
		}
		e.log.Info().
			Str("sku", adj.SKU).
			Int("requested", adj.Requested).
			Int("applied", adj.Applied).
			Msg("Units per box clamped to remaining capacity")
	}

	metrics.RecordEdit(op, "success")
	return e.snapshotLocked(adj), nil
}

func noAdjustment(fn func(model.PackingSession) (model.PackingSession, error)) func(model.PackingSession) (model.PackingSession, *packing.Adjustment, error) {
	return func(s model.PackingSession) (model.PackingSession, *packing.Adjustment, error) {
		next, err := fn(s)
		return next, nil, err
	}
}

// AddBoxType appends a default box type.
func (e *Editor) AddBoxType() (Snapshot, error) {
	return e.apply("add_box_type", nil, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.AddBoxType(s), nil
	}))
}

// RemoveBoxType removes a box type and forgets its recorded errors. The last
// box type is kept and an unknown id is ignored.
func (e *Editor) RemoveBoxType(boxTypeID string) (Snapshot, error) {
	return e.apply("remove_box_type", nil, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		next := packing.RemoveBoxType(s, boxTypeID)
		if s.BoxTypeIndex(boxTypeID) >= 0 && next.BoxTypeIndex(boxTypeID) < 0 {
			e.forgetBoxTypeLocked(s, boxTypeID)
		}
		return next, nil
	}))
}

// forgetBoxTypeLocked drops recorded errors that point at a removed box type.
func (e *Editor) forgetBoxTypeLocked(s model.PackingSession, boxTypeID string) {
	delete(e.criticalErrors, packing.CountKey(boxTypeID))
	delete(e.criticalErrors, packing.DimensionsKey(boxTypeID))
	delete(e.criticalErrors, packing.WeightKey(boxTypeID))
	bt := s.BoxTypes[s.BoxTypeIndex(boxTypeID)]
	for sku := range bt.UnitsPerProduct {
		delete(e.criticalErrors, packing.UnitsKey(boxTypeID, sku))
	}
}

// ToggleExpanded flips the expanded flag of a box type.
func (e *Editor) ToggleExpanded(boxTypeID string) (Snapshot, error) {
	return e.apply("toggle_expanded", nil, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.ToggleExpanded(s, boxTypeID)
	}))
}

// SetBoxCount stores the number of boxes of a box type.
func (e *Editor) SetBoxCount(boxTypeID, raw string) (Snapshot, error) {
	return e.apply("box_count", []string{packing.CountKey(boxTypeID)}, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetBoxCount(s, boxTypeID, raw)
	}))
}

// SetUnitsPerProduct stores units per box for a SKU, clamping to the
// remaining capacity. A clamp sets a transient advisory.
func (e *Editor) SetUnitsPerProduct(boxTypeID, sku, raw string) (Snapshot, error) {
	return e.apply("units", []string{packing.UnitsKey(boxTypeID, sku)}, func(s model.PackingSession) (model.PackingSession, *packing.Adjustment, error) {
		return packing.SetUnitsPerProduct(s, boxTypeID, sku, raw)
	})
}

// SetDimension stores one dimension of a box type.
func (e *Editor) SetDimension(boxTypeID string, field packing.DimensionField, raw string) (Snapshot, error) {
	return e.apply("dimension", []string{packing.DimensionsKey(boxTypeID)}, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetDimension(s, boxTypeID, field, raw)
	}))
}

// SetWeight stores the weight per box of a box type.
func (e *Editor) SetWeight(boxTypeID, raw string) (Snapshot, error) {
	return e.apply("weight", []string{packing.WeightKey(boxTypeID)}, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetWeight(s, boxTypeID, raw)
	}))
}

// SetDimensionUnit changes the length unit of a box type.
func (e *Editor) SetDimensionUnit(boxTypeID, raw string) (Snapshot, error) {
	return e.apply("dimension_unit", nil, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetDimensionUnit(s, boxTypeID, raw)
	}))
}

// SetWeightUnit changes the weight unit of a box type.
func (e *Editor) SetWeightUnit(boxTypeID, raw string) (Snapshot, error) {
	return e.apply("weight_unit", nil, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetWeightUnit(s, boxTypeID, raw)
	}))
}

// SetPlannedTotalBoxes stores the planned number of boxes.
func (e *Editor) SetPlannedTotalBoxes(raw string) (Snapshot, error) {
	return e.apply("planned_total", []string{packing.TotalBoxesKey}, noAdjustment(func(s model.PackingSession) (model.PackingSession, error) {
		return packing.SetPlannedTotalBoxes(s, raw)
	}))
}

// Validate runs save validation without recording anything.
func (e *Editor) Validate() packing.ValidationResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return packing.ValidateForSave(e.session)
}

// DismissAdvisory clears the current advisory.
func (e *Editor) DismissAdvisory() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.advisory = nil
	return e.snapshotLocked(nil)
}

// Commit validates the session and saves it through the shipments API.
//
// Critical errors are recorded on the editor and returned as a
// *ValidationFailedError without any network call. A failed call leaves the
// session untouched and returns a *SaveError; the operator retries manually.
// On success the returned record replaces the local session and the save
// hook runs. The call is not cancelled when ctx is; a caller that goes away
// mid-save does not abort the save.
func (e *Editor) Commit(ctx context.Context) (*CommitResult, error) {
	e.mu.Lock()
	if err := e.editableLocked(); err != nil {
		e.mu.Unlock()
		metrics.RecordCommit(0, "locked")
		return nil, err
	}

	result := packing.ValidateForSave(e.session)
	if result.HasCriticalErrors() {
		e.criticalErrors = maps.Clone(result.CriticalErrors)
		e.advisory = &Advisory{Kind: AdvisoryError, Message: MsgCorrectCriticalErrors, CreatedAt: e.now()}
		e.mu.Unlock()
		metrics.RecordCommit(0, "invalid")
		e.log.Info().Int("critical_errors", len(result.CriticalErrors)).Msg("Commit blocked by critical errors")
		return nil, &ValidationFailedError{Result: result}
	}

	e.criticalErrors = make(map[string]string)
	lines := packing.ToWireFormat(e.session)
	shipmentID := e.session.ShipmentID
	items := e.session.Items
	e.state = StateSaving
	e.mu.Unlock()

	start := time.Now()
	record, err := e.client.UpdatePacking(context.WithoutCancel(ctx), shipmentID, lines, model.ShipmentStatusPacked)
	elapsed := time.Since(start)

	e.mu.Lock()
	if e.state == StateClosed {
		e.mu.Unlock()
		metrics.RecordCommit(elapsed, "discarded")
		e.log.Info().Err(err).Msg("Session closed during save, result discarded")
		return nil, ErrSessionClosed
	}

	if err != nil {
		e.state = StateSaveFailed
		e.advisory = &Advisory{Kind: AdvisoryError, Message: saveFailedPrefix + err.Error(), CreatedAt: e.now()}
		e.updatedAt = e.now()
		e.mu.Unlock()
		metrics.RecordCommit(elapsed, "error")
		e.log.Warn().Err(err).Msg("Saving packing failed")
		return nil, &SaveError{Err: err}
	}

	e.state = StateSaved
	e.record = record
	e.session = packing.InitSession(*record, items)
	e.advisory = nil
	e.updatedAt = e.now()
	hook := e.onSave
	e.mu.Unlock()

	metrics.RecordCommit(elapsed, "success")
	e.log.Info().
		Int("packing_lines", len(lines)).
		Dur("duration", elapsed).
		Msg("Packing saved")

	if hook != nil {
		hook(context.WithoutCancel(ctx), record)
	}

	return &CommitResult{Record: record, Warnings: result.Warnings}, nil
}

// Close abandons the session. A save in flight still completes but its
// result is discarded.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateClosed {
		return
	}
	e.state = StateClosed
	e.log.Debug().Msg("Packing session closed")
}
