package packing

import (
	"fmt"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// Critical error messages, keyed by field in ValidationResult.CriticalErrors.
const (
	MsgRequiredPositive = "Required & > 0"
	MsgNegative         = "Cannot be negative"
	MsgMissingShipment  = "Shipment ID is missing."
)

// Warning messages returned by ValidateForSave.
const (
	warnBoxCountMismatch = "You planned %d boxes but defined %d. This will be saved as defined."
	WarnNotFullyAssigned = "Not all items from the shipment are assigned to boxes. This will be saved as defined."
)

// Field keys that are not bound to a box type.
const (
	GlobalKey     = "global"
	TotalBoxesKey = "totalBoxes"
)

// CountKey is the field key of a box type's box count.
func CountKey(boxTypeID string) string { return "bt_" + boxTypeID + "_count" }

// DimensionsKey is the field key shared by a box type's three dimensions.
func DimensionsKey(boxTypeID string) string { return "bt_" + boxTypeID + "_dim" }

// WeightKey is the field key of a box type's weight.
func WeightKey(boxTypeID string) string { return "bt_" + boxTypeID + "_weight" }

// UnitsKey is the field key of the units of sku in a box type.
func UnitsKey(boxTypeID, sku string) string { return "bt_" + boxTypeID + "_units_" + sku }

// BoxCountMismatchWarning formats the planned-versus-defined warning.
func BoxCountMismatchWarning(planned, defined int) string {
	return fmt.Sprintf(warnBoxCountMismatch, planned, defined)
}

// ValidationResult is the outcome of ValidateForSave.
//
// @Description Save validation result
type ValidationResult struct {
	CriticalErrors map[string]string `json:"criticalErrors"`
	Warnings       []string          `json:"warnings"`
} // @name ValidationResult

// HasCriticalErrors reports whether the session must not be saved.
func (r ValidationResult) HasCriticalErrors() bool {
	return len(r.CriticalErrors) > 0
}

// ValidateForSave checks a session before it is persisted. Physically
// impossible values are critical and block the save; planned/defined box
// mismatch and incomplete assignment are only warnings.
func ValidateForSave(s model.PackingSession) ValidationResult {
	result := ValidationResult{
		CriticalErrors: make(map[string]string),
		Warnings:       []string{},
	}

	if s.ShipmentID == "" {
		result.CriticalErrors[GlobalKey] = MsgMissingShipment
	}

	for _, bt := range s.BoxTypes {
		if !bt.BoxCount.Positive() {
			result.CriticalErrors[CountKey(bt.ID)] = MsgRequiredPositive
		}

		d := bt.Dimensions
		if !d.Length.Positive() || !d.Width.Positive() || !d.Height.Positive() {
			result.CriticalErrors[DimensionsKey(bt.ID)] = MsgRequiredPositive
		}

		if !bt.WeightPerBox.Positive() {
			result.CriticalErrors[WeightKey(bt.ID)] = MsgRequiredPositive
		}

		for sku, units := range bt.UnitsPerProduct {
			if units.Int() < 0 {
				result.CriticalErrors[UnitsKey(bt.ID, sku)] = MsgNegative
			}
		}
	}

	defined := DefinedTotalBoxes(s)
	if !s.PlannedTotalBoxes.IsEmpty() && s.PlannedTotalBoxes.Int() != defined {
		result.Warnings = append(result.Warnings, BoxCountMismatchWarning(s.PlannedTotalBoxes.Int(), defined))
	}
	if !IsFullyAssigned(s) {
		result.Warnings = append(result.Warnings, WarnNotFullyAssigned)
	}

	return result
}
