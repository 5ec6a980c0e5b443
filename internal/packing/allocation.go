package packing

import "github.com/guttosm/pack-planner/internal/domain/model"

// AssignedUnits returns the number of units of sku placed across all box
// types: the sum of boxCount × unitsPerProduct[sku]. Empty fields count as 0.
func AssignedUnits(s model.PackingSession, sku string) int {
	return AssignedUnitsExcluding(s, sku, "")
}

// AssignedUnitsExcluding is AssignedUnits skipping the box type with
// excludeID. It gives the room left for sku when only that box type changes.
func AssignedUnitsExcluding(s model.PackingSession, sku, excludeID string) int {
	total := 0
	for _, bt := range s.BoxTypes {
		if excludeID != "" && bt.ID == excludeID {
			continue
		}
		total += bt.BoxCount.Int() * bt.UnitsPerProduct[sku].Int()
	}
	return total
}

// Remaining returns the units of sku still to be assigned. A negative result
// means the SKU is over-assigned. Unknown SKUs have a total of 0.
func Remaining(s model.PackingSession, sku string) int {
	item, _ := s.Item(sku)
	return item.Quantity - AssignedUnits(s, sku)
}

// DefinedTotalBoxes returns the sum of box counts over all box types.
func DefinedTotalBoxes(s model.PackingSession) int {
	total := 0
	for _, bt := range s.BoxTypes {
		total += bt.BoxCount.Int()
	}
	return total
}

// IsFullyAssigned reports whether every item is assigned exactly its total
// quantity. It is true for a session without items.
func IsFullyAssigned(s model.PackingSession) bool {
	for _, item := range s.Items {
		if AssignedUnits(s, item.SKU) != item.Quantity {
			return false
		}
	}
	return true
}

// ItemAllocation is the allocation state of one shipment item.
type ItemAllocation struct {
	SKU       string `json:"sku" example:"WH-001"`
	Name      string `json:"name" example:"Wireless headphones"`
	Total     int    `json:"total" example:"100"`
	Assigned  int    `json:"assigned" example:"100"`
	Remaining int    `json:"remaining" example:"0"`
}

// OverAssigned reports whether more units are assigned than the shipment holds.
func (a ItemAllocation) OverAssigned() bool {
	return a.Remaining < 0
}

// Summary is the derived state shown next to the editing surface.
type Summary struct {
	Items             []ItemAllocation `json:"items"`
	DefinedTotalBoxes int              `json:"definedTotalBoxes" example:"4"`
	PlannedTotalBoxes model.Count      `json:"plannedTotalBoxes" swaggertype:"integer"`
	FullyAssigned     bool             `json:"fullyAssigned"`
}

// Summarize computes the per-item allocation and box totals of a session.
func Summarize(s model.PackingSession) Summary {
	rows := make([]ItemAllocation, 0, len(s.Items))
	fully := true
	for _, item := range s.Items {
		assigned := AssignedUnits(s, item.SKU)
		if assigned != item.Quantity {
			fully = false
		}
		rows = append(rows, ItemAllocation{
			SKU:       item.SKU,
			Name:      item.Name,
			Total:     item.Quantity,
			Assigned:  assigned,
			Remaining: item.Quantity - assigned,
		})
	}

	return Summary{
		Items:             rows,
		DefinedTotalBoxes: DefinedTotalBoxes(s),
		PlannedTotalBoxes: s.PlannedTotalBoxes,
		FullyAssigned:     fully,
	}
}
