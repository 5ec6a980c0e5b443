package packing

import (
	"sort"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// ToWireFormat converts the box types of a session into persisted packing
// lines, one per box type and in the same order. Empty numeric fields become
// 0. Units are listed in shipment item order followed by any other SKUs in
// lexical order; zero quantities are kept.
func ToWireFormat(s model.PackingSession) []model.PackingLine {
	lines := make([]model.PackingLine, 0, len(s.BoxTypes))
	for _, bt := range s.BoxTypes {
		unit := string(bt.Dimensions.Unit)
		if unit == "" {
			unit = string(model.DefaultDimensionUnit)
		}
		weightUnit := string(bt.WeightUnit)
		if weightUnit == "" {
			weightUnit = string(model.DefaultWeightUnit)
		}

		lines = append(lines, model.PackingLine{
			BoxCount: bt.BoxCount.Int(),
			Dimensions: model.LineDimensions{
				Length: bt.Dimensions.Length.Float(),
				Width:  bt.Dimensions.Width.Float(),
				Height: bt.Dimensions.Height.Float(),
				Unit:   unit,
			},
			Weight:      bt.WeightPerBox.Float(),
			WeightUnit:  weightUnit,
			UnitsPerBox: flattenUnits(bt.UnitsPerProduct, s.Items),
		})
	}
	return lines
}

func flattenUnits(units map[string]model.Count, items []model.ShipmentLineItem) []model.UnitsPerBox {
	out := make([]model.UnitsPerBox, 0, len(units))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		n, ok := units[item.SKU]
		if !ok {
			continue
		}
		seen[item.SKU] = struct{}{}
		out = append(out, model.UnitsPerBox{SKU: item.SKU, Quantity: n.Int()})
	}

	var extra []string
	for sku := range units {
		if _, ok := seen[sku]; !ok {
			extra = append(extra, sku)
		}
	}
	sort.Strings(extra)
	for _, sku := range extra {
		out = append(out, model.UnitsPerBox{SKU: sku, Quantity: units[sku].Int()})
	}
	return out
}

// FromWireFormat rebuilds box types from persisted packing lines. Each box
// type gets a fresh id, SKUs of the shipment missing from a line are seeded
// with zero units, and only the first box type starts expanded.
func FromWireFormat(lines []model.PackingLine, items []model.ShipmentLineItem) []model.BoxType {
	boxTypes := make([]model.BoxType, 0, len(lines))
	for i, line := range lines {
		units := make(map[string]model.Count, len(line.UnitsPerBox)+len(items))
		for _, u := range line.UnitsPerBox {
			units[u.SKU] = model.CountOf(u.Quantity)
		}
		for _, item := range items {
			if _, ok := units[item.SKU]; !ok {
				units[item.SKU] = model.CountOf(0)
			}
		}

		dimUnit := model.DimensionUnit(line.Dimensions.Unit)
		if !dimUnit.Valid() {
			dimUnit = model.DefaultDimensionUnit
		}
		weightUnit := model.WeightUnit(line.WeightUnit)
		if !weightUnit.Valid() {
			weightUnit = model.DefaultWeightUnit
		}

		boxTypes = append(boxTypes, model.BoxType{
			ID:       newID(),
			BoxCount: model.CountOf(line.BoxCount),
			Dimensions: model.Dimensions{
				Length: model.MeasureOf(line.Dimensions.Length),
				Width:  model.MeasureOf(line.Dimensions.Width),
				Height: model.MeasureOf(line.Dimensions.Height),
				Unit:   dimUnit,
			},
			WeightPerBox:    model.MeasureOf(line.Weight),
			WeightUnit:      weightUnit,
			UnitsPerProduct: units,
			Expanded:        i == 0,
		})
	}
	return boxTypes
}
