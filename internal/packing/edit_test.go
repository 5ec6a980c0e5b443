package packing

import (
	"strconv"
	"testing"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBoxCount(t *testing.T) {
	base := fixedSession(boxType("a", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(50)}))

	tests := []struct {
		name        string
		raw         string
		expected    model.Count
		expectedErr error
	}{
		{name: "stores integer", raw: "4", expected: model.CountOf(4)},
		{name: "trims whitespace", raw: " 7 ", expected: model.CountOf(7)},
		{name: "zero is stored", raw: "0", expected: model.CountOf(0)},
		{name: "blank clears the field", raw: "", expected: model.EmptyCount()},
		{name: "negative is rejected", raw: "-1", expected: model.CountOf(2), expectedErr: ErrInputRejected},
		{name: "decimal is rejected", raw: "2.5", expected: model.CountOf(2), expectedErr: ErrInputRejected},
		{name: "text is rejected", raw: "abc", expected: model.CountOf(2), expectedErr: ErrInputRejected},
		{name: "upper bound is stored", raw: strconv.Itoa(model.MaxCount), expected: model.CountOf(model.MaxCount)},
		{name: "beyond upper bound is rejected", raw: strconv.Itoa(model.MaxCount + 1), expected: model.CountOf(2), expectedErr: ErrInputRejected},
		{name: "int overflow is rejected", raw: "99999999999999999999", expected: model.CountOf(2), expectedErr: ErrInputRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := SetBoxCount(base, "a", tt.raw)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, next.BoxTypes[0].BoxCount)
			assert.Equal(t, model.CountOf(2), base.BoxTypes[0].BoxCount)
		})
	}

	_, err := SetBoxCount(base, "missing", "1")
	assert.ErrorIs(t, err, ErrBoxTypeNotFound)
}

func TestSetBoxCount_DoesNotReclampUnits(t *testing.T) {
	s := fixedSession(boxType("a", model.CountOf(1), map[string]model.Count{"WH-001": model.CountOf(100)}))

	next, err := SetBoxCount(s, "a", "4")

	require.NoError(t, err)
	assert.Equal(t, model.CountOf(100), next.BoxTypes[0].UnitsPerProduct["WH-001"])
	assert.Equal(t, 400, AssignedUnits(next, "WH-001"))
}

func TestSetUnitsPerProduct(t *testing.T) {
	tests := []struct {
		name          string
		session       model.PackingSession
		boxTypeID     string
		sku           string
		raw           string
		expectedUnits model.Count
		expectedAdj   *Adjustment
		expectedErr   error
	}{
		{
			name:          "stores value within capacity",
			session:       fixedSession(boxType("a", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(0)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "50",
			expectedUnits: model.CountOf(50),
		},
		{
			name:          "clamps to floor of capacity over box count",
			session:       fixedSession(boxType("a", model.CountOf(3), map[string]model.Count{"WH-001": model.CountOf(0)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "40",
			expectedUnits: model.CountOf(33),
			expectedAdj:   &Adjustment{BoxTypeID: "a", SKU: "WH-001", Requested: 40, Applied: 33},
		},
		{
			name:          "largest accepted value clamps",
			session:       fixedSession(boxType("a", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(0)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           strconv.Itoa(model.MaxCount),
			expectedUnits: model.CountOf(50),
			expectedAdj:   &Adjustment{BoxTypeID: "a", SKU: "WH-001", Requested: model.MaxCount, Applied: 50},
		},
		{
			name:          "value whose product overflows int is rejected",
			session:       fixedSession(boxType("a", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(10)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "4611686018427387904",
			expectedUnits: model.CountOf(10),
			expectedErr:   ErrInputRejected,
		},
		{
			name: "capacity excludes the edited box type only",
			session: fixedSession(
				boxType("a", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(30)}),
				boxType("b", model.CountOf(2), map[string]model.Count{"WH-001": model.CountOf(10)}),
			),
			boxTypeID:     "b",
			sku:           "WH-001",
			raw:           "25",
			expectedUnits: model.CountOf(20),
			expectedAdj:   &Adjustment{BoxTypeID: "b", SKU: "WH-001", Requested: 25, Applied: 20},
		},
		{
			name: "clamp never goes below zero",
			session: fixedSession(
				boxType("a", model.CountOf(5), map[string]model.Count{"WH-001": model.CountOf(30)}),
				boxType("b", model.CountOf(1), map[string]model.Count{"WH-001": model.CountOf(0)}),
			),
			boxTypeID:     "b",
			sku:           "WH-001",
			raw:           "5",
			expectedUnits: model.CountOf(0),
			expectedAdj:   &Adjustment{BoxTypeID: "b", SKU: "WH-001", Requested: 5, Applied: 0},
		},
		{
			name:          "no clamp when box count is zero",
			session:       fixedSession(boxType("a", model.CountOf(0), map[string]model.Count{"WH-001": model.CountOf(0)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "500",
			expectedUnits: model.CountOf(500),
		},
		{
			name:          "no clamp when box count is empty",
			session:       fixedSession(boxType("a", model.EmptyCount(), map[string]model.Count{"WH-001": model.CountOf(0)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "500",
			expectedUnits: model.CountOf(500),
		},
		{
			name:          "blank clears the field",
			session:       fixedSession(boxType("a", model.CountOf(1), map[string]model.Count{"WH-001": model.CountOf(10)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "",
			expectedUnits: model.EmptyCount(),
		},
		{
			name:          "negative is rejected",
			session:       fixedSession(boxType("a", model.CountOf(1), map[string]model.Count{"WH-001": model.CountOf(10)})),
			boxTypeID:     "a",
			sku:           "WH-001",
			raw:           "-5",
			expectedUnits: model.CountOf(10),
			expectedErr:   ErrInputRejected,
		},
		{
			name:          "sku outside the shipment is rejected",
			session:       fixedSession(boxType("a", model.CountOf(1), map[string]model.Count{"WH-001": model.CountOf(10)})),
			boxTypeID:     "a",
			sku:           "ZZ-999",
			raw:           "1",
			expectedErr:   ErrUnknownSKU,
			expectedUnits: model.EmptyCount(),
		},
		{
			name:          "sku already on the box type is editable without clamping",
			session:       fixedSession(boxType("a", model.CountOf(1), map[string]model.Count{"LEGACY": model.CountOf(3)})),
			boxTypeID:     "a",
			sku:           "LEGACY",
			raw:           "1000",
			expectedUnits: model.CountOf(1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, adj, err := SetUnitsPerProduct(tt.session, tt.boxTypeID, tt.sku, tt.raw)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedAdj, adj)
			idx := next.BoxTypeIndex(tt.boxTypeID)
			assert.Equal(t, tt.expectedUnits, next.BoxTypes[idx].UnitsPerProduct[tt.sku])
		})
	}
}

func TestAdjustment_Message(t *testing.T) {
	adj := Adjustment{SKU: "WH-001", Applied: 100}
	assert.Equal(t, "Adjusted units for WH-001 to 100 per box to not exceed total shipment quantity.", adj.Message())
}

func TestSetDimensionAndWeight(t *testing.T) {
	s := fixedSession(boxType("a", model.CountOf(1), nil))

	next, err := SetDimension(s, "a", DimensionLength, "30.5")
	require.NoError(t, err)
	assert.Equal(t, model.MeasureOf(30.5), next.BoxTypes[0].Dimensions.Length)

	next, err = SetDimension(next, "a", DimensionWidth, "")
	require.NoError(t, err)
	assert.True(t, next.BoxTypes[0].Dimensions.Width.IsEmpty())

	next, err = SetDimension(next, "a", DimensionHeight, "tall")
	assert.ErrorIs(t, err, ErrInputRejected)
	assert.Equal(t, model.MeasureOf(10), next.BoxTypes[0].Dimensions.Height)

	_, err = SetDimension(next, "a", DimensionField("depth"), "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	next, err = SetWeight(next, "a", "7.25")
	require.NoError(t, err)
	assert.Equal(t, model.MeasureOf(7.25), next.BoxTypes[0].WeightPerBox)

	_, err = SetWeight(next, "a", "NaN")
	assert.ErrorIs(t, err, ErrInputRejected)

	_, err = SetWeight(next, "missing", "1")
	assert.ErrorIs(t, err, ErrBoxTypeNotFound)
}

func TestSetUnits(t *testing.T) {
	s := fixedSession(boxType("a", model.CountOf(1), nil))

	next, err := SetDimensionUnit(s, "a", "cm")
	require.NoError(t, err)
	assert.Equal(t, model.DimensionUnitCentimeter, next.BoxTypes[0].Dimensions.Unit)

	_, err = SetDimensionUnit(s, "a", "ft")
	assert.ErrorIs(t, err, ErrInputRejected)

	next, err = SetWeightUnit(s, "a", "oz")
	require.NoError(t, err)
	assert.Equal(t, model.WeightUnitOunce, next.BoxTypes[0].WeightUnit)

	_, err = SetWeightUnit(s, "a", "stone")
	assert.ErrorIs(t, err, ErrInputRejected)
}

func TestSetPlannedTotalBoxes(t *testing.T) {
	s := fixedSession(boxType("a", model.CountOf(1), nil))

	next, err := SetPlannedTotalBoxes(s, "12")
	require.NoError(t, err)
	assert.Equal(t, model.CountOf(12), next.PlannedTotalBoxes)

	next, err = SetPlannedTotalBoxes(next, "-3")
	assert.ErrorIs(t, err, ErrInputRejected)
	assert.Equal(t, model.CountOf(12), next.PlannedTotalBoxes)

	next, err = SetPlannedTotalBoxes(next, "")
	require.NoError(t, err)
	assert.True(t, next.PlannedTotalBoxes.IsEmpty())
}
