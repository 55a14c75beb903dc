package diagram

import (
	"sort"

	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
)

// conditionsOf returns the conditions present in the rows, in first-seen
// order
func conditionsOf(rows []sagtension.SagTensionRow) []transmissionline.CableConditionType {
	var conditions []transmissionline.CableConditionType
	seen := map[transmissionline.CableConditionType]bool{}
	for _, row := range rows {
		if !seen[row.Condition] {
			seen[row.Condition] = true
			conditions = append(conditions, row.Condition)
		}
	}
	return conditions
}

// stillAir returns the rows of a condition with no ice or wind, sorted by
// temperature
func stillAir(rows []sagtension.SagTensionRow, condition transmissionline.CableConditionType) []sagtension.SagTensionRow {
	var selected []sagtension.SagTensionRow
	for _, row := range rows {
		weathercase := row.Weathercase
		if row.Condition != condition || weathercase.ThicknessIce != 0 || weathercase.PressureWind != 0 {
			continue
		}
		selected = append(selected, row)
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Weathercase.TemperatureCable < selected[j].Weathercase.TemperatureCable
	})
	return selected
}
