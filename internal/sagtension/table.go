package sagtension

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gosag/internal/transmissionline"
)

// SagTensionRow is the reloaded state of the ruling span at one weathercase
// and condition
type SagTensionRow struct {
	Weathercase *transmissionline.WeatherLoadCase
	Condition   transmissionline.CableConditionType

	TensionHorizontal   float64 // lb
	TensionAverage      float64 // lb
	TensionAverageCore  float64 // lb
	TensionAverageShell float64 // lb
	TensionMax          float64 // lb
	Sag                 float64 // ft
	SwingAngle          float64 // radians
	Length              float64 // ft
	PercentStrength     float64 // max tension over rated strength, %
}

// SagTensionTable reloads a line cable at a list of weathercases for every
// condition
type SagTensionTable struct {
	LineCable    *transmissionline.LineCable
	Weathercases []*transmissionline.WeatherLoadCase
	Conditions   []transmissionline.CableConditionType

	logger *zap.Logger
}

// NewSagTensionTable creates a table covering all conditions
func NewSagTensionTable(lineCable *transmissionline.LineCable, weathercases []*transmissionline.WeatherLoadCase) *SagTensionTable {
	return &SagTensionTable{
		LineCable:    lineCable,
		Weathercases: weathercases,
		Conditions:   transmissionline.Conditions,
		logger:       zap.NewNop(),
	}
}

// SetLogger sets the logger handed to each row's reloader
func (t *SagTensionTable) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t.logger = logger
}

// Rows solves every weathercase and condition, weathercase-major
func (t *SagTensionTable) Rows() ([]SagTensionRow, error) {
	rows := make([]SagTensionRow, 0, len(t.Weathercases)*len(t.Conditions))
	for _, weathercase := range t.Weathercases {
		for _, condition := range t.Conditions {
			row, err := t.row(weathercase, condition)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", weathercase.Description, condition, err)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (t *SagTensionTable) row(weathercase *transmissionline.WeatherLoadCase, condition transmissionline.CableConditionType) (SagTensionRow, error) {
	reloader := NewLineCableReloader(t.LineCable, weathercase, condition)
	reloader.SetLogger(t.logger)

	cat, err := reloader.CatenaryReloaded()
	if err != nil {
		return SagTensionRow{}, err
	}
	model, err := reloader.ModelReloaded()
	if err != nil {
		return SagTensionRow{}, err
	}

	row := SagTensionRow{
		Weathercase:       weathercase,
		Condition:         condition,
		TensionHorizontal: cat.TensionHorizontal,
		TensionAverage:    cat.TensionAverage(),
		TensionMax:        cat.TensionMax(),
		Sag:               cat.Sag(),
		SwingAngle:        cat.SwingAngle(),
		Length:            cat.Length(),
	}

	strain, err := model.Strain(ComponentCombined, row.TensionAverage)
	if err != nil {
		return SagTensionRow{}, err
	}
	row.TensionAverageCore = model.Load(ComponentCore, strain)
	row.TensionAverageShell = model.Load(ComponentShell, strain)

	if strength := t.LineCable.Cable.StrengthRated; 0 < strength {
		row.PercentStrength = row.TensionMax / strength * 100
	}

	return row, nil
}
