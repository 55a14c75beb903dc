// Package cablefile reads and writes line cable definition files. Files are
// JSON or YAML, chosen by extension, with values in feet, pounds and
// degrees Fahrenheit.
package cablefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// Format is a definition file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
}

// ParseFormat parses "json" or "yaml"
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Weathercase is the file form of a weather load case
type Weathercase struct {
	Description      string  `json:"description" yaml:"description"`
	ThicknessIce     float64 `json:"thickness_ice" yaml:"thickness_ice"`
	DensityIce       float64 `json:"density_ice" yaml:"density_ice"`
	PressureWind     float64 `json:"pressure_wind" yaml:"pressure_wind"`
	TemperatureCable float64 `json:"temperature_cable" yaml:"temperature_cable"`
}

// Component is the file form of a cable component
type Component struct {
	CoefficientExpansionLinearThermal float64   `json:"coefficient_expansion_linear_thermal" yaml:"coefficient_expansion_linear_thermal"`
	CoefficientsPolynomialCreep       []float64 `json:"coefficients_polynomial_creep" yaml:"coefficients_polynomial_creep"`
	CoefficientsPolynomialLoadStrain  []float64 `json:"coefficients_polynomial_loadstrain" yaml:"coefficients_polynomial_loadstrain"`
	LoadLimitPolynomialCreep          float64   `json:"load_limit_polynomial_creep" yaml:"load_limit_polynomial_creep"`
	LoadLimitPolynomialLoadStrain     float64   `json:"load_limit_polynomial_loadstrain" yaml:"load_limit_polynomial_loadstrain"`
	ModulusCompressionElasticArea     float64   `json:"modulus_compression_elastic_area" yaml:"modulus_compression_elastic_area"`
	ModulusTensionElasticArea         float64   `json:"modulus_tension_elastic_area" yaml:"modulus_tension_elastic_area"`
	ScalePolynomialX                  float64   `json:"scale_polynomial_x" yaml:"scale_polynomial_x"`
	ScalePolynomialY                  float64   `json:"scale_polynomial_y" yaml:"scale_polynomial_y"`
}

// Cable is the file form of a cable
type Cable struct {
	Name                            string    `json:"name" yaml:"name"`
	Diameter                        float64   `json:"diameter" yaml:"diameter"`
	WeightUnit                      float64   `json:"weight_unit" yaml:"weight_unit"`
	StrengthRated                   float64   `json:"strength_rated" yaml:"strength_rated"`
	TemperaturePropertiesComponents float64   `json:"temperature_properties_components" yaml:"temperature_properties_components"`
	ComponentCore                   Component `json:"component_core" yaml:"component_core"`
	ComponentShell                  Component `json:"component_shell" yaml:"component_shell"`
}

// Constraint is the file form of a cable constraint
type Constraint struct {
	Weathercase Weathercase `json:"weathercase" yaml:"weathercase"`
	Condition   string      `json:"condition" yaml:"condition"`
	Limit       float64     `json:"limit" yaml:"limit"`
	Note        string      `json:"note,omitempty" yaml:"note,omitempty"`
}

// Definition is a complete line cable file
type Definition struct {
	Cable                   Cable           `json:"cable" yaml:"cable"`
	Constraint              Constraint      `json:"constraint" yaml:"constraint"`
	SpacingRulingSpan       vector.Vector3d `json:"spacing_ruling_span" yaml:"spacing_ruling_span"`
	WeathercaseStretchCreep *Weathercase    `json:"weathercase_stretch_creep,omitempty" yaml:"weathercase_stretch_creep,omitempty"`
	WeathercaseStretchLoad  *Weathercase    `json:"weathercase_stretch_load,omitempty" yaml:"weathercase_stretch_load,omitempty"`

	// reporting weathercases for the sag-tension table
	Weathercases []Weathercase `json:"weathercases,omitempty" yaml:"weathercases,omitempty"`
}

// Load reads and validates a definition file
func Load(path string) (*Definition, error) {
	def, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Read decodes a definition file without validating it
func Read(path string) (*Definition, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Save writes a definition file in the format of its extension
func Save(path string, def *Definition) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(def, format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes a definition
func Marshal(def *Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(def, "", "  ")
	case FormatYAML:
		return yaml.Marshal(def)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Unmarshal decodes a definition
func Unmarshal(data []byte, format Format) (*Definition, error) {
	var def Definition

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &def)
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate builds the line cable and reports every error as one
// InvalidInputError
func (d *Definition) Validate() error {
	lineCable, err := d.LineCable()
	if err != nil {
		return err
	}

	messages := &validation.Messages{}
	valid := lineCable.Validate(false, messages)
	for i := range d.Weathercases {
		if !d.Weathercases[i].toWeatherLoadCase().Validate(false, messages) {
			valid = false
		}
	}
	if valid {
		return nil
	}

	fields := make([]string, 0, messages.Len())
	for _, message := range messages.Items() {
		fields = append(fields, message.String())
	}
	return &validation.InvalidInputError{Object: "line cable file", Fields: fields}
}

// LineCable converts the definition into a line cable. The result owns
// its own cable and weathercases.
func (d *Definition) LineCable() (*transmissionline.LineCable, error) {
	condition, err := transmissionline.ParseCableConditionType(d.Constraint.Condition)
	if err != nil {
		return nil, fmt.Errorf("constraint: %w", err)
	}

	lineCable := &transmissionline.LineCable{
		Cable: d.Cable.toCable(),
		Constraint: transmissionline.CableConstraint{
			CaseWeather: d.Constraint.Weathercase.toWeatherLoadCase(),
			Condition:   condition,
			Limit:       d.Constraint.Limit,
			Note:        d.Constraint.Note,
		},
		SpacingAttachmentsRulingSpan: d.SpacingRulingSpan,
	}
	if d.WeathercaseStretchCreep != nil {
		lineCable.WeathercaseStretchCreep = d.WeathercaseStretchCreep.toWeatherLoadCase()
	}
	if d.WeathercaseStretchLoad != nil {
		lineCable.WeathercaseStretchLoad = d.WeathercaseStretchLoad.toWeatherLoadCase()
	}

	return lineCable, nil
}

// WeatherLoadCases converts the reporting weathercases
func (d *Definition) WeatherLoadCases() []*transmissionline.WeatherLoadCase {
	weathercases := make([]*transmissionline.WeatherLoadCase, len(d.Weathercases))
	for i := range d.Weathercases {
		weathercases[i] = d.Weathercases[i].toWeatherLoadCase()
	}
	return weathercases
}

// FromLineCable builds a definition from a line cable and its reporting
// weathercases
func FromLineCable(lineCable *transmissionline.LineCable, weathercases []*transmissionline.WeatherLoadCase) *Definition {
	def := &Definition{
		Cable: fromCable(lineCable.Cable),
		Constraint: Constraint{
			Weathercase: fromWeatherLoadCase(lineCable.Constraint.CaseWeather),
			Condition:   strings.ToLower(lineCable.Constraint.Condition.String()),
			Limit:       lineCable.Constraint.Limit,
			Note:        lineCable.Constraint.Note,
		},
		SpacingRulingSpan: lineCable.SpacingAttachmentsRulingSpan,
	}
	if lineCable.WeathercaseStretchCreep != nil {
		weathercase := fromWeatherLoadCase(lineCable.WeathercaseStretchCreep)
		def.WeathercaseStretchCreep = &weathercase
	}
	if lineCable.WeathercaseStretchLoad != nil {
		weathercase := fromWeatherLoadCase(lineCable.WeathercaseStretchLoad)
		def.WeathercaseStretchLoad = &weathercase
	}
	for _, weathercase := range weathercases {
		def.Weathercases = append(def.Weathercases, fromWeatherLoadCase(weathercase))
	}
	return def
}

func (w Weathercase) toWeatherLoadCase() *transmissionline.WeatherLoadCase {
	return &transmissionline.WeatherLoadCase{
		Description:      w.Description,
		ThicknessIce:     w.ThicknessIce,
		DensityIce:       w.DensityIce,
		PressureWind:     w.PressureWind,
		TemperatureCable: w.TemperatureCable,
	}
}

func fromWeatherLoadCase(w *transmissionline.WeatherLoadCase) Weathercase {
	if w == nil {
		return Weathercase{}
	}
	return Weathercase{
		Description:      w.Description,
		ThicknessIce:     w.ThicknessIce,
		DensityIce:       w.DensityIce,
		PressureWind:     w.PressureWind,
		TemperatureCable: w.TemperatureCable,
	}
}

func (c Component) toCableComponent() transmissionline.CableComponent {
	return transmissionline.CableComponent{
		CoefficientExpansionLinearThermal: c.CoefficientExpansionLinearThermal,
		CoefficientsPolynomialCreep:       c.CoefficientsPolynomialCreep,
		CoefficientsPolynomialLoadStrain:  c.CoefficientsPolynomialLoadStrain,
		LoadLimitPolynomialCreep:          c.LoadLimitPolynomialCreep,
		LoadLimitPolynomialLoadStrain:     c.LoadLimitPolynomialLoadStrain,
		ModulusCompressionElasticArea:     c.ModulusCompressionElasticArea,
		ModulusTensionElasticArea:         c.ModulusTensionElasticArea,
		ScalePolynomialX:                  c.ScalePolynomialX,
		ScalePolynomialY:                  c.ScalePolynomialY,
	}
}

func fromCableComponent(c transmissionline.CableComponent) Component {
	return Component{
		CoefficientExpansionLinearThermal: c.CoefficientExpansionLinearThermal,
		CoefficientsPolynomialCreep:       c.CoefficientsPolynomialCreep,
		CoefficientsPolynomialLoadStrain:  c.CoefficientsPolynomialLoadStrain,
		LoadLimitPolynomialCreep:          c.LoadLimitPolynomialCreep,
		LoadLimitPolynomialLoadStrain:     c.LoadLimitPolynomialLoadStrain,
		ModulusCompressionElasticArea:     c.ModulusCompressionElasticArea,
		ModulusTensionElasticArea:         c.ModulusTensionElasticArea,
		ScalePolynomialX:                  c.ScalePolynomialX,
		ScalePolynomialY:                  c.ScalePolynomialY,
	}
}

func (c Cable) toCable() *transmissionline.Cable {
	return &transmissionline.Cable{
		Name:                            c.Name,
		Diameter:                        c.Diameter,
		WeightUnit:                      c.WeightUnit,
		StrengthRated:                   c.StrengthRated,
		TemperaturePropertiesComponents: c.TemperaturePropertiesComponents,
		ComponentCore:                   c.ComponentCore.toCableComponent(),
		ComponentShell:                  c.ComponentShell.toCableComponent(),
	}
}

func fromCable(c *transmissionline.Cable) Cable {
	if c == nil {
		return Cable{}
	}
	return Cable{
		Name:                            c.Name,
		Diameter:                        c.Diameter,
		WeightUnit:                      c.WeightUnit,
		StrengthRated:                   c.StrengthRated,
		TemperaturePropertiesComponents: c.TemperaturePropertiesComponents,
		ComponentCore:                   fromCableComponent(c.ComponentCore),
		ComponentShell:                  fromCableComponent(c.ComponentShell),
	}
}
