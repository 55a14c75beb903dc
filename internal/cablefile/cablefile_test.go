package cablefile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gosag/internal/factory"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
)

func sampleDefinition() *Definition {
	return FromLineCable(factory.BuildLineCable(), factory.BuildWeathercasesTable())
}

// TestRoundTrip saves and loads the sample in both formats
func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"line.json", "line.yaml", "line.yml"} {
		path := filepath.Join(t.TempDir(), name)
		want := sampleDefinition()

		if err := Save(path, want); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: round trip mismatch\nexpected %+v\ngot      %+v", name, want, got)
		}
	}
}

// TestLineCable converts the definition back into the model
func TestLineCable(t *testing.T) {
	def := sampleDefinition()

	lineCable, err := def.LineCable()
	if err != nil {
		t.Fatalf("line cable: %v", err)
	}
	want := factory.BuildLineCable()

	if !reflect.DeepEqual(lineCable.Cable, want.Cable) {
		t.Errorf("cable mismatch: %+v", lineCable.Cable)
	}
	if lineCable.Constraint.Condition != transmissionline.ConditionInitial || lineCable.Constraint.Limit != 6000 {
		t.Errorf("constraint mismatch: %+v", lineCable.Constraint)
	}
	if !reflect.DeepEqual(lineCable.WeathercaseStretchLoad, want.WeathercaseStretchLoad) {
		t.Errorf("load stretch weathercase mismatch: %+v", lineCable.WeathercaseStretchLoad)
	}
	if got := len(def.WeatherLoadCases()); got != len(factory.BuildWeathercasesTable()) {
		t.Errorf("expected %d weathercases, got %d", len(factory.BuildWeathercasesTable()), got)
	}
}

// TestLoadInvalid reports every problem in one error
func TestLoadInvalid(t *testing.T) {
	def := sampleDefinition()
	def.Cable.Diameter = 0
	def.SpacingRulingSpan.X = 0

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := Save(path, def); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := Load(path)
	var invalid *validation.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if len(invalid.Fields) != 2 {
		t.Errorf("expected 2 fields, got %v", invalid.Fields)
	}
}

// TestLoadUnknownCondition rejects an unknown constraint condition
func TestLoadUnknownCondition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.json")
	data := []byte(`{"constraint": {"condition": "stretched", "limit": 6000}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown condition")
	}
}

// TestFormat checks extension and name parsing
func TestFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.YAML", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.toml", "", true},
	}

	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatForPath(%q): expected %q (error %v), got %q (%v)", tt.path, tt.want, tt.wantErr, got, err)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml format")
	}
	if got, _ := ParseFormat("YML"); got != FormatYAML {
		t.Errorf("ParseFormat(YML): expected yaml, got %q", got)
	}
}
