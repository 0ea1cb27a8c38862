package parser

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

type addressFixture struct {
	Address string `yaml:"address"`
	Want    string `yaml:"want"`
	Comment string `yaml:"comment"`
}

func TestParseFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/addresses.yaml")
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}

	var fixtures []addressFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("unmarshaling fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures loaded")
	}

	for _, fx := range fixtures {
		t.Run(fx.Comment, func(t *testing.T) {
			got := Parse(fx.Address).Diagnoses.Worst().Kind
			if string(got) != fx.Want {
				t.Errorf("Parse(%q) worst = %s, want %s (%s)", fx.Address, got, fx.Want, fx.Comment)
			}
		})
	}
}
