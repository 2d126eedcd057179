package demo

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

//go:embed dataset.json
var embeddedDataset []byte

// Dataset is the bundled substitute used when live race data cannot be obtained.
// Results and Stints always travel together.
type Dataset struct {
	Races   []races.Race                 `json:"races"`
	Results races.ResultSet              `json:"results"`
	Stints  []races.TyreStint            `json:"stints"`
	Teams   []teams.Team                 `json:"teams"`
	Careers map[string]teams.CareerStats `json:"careers"`
	Specs   specs.Specs                  `json:"specs"`
}

// Default returns a fresh copy of the embedded dataset.
func Default() Dataset {
	ds, err := parse(embeddedDataset)
	if err != nil {
		panic(fmt.Sprintf("demo: embedded dataset is invalid: %v", err))
	}
	return ds
}

// Load reads a dataset from path, or returns the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read demo dataset: %w", err)
	}
	ds, err := parse(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse demo dataset %s: %w", path, err)
	}
	return ds, nil
}

func parse(raw []byte) (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, err
	}
	if err := ds.validate(); err != nil {
		return Dataset{}, err
	}
	for i := range ds.Stints {
		ds.Stints[i].Compound = races.NormalizeCompound(string(ds.Stints[i].Compound))
	}
	return ds, nil
}

func (d Dataset) validate() error {
	if len(d.Results.Results) == 0 {
		return errors.New("results must not be empty")
	}
	if d.Stints == nil {
		return errors.New("stints are required")
	}
	return nil
}

// RaceData returns independent copies of the demo results and stints.
func (d Dataset) RaceData() (races.ResultSet, []races.TyreStint) {
	results := races.ResultSet{
		Race:    d.Results.Race,
		Results: append([]races.ResultEntry(nil), d.Results.Results...),
	}
	stints := append(make([]races.TyreStint, 0, len(d.Stints)), d.Stints...)
	return results, stints
}
