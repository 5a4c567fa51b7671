package services

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sample_periods.yaml
var samplePeriodsYAML []byte

func SamplePeriodEntryInputs() ([]PeriodEntryInput, error) {
	return DecodePeriodEntryInputs(bytes.NewReader(samplePeriodsYAML))
}

// DecodePeriodEntryInputs reads a YAML (or JSON) list of entries.
func DecodePeriodEntryInputs(reader io.Reader) ([]PeriodEntryInput, error) {
	inputs := make([]PeriodEntryInput, 0)
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&inputs); err != nil {
		if errors.Is(err, io.EOF) {
			return inputs, nil
		}
		return nil, fmt.Errorf("decode period entries: %w", err)
	}
	return inputs, nil
}

func LoadPeriodEntryInputsFile(path string) ([]PeriodEntryInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entries file: %w", err)
	}
	defer file.Close()
	return DecodePeriodEntryInputs(file)
}
