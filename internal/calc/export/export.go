// Package export converts calculation results to and from the exchange
// format: {bmi, category, timestamp, additionalInfo: {fatIndex, muscleIndex}}.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"Metrica/internal/calc/bmi"
)

// ErrSerialization is returned for malformed exchange data and unsupported
// formats.
var ErrSerialization = errors.New("serialization error")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type AdditionalInfo struct {
	FatIndex    float64 `json:"fatIndex" yaml:"fatIndex"`
	MuscleIndex float64 `json:"muscleIndex" yaml:"muscleIndex"`
}

type Record struct {
	BMI            float64        `json:"bmi" yaml:"bmi"`
	Category       bmi.Category   `json:"category" yaml:"category"`
	Timestamp      time.Time      `json:"timestamp" yaml:"timestamp"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo" yaml:"additionalInfo"`
}

// FromResult builds a Record stamped with now in UTC.
func FromResult(res bmi.Result, now time.Time) Record {
	return Record{
		BMI:       res.BMI,
		Category:  res.Category,
		Timestamp: now.UTC(),
		AdditionalInfo: AdditionalInfo{
			FatIndex:    res.Measurement.FatIndex,
			MuscleIndex: res.Measurement.MuscleIndex,
		},
	}
}

// ParseFormat accepts "json", "yaml" and "yml". Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", ErrSerialization, s)
}

// ContentType is the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func Encode(rec Record, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatJSON:
		out, err = json.Marshal(rec)
	case FormatYAML:
		out, err = yaml.Marshal(rec)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrSerialization, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return out, nil
}

// Decode parses data and checks that the record carries a known category.
// data must hold exactly one JSON value or one YAML document.
func Decode(data []byte, f Format) (Record, error) {
	var rec Record
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err = dec.Decode(&rec); err == nil {
			if _, next := dec.Token(); next != io.EOF {
				err = errors.New("trailing data after record")
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err = dec.Decode(&rec); err == nil {
			var extra yaml.Node
			if next := dec.Decode(&extra); next != io.EOF {
				err = errors.New("more than one document")
			}
		}
	default:
		return Record{}, fmt.Errorf("%w: unsupported format %q", ErrSerialization, f)
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if !rec.Category.Valid() {
		return Record{}, fmt.Errorf("%w: missing category", ErrSerialization)
	}
	return rec, nil
}
