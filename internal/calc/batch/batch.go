package batch

import (
	"errors"
	"fmt"

	"Metrica/internal/calc/bmi"
)

// MaxItems caps the size of a single batch.
const MaxItems = 1000

var ErrEmptyBatch = errors.New("no items")

type Input struct {
	Items []bmi.Input `json:"items"`
}

// Item is the outcome of one measurement. Exactly one of Result and Error
// is set.
type Item struct {
	Index  int         `json:"index"`
	Result *bmi.Result `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type Result struct {
	Count   int    `json:"count"`
	Failed  int    `json:"failed"`
	Results []Item `json:"results"`
}

// Calculate evaluates every item. A failing item is reported in place and
// does not stop the rest.
func Calculate(items []bmi.Input) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrEmptyBatch
	}
	if len(items) > MaxItems {
		return Result{}, fmt.Errorf("batch of %d items exceeds limit of %d", len(items), MaxItems)
	}
	out := Result{Results: make([]Item, 0, len(items))}
	for i, in := range items {
		item := Item{Index: i}
		res, err := bmi.Calculate(in)
		if err != nil {
			item.Error = err.Error()
			out.Failed++
		} else {
			item.Result = &res
			out.Count++
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}
