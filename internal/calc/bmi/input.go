package bmi

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Field is a raw request value. JSON numbers and strings are both accepted,
// null or absent leaves it empty.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	*f = Field(b)
	return nil
}

// Num formats v as a Field.
func Num(v float64) Field {
	return Field(strconv.FormatFloat(v, 'g', -1, 64))
}

// Float parses the field as a decimal number. ok is false for empty,
// non-numeric and non-finite values. Hex floats and underscore digit
// separators are not numbers here.
func (f Field) Float() (v float64, ok bool) {
	s := strings.TrimSpace(string(f))
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Input is the measurement field set as submitted by a client.
type Input struct {
	Weight      Field `json:"weight"`
	Height      Field `json:"height"`
	FatIndex    Field `json:"fatIndex"`
	MuscleIndex Field `json:"muscleIndex"`
	Gender      Field `json:"gender"`
	Age         Field `json:"age"`
}

// DecodeInput reads an Input from a JSON or url-encoded form body.
func DecodeInput(r *http.Request, dst *Input) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return err
		}
		*dst = Input{
			Weight:      Field(r.PostForm.Get("weight")),
			Height:      Field(r.PostForm.Get("height")),
			FatIndex:    Field(r.PostForm.Get("fatIndex")),
			MuscleIndex: Field(r.PostForm.Get("muscleIndex")),
			Gender:      Field(r.PostForm.Get("gender")),
			Age:         Field(r.PostForm.Get("age")),
		}
		return nil
	}
	return json.NewDecoder(r.Body).Decode(dst)
}
