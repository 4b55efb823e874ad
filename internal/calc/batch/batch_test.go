package batch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"Metrica/internal/calc/bmi"
)

func TestCalculate_PartialFailure(t *testing.T) {
	res, err := Calculate([]bmi.Input{
		{Weight: "70", Height: "175"},
		{Weight: "0", Height: "175"},
		{Weight: "70", Height: "301"},
		{Weight: "110", Height: "170"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Equal(t, 2, res.Failed)
	require.Len(t, res.Results, 4)

	require.NotNil(t, res.Results[0].Result)
	require.Equal(t, bmi.NormalWeight, res.Results[0].Result.Category)
	require.Nil(t, res.Results[1].Result)
	require.Contains(t, res.Results[1].Error, "invalid measurement")
	require.Contains(t, res.Results[2].Error, "implausible height")
	require.Equal(t, 3, res.Results[3].Index)
	require.Equal(t, bmi.Obese, res.Results[3].Result.Category)
}

func TestCalculate_Limits(t *testing.T) {
	_, err := Calculate(nil)
	require.ErrorIs(t, err, ErrEmptyBatch)

	_, err = Calculate(make([]bmi.Input, MaxItems+1))
	require.Error(t, err)
}

func TestHandler_Calc(t *testing.T) {
	body := `{"items": [{"weight": 50, "height": 170}, {"weight": "x", "height": 170}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/bmi/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, bmi.Underweight, res.Results[0].Result.Category)

	req = httptest.NewRequest(http.MethodPost, "/api/bmi/batch", strings.NewReader(`{"items": []}`))
	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
