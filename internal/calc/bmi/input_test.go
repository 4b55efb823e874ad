package bmi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalJSON(t *testing.T) {
	var in Input
	body := `{"weight": 70.5, "height": "175", "fatIndex": null, "muscleIndex": "abc", "gender": "female"}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	w, ok := in.Weight.Float()
	require.True(t, ok)
	require.Equal(t, 70.5, w)

	h, ok := in.Height.Float()
	require.True(t, ok)
	require.Equal(t, 175.0, h)

	_, ok = in.FatIndex.Float()
	require.False(t, ok)
	_, ok = in.MuscleIndex.Float()
	require.False(t, ok)
	_, ok = in.Age.Float()
	require.False(t, ok)
	require.Equal(t, Field("female"), in.Gender)
}

func TestField_RejectsNonScalars(t *testing.T) {
	var in Input
	require.NoError(t, json.Unmarshal([]byte(`{"weight": [70], "height": {"cm": 1}}`), &in))
	_, err := Validate(in)
	require.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestField_Float(t *testing.T) {
	cases := []struct {
		in   Field
		want float64
		ok   bool
	}{
		{"70", 70, true},
		{" 70.25 ", 70.25, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"Inf", 0, false},
		{"70kg", 0, false},
		{"0x46p0", 0, false},
		{"0X46P0", 0, false},
		{"7_0", 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.in.Float()
		require.Equal(t, tc.ok, ok, "%q", tc.in)
		require.Equal(t, tc.want, got, "%q", tc.in)
	}
}

func TestValidate_RejectsHexWeight(t *testing.T) {
	_, err := Validate(Input{Weight: "0x46p0", Height: "175"})
	require.ErrorIs(t, err, ErrInvalidMeasurement)

	m, err := Validate(Input{Weight: "70", Height: "175", FatIndex: "0x1p4"})
	require.NoError(t, err)
	require.Equal(t, 0.0, m.FatIndex)
}

func TestNum(t *testing.T) {
	require.Equal(t, Field("22.5"), Num(22.5))
	v, ok := Num(0.1).Float()
	require.True(t, ok)
	require.Equal(t, 0.1, v)
}
