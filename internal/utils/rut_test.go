package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "eight digit body", body: "12345678", want: "5"},
		{name: "seven digit body", body: "7654321", want: "6"},
		{name: "remainder zero maps to 0", body: "1000013", want: "0"},
		{name: "remainder one maps to K", body: "1000005", want: "K"},
		{name: "repeated ones", body: "11111111", want: "1"},
		{name: "all nines", body: "9999999", want: "3"},
		{name: "round body", body: "20000000", want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateCheckDigit(tt.body))
		})
	}
}

func TestFormatRUT(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "123456785", want: "12.345.678-5"},
		{input: "12.345.678-5", want: "12.345.678-5"},
		{input: "12 345 678 5", want: "12.345.678-5"},
		{input: "76543216", want: "7.654.321-6"},
		{input: "10000058k", want: "10.000.058-K"},
		{input: "1234", want: "123-4"},
		{input: "12", want: "1-2"},
		{input: "5", want: "5"},
		{input: "k", want: "k"},
		{input: "", want: ""},
		{input: "--..", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRUT(tt.input))
		})
	}
}

func TestFormatRUTIsIdempotent(t *testing.T) {
	inputs := []string{"123456785", "7.654.321-6", "12a3-5", "1000005k", "abc12", "99"}

	for _, input := range inputs {
		once := FormatRUT(input)
		assert.Equal(t, once, FormatRUT(once), "input %q", input)
	}
}

func TestValidateRUT(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		message   string
		formatted string
	}{
		{name: "valid formatted", input: "12.345.678-5", valid: true, message: MsgRUTValid, formatted: "12.345.678-5"},
		{name: "valid compact", input: "123456785", valid: true, message: MsgRUTValid, formatted: "12.345.678-5"},
		{name: "valid seven digit", input: "7.654.321-6", valid: true, message: MsgRUTValid, formatted: "7.654.321-6"},
		{name: "valid K lowercase", input: "1.000.005-k", valid: true, message: MsgRUTValid, formatted: "1.000.005-K"},
		{name: "valid zero check digit", input: "1000013-0", valid: true, message: MsgRUTValid, formatted: "1.000.013-0"},
		{name: "too short", input: "5", message: MsgRUTTooShort, formatted: "5"},
		{name: "empty", input: "", message: MsgRUTTooShort, formatted: ""},
		{name: "only punctuation", input: ".-", message: MsgRUTTooShort, formatted: ""},
		{name: "K inside body", input: "12k3456-5", message: MsgRUTBodyNotNumeric, formatted: "1.2k3.456-5"},
		{name: "six digit body", input: "123456-0", message: MsgRUTBodyLength, formatted: "123.456-0"},
		{name: "nine digit body", input: "123456789-0", message: MsgRUTBodyLength, formatted: "123.456.789-0"},
		{name: "wrong check digit", input: "12.345.678-9", message: MsgRUTInvalidDigit, formatted: "12.345.678-9"},
		{name: "K where digit expected", input: "12.345.678-K", message: MsgRUTInvalidDigit, formatted: "12.345.678-K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRUT(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, tt.formatted, got.Formatted)
		})
	}
}

func TestValidateRUTStripsLettersOtherThanK(t *testing.T) {
	// "12a3-5" strips to "1235": the body is numeric but only three digits long
	got := ValidateRUT("12a3-5")
	assert.False(t, got.Valid)
	assert.Equal(t, MsgRUTBodyLength, got.Message)

	got = ValidateRUT("1234k678-5")
	assert.False(t, got.Valid)
	assert.Equal(t, MsgRUTBodyNotNumeric, got.Message)
}

func TestValidateRUTSevenDigitBodyOnlyAcceptsItsCheckDigit(t *testing.T) {
	candidates := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "K"}

	for _, candidate := range candidates {
		got := ValidateRUT("7654321-" + candidate)
		if candidate == "6" {
			assert.True(t, got.Valid, "check digit %s", candidate)
			continue
		}
		assert.False(t, got.Valid, "check digit %s", candidate)
		assert.Equal(t, MsgRUTInvalidDigit, got.Message)
	}
}

func TestValidateRUTIsDeterministic(t *testing.T) {
	for _, input := range []string{"12.345.678-5", "12345678-k", "5", "12a3-5", ""} {
		assert.Equal(t, ValidateRUT(input), ValidateRUT(input))
	}
}

func TestValidateRUTCaseInsensitiveCheckDigit(t *testing.T) {
	assert.Equal(t, ValidateRUT("12345678-k").Valid, ValidateRUT("12345678-K").Valid)
	assert.Equal(t, ValidateRUT("1000005-k"), ValidateRUT("1000005-K"))
}

func TestValidateRUTPunctuationTolerance(t *testing.T) {
	inputs := []string{"12.345.678-5", "12345678-5", "12 345 678 5"}

	want := ValidateRUT(inputs[0])
	require.True(t, want.Valid)

	for _, input := range inputs {
		assert.Equal(t, "12345678", ExtractRUTBody(input))
		assert.Equal(t, "5", ExtractRUTCheckDigit(input))
		assert.Equal(t, want, ValidateRUT(input))
	}
}

func TestExtractHelpers(t *testing.T) {
	assert.Equal(t, "1000005", ExtractRUTBody("1.000.005-k"))
	assert.Equal(t, "K", ExtractRUTCheckDigit("1.000.005-k"))
	assert.Equal(t, "", ExtractRUTBody("5"))
	assert.Equal(t, "5", ExtractRUTCheckDigit("5"))
	assert.Equal(t, "", ExtractRUTBody(""))
	assert.Equal(t, "", ExtractRUTCheckDigit("-"))
}

func TestGenerateRUT(t *testing.T) {
	rut, err := GenerateRUT(12345678)
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", rut)

	for _, body := range []int{MinRUTBody, 1000005, 7654321, 55555555, MaxRUTBody} {
		rut, err := GenerateRUT(body)
		require.NoError(t, err)
		assert.True(t, IsValidRUT(rut), "generated %s for %d", rut, body)
		assert.Equal(t, strconv.Itoa(body), ExtractRUTBody(rut))
	}

	_, err = GenerateRUT(MinRUTBody - 1)
	assert.Error(t, err)
	_, err = GenerateRUT(MaxRUTBody + 1)
	assert.Error(t, err)
}

func TestAnalyzeRUT(t *testing.T) {
	info := AnalyzeRUT("1.000.005-k")

	assert.Equal(t, RUTInfo{
		Original:   "1.000.005-k",
		Cleaned:    "1000005K",
		Formatted:  "1.000.005-K",
		Body:       "1000005",
		CheckDigit: "K",
		Valid:      true,
		Message:    MsgRUTValid,
	}, info)
}

func TestNormalizeRUT(t *testing.T) {
	cleaned, valid := NormalizeRUT("12.345.678-5")
	assert.Equal(t, "123456785", cleaned)
	assert.True(t, valid)

	cleaned, valid = NormalizeRUT("12.345.678-4")
	assert.Equal(t, "123456784", cleaned)
	assert.False(t, valid)
}

func TestExtractRUTFromText(t *testing.T) {
	text := "Tutor 12.345.678-5 agenda para 7654321-6; repetido 12345678-5, " +
		"inválido 12.345.678-9 y con K 1000005-k."

	got := ExtractRUTFromText(text)
	assert.Equal(t, []string{"123456785", "76543216", "1000005K"}, got)

	assert.Empty(t, ExtractRUTFromText("sin identificadores"))
}

func TestAreSameRUT(t *testing.T) {
	assert.True(t, AreSameRUT("12.345.678-5", "123456785"))
	assert.True(t, AreSameRUT("1000005-k", "1.000.005-K"))
	assert.False(t, AreSameRUT("12.345.678-5", "7.654.321-6"))
	assert.False(t, AreSameRUT("12.345.678-9", "12.345.678-9"))
}

func TestMaskRUT(t *testing.T) {
	assert.Equal(t, "**.***.678-5", MaskRUT("123456785"))
	assert.Equal(t, "*.***.321-6", MaskRUT("7654321-6"))
	assert.Equal(t, "***", MaskRUT("12.345.678-9"))
}
