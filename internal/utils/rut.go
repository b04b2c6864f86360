package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validation messages returned to the forms and portals
const (
	MsgRUTValid          = "RUT válido."
	MsgRUTTooShort       = "RUT debe tener al menos 2 caracteres."
	MsgRUTBodyNotNumeric = "El cuerpo del RUT debe ser numérico."
	MsgRUTBodyLength     = "RUT debe tener entre 7 y 8 dígitos más el dígito verificador."
	MsgRUTInvalidDigit   = "Dígito verificador inválido."
	MsgRUTUnexpected     = "Error al validar RUT"
)

const (
	MinRUTBody = 1000000
	MaxRUTBody = 99999999
)

var (
	nonRUTChars     = regexp.MustCompile(`[^0-9kK]`)
	numericBody     = regexp.MustCompile(`^\d+$`)
	formattedRUTPat = regexp.MustCompile(`\b\d{1,2}\.\d{3}\.\d{3}-[\dkK]\b`)
	compactRUTPat   = regexp.MustCompile(`\b\d{7,8}-[\dkK]\b`)
)

// RUTValidation is the outcome of ValidateRUT. Invalid input is reported
// through Valid and Message, never as an error.
type RUTValidation struct {
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted"`
	Message   string `json:"message"`
}

// CleanRUT removes every character that is not a digit or K and uppercases K
func CleanRUT(rut string) string {
	return strings.ToUpper(stripRUT(rut))
}

func stripRUT(rut string) string {
	return nonRUTChars.ReplaceAllString(rut, "")
}

// FormatRUT formats a RUT as XX.XXX.XXX-D. It does not validate; input with
// fewer than two significant characters is returned stripped.
func FormatRUT(rut string) string {
	stripped := stripRUT(rut)
	if len(stripped) < 2 {
		return stripped
	}

	body := stripped[:len(stripped)-1]
	checkDigit := strings.ToUpper(stripped[len(stripped)-1:])

	return groupThousands(body) + "-" + checkDigit
}

func groupThousands(body string) string {
	if len(body) <= 3 {
		return body
	}

	var b strings.Builder
	lead := len(body) % 3
	if lead > 0 {
		b.WriteString(body[:lead])
	}
	for i := lead; i < len(body); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(body[i : i+3])
	}
	return b.String()
}

// ValidateRUT validates a RUT using the modulus 11 algorithm
func ValidateRUT(rut string) RUTValidation {
	cleaned := CleanRUT(rut)
	result := RUTValidation{Formatted: FormatRUT(rut)}

	if len(cleaned) < 2 {
		result.Message = MsgRUTTooShort
		return result
	}

	body := cleaned[:len(cleaned)-1]
	checkDigit := cleaned[len(cleaned)-1:]

	if !numericBody.MatchString(body) {
		result.Message = MsgRUTBodyNotNumeric
		return result
	}

	if len(body) < 7 || len(body) > 8 {
		result.Message = MsgRUTBodyLength
		return result
	}

	if CalculateCheckDigit(body) != checkDigit {
		result.Message = MsgRUTInvalidDigit
		return result
	}

	result.Valid = true
	result.Message = MsgRUTValid
	return result
}

// IsValidRUT reports whether the RUT passes ValidateRUT
func IsValidRUT(rut string) bool {
	return ValidateRUT(rut).Valid
}

// CalculateCheckDigit returns the check character for a numeric body.
// Callers must make sure body contains only digits.
func CalculateCheckDigit(body string) string {
	sum := 0
	multiplier := 2

	// Multipliers cycle 2..7 walking from the rightmost digit
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	switch value := 11 - sum%11; value {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(value)
	}
}

// ExtractRUTBody returns every significant character except the check digit
func ExtractRUTBody(rut string) string {
	stripped := stripRUT(rut)
	if stripped == "" {
		return ""
	}
	return stripped[:len(stripped)-1]
}

// ExtractRUTCheckDigit returns the last significant character, uppercased
func ExtractRUTCheckDigit(rut string) string {
	cleaned := CleanRUT(rut)
	if cleaned == "" {
		return ""
	}
	return cleaned[len(cleaned)-1:]
}

// NormalizeRUT normalizes RUT by cleaning and validating
func NormalizeRUT(rut string) (string, bool) {
	cleaned := CleanRUT(rut)
	return cleaned, IsValidRUT(cleaned)
}

// RUTInfo holds information about a RUT
type RUTInfo struct {
	Original   string `json:"original"`
	Cleaned    string `json:"cleaned"`
	Formatted  string `json:"formatted"`
	Body       string `json:"body"`
	CheckDigit string `json:"check_digit"`
	Valid      bool   `json:"valid"`
	Message    string `json:"message"`
}

// AnalyzeRUT analyzes a RUT string and returns detailed information
func AnalyzeRUT(rut string) RUTInfo {
	validation := ValidateRUT(rut)

	return RUTInfo{
		Original:   rut,
		Cleaned:    CleanRUT(rut),
		Formatted:  validation.Formatted,
		Body:       ExtractRUTBody(rut),
		CheckDigit: ExtractRUTCheckDigit(rut),
		Valid:      validation.Valid,
		Message:    validation.Message,
	}
}

// GenerateRUT builds the formatted RUT for a numeric body
func GenerateRUT(body int) (string, error) {
	if body < MinRUTBody || body > MaxRUTBody {
		return "", fmt.Errorf("RUT body %d out of range [%d, %d]", body, MinRUTBody, MaxRUTBody)
	}

	digits := strconv.Itoa(body)
	return FormatRUT(digits + CalculateCheckDigit(digits)), nil
}

// ExtractRUTFromText extracts valid RUTs from free text. Punctuated matches
// come first, then compact ones; results are cleaned and de-duplicated.
func ExtractRUTFromText(text string) []string {
	var ruts []string
	seen := make(map[string]bool)

	add := func(candidates []string) {
		for _, candidate := range candidates {
			cleaned, valid := NormalizeRUT(candidate)
			if !valid || seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			ruts = append(ruts, cleaned)
		}
	}

	add(formattedRUTPat.FindAllString(text, -1))
	add(compactRUTPat.FindAllString(text, -1))

	return ruts
}

// AreSameRUT checks if two strings denote the same valid RUT
func AreSameRUT(rut1, rut2 string) bool {
	cleaned1, valid1 := NormalizeRUT(rut1)
	cleaned2, valid2 := NormalizeRUT(rut2)

	return valid1 && valid2 && cleaned1 == cleaned2
}

// MaskRUT hides all but the last three body digits, e.g. **.***.678-5.
// Input that does not validate is masked entirely.
func MaskRUT(rut string) string {
	if !IsValidRUT(rut) {
		return "***"
	}

	formatted := []byte(FormatRUT(rut))
	hidden := len(formatted) - 5 // keep "678-5"
	for i := 0; i < hidden; i++ {
		if formatted[i] != '.' {
			formatted[i] = '*'
		}
	}
	return string(formatted)
}
