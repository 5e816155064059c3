// Package money convierte entre el formato de moneda es-CO (punto de miles,
// coma decimal) y valores decimales canónicos de 2 decimales.
//
// Las operaciones son totales: un texto malformado se señala con ok=false,
// nunca con panic ni error. "" y solo-espacios valen 0; eso distingue
// "en blanco" de "malformado".
package money

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// tolerance: dos montos son iguales si difieren en menos de medio centavo.
var tolerance = decimal.New(5, -3)

// pattern admite el texto ya normalizado: dígitos, opcionalmente un punto y
// hasta 2 decimales.
var pattern = regexp.MustCompile(`^\d*(\.\d{0,2})?$`)

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Parse interpreta texto es-CO. Blanco vale (0, true); texto malformado
// (separadores de más, letras, más de 2 decimales) vale (0, false).
// El resultado queda redondeado a 2 decimales, mitad lejos de cero.
func Parse(raw string) (decimal.Decimal, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return decimal.Zero, true
	}

	t = stripSpaces(t)
	t = strings.ReplaceAll(t, ".", "")
	t = strings.ReplaceAll(t, ",", ".")

	if !pattern.MatchString(t) {
		return decimal.Zero, false
	}

	// una coma final a medio escribir ("1234,") equivale al entero
	t = strings.TrimSuffix(t, ".")
	if t == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}

	return d.Round(2), true
}

// ParseOrZero es el fallback de guardado/exportación: lo imparseable cuenta
// como 0, porque un documento no puede generarse con un monto ambiguo.
func ParseOrZero(raw string) decimal.Decimal {
	d, ok := Parse(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// SanitizeInput limpia el texto de un campo mientras el usuario escribe,
// sin forzarlo a un valor completo: quita espacios y puntos de miles,
// colapsa comas extra dentro de la parte decimal, trunca a 2 decimales y
// conserva una coma final suelta.
func SanitizeInput(raw string) string {
	if raw == "" {
		return ""
	}

	t := stripSpaces(raw)
	hadTrailingComma := strings.HasSuffix(t, ",")

	parts := strings.Split(t, ",")
	if len(parts) > 2 {
		t = parts[0] + "," + strings.Join(parts[1:], "")
	}
	t = strings.ReplaceAll(t, ".", "")

	intPart, decPart, _ := strings.Cut(t, ",")
	if len(decPart) > 2 {
		decPart = decPart[:2]
	}

	if hadTrailingComma && decPart == "" {
		return intPart + ","
	}
	if decPart != "" {
		return intPart + "," + decPart
	}
	return intPart
}

// Format produce la representación es-CO de un valor canónico: punto cada
// 3 dígitos y 2 decimales solo cuando el valor no es entero.
func Format(d decimal.Decimal) string {
	d = d.Round(2)

	fixed := d.Abs().StringFixed(2)
	intPart, decPart, _ := strings.Cut(fixed, ".")

	out := groupThousands(intPart)
	if decPart != "00" {
		out += "," + decPart
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatText formatea texto crudo para mostrar. Blanco o imparseable
// producen cadena vacía, nunca "0": un campo vacío no aparenta un cero real.
func FormatText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	d, ok := Parse(raw)
	if !ok {
		return ""
	}
	return Format(d)
}

// FormatInput reagrupa los miles de un valor a medio escribir, conservando
// la parte decimal parcial y la coma final.
func FormatInput(value string) string {
	if value == "" {
		return ""
	}

	hasComma := strings.Contains(value, ",")
	intPart, decPart, _ := strings.Cut(value, ",")
	intPart = strings.ReplaceAll(intPart, ".", "")
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return value
		}
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	grouped := groupThousands(intPart)
	if hasComma {
		return grouped + "," + decPart
	}
	return grouped
}

// Equal compara al nivel del centavo: ambos totales se acumulan por caminos
// independientes y la igualdad exacta fallaría por el redondeo intermedio.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
