package jsondata

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// DefaultIndent is the indentation used for inlined data blocks.
const DefaultIndent = "    "

// Marshal serializes v using indent for each nesting level. An empty indent
// still places one item per line.
func Marshal(v Value, indent string) string {
	var b strings.Builder
	writeValue(&b, v, indent, 0)
	return b.String()
}

// ScriptBlock renders v as an inert JSON script element with the given id.
func ScriptBlock(id string, v Value) string {
	var b strings.Builder
	b.WriteString(`<script id="`)
	b.WriteString(id)
	b.WriteString(`" type="application/json">`)
	b.WriteByte('\n')
	b.WriteString(Marshal(v, DefaultIndent))
	b.WriteString("\n</script>")
	return b.String()
}

func writeValue(b *strings.Builder, v Value, indent string, depth int) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.Number))
	case KindString:
		writeString(b, v.String)
	case KindArray:
		if len(v.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			writeValue(b, item, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case KindObject:
		if len(v.Members) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			writeString(b, m.Key)
			b.WriteString(": ")
			writeValue(b, m.Value, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte('}')
	}
}

func newline(b *strings.Builder, indent string, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

// writeString escapes everything outside printable ASCII.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				b.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}

func formatNumber(n json.Number) string {
	lit := string(n)
	if !strings.ContainsAny(lit, ".eE") {
		return formatInt(lit)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return lit
	}
	return formatFloat(f)
}

func formatInt(lit string) string {
	if strings.HasPrefix(lit, "-") && strings.Trim(lit[1:], "0") == "" {
		return lit[1:]
	}
	return lit
}

// formatFloat renders the shortest round-tripping digits of f, positional
// between 1e-4 and 1e16 with at least one fractional digit, otherwise
// scientific with a signed exponent of at least two digits.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	if f == 0 {
		return sign + "0.0"
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	exp, _ := strconv.Atoi(exponent)
	digits := strings.Replace(mantissa, ".", "", 1)
	point := exp + 1

	if point <= -4 || point > 16 {
		out := digits[:1]
		if len(digits) > 1 {
			out += "." + digits[1:]
		}
		expSign := "+"
		if exp < 0 {
			expSign = "-"
			exp = -exp
		}
		return fmt.Sprintf("%s%se%s%02d", sign, out, expSign, exp)
	}

	switch {
	case point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return sign + digits + strings.Repeat("0", point-len(digits)) + ".0"
	default:
		return sign + digits[:point] + "." + digits[point:]
	}
}
