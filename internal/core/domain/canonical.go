package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// maxExponent bounds the decimal exponent of a number literal.
const maxExponent = 1 << 30

// canonicalize writes v in the RFC 8785 layout (sorted keys, minimal string
// escaping, ES6 number placement) but keeps every number at its exact decimal
// value instead of rounding it to a float64.
func canonicalize(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case string:
		writeString(buf, v)
	case json.Number:
		return writeNumber(buf, string(v))
	case float64:
		return writeFloat(buf, v)
	case float32:
		return writeFloat(buf, float64(v))
	case int:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(v, 10))
	case []any:
		buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := canonicalize(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, compareUTF16)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if err := canonicalize(buf, v[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return canonicalizeGeneric(buf, v)
	}
	return nil
}

// canonicalizeGeneric handles other Go values through their encoding/json form.
func canonicalizeGeneric(buf *bytes.Buffer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrUnrepresentableDocument, zerr.Wrap(err, "failed to encode value"))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return errors.Join(ErrUnrepresentableDocument, zerr.Wrap(err, "failed to decode value"))
	}
	return canonicalize(buf, decoded)
}

// compareUTF16 orders object keys by their UTF-16 code units.
func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '\b':
			buf.WriteString(`\b`)
		case r == '\f':
			buf.WriteString(`\f`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r < 0x20:
			_, _ = fmt.Fprintf(buf, `\u%04x`, r)
		default:
			// Invalid UTF-8 is written as U+FFFD, like encoding/json does.
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

func writeFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Join(ErrUnrepresentableDocument, zerr.With(zerr.New("non-finite number"), "number", f))
	}
	return writeNumber(buf, strconv.FormatFloat(f, 'g', -1, 64))
}

// writeNumber normalizes a JSON number literal. Equal values produce equal
// text: "1.0", "10e-1" and "1" all become "1", and -0 becomes "0".
func writeNumber(buf *bytes.Buffer, lit string) error {
	invalid := func() error {
		return errors.Join(ErrUnrepresentableDocument, zerr.With(zerr.New("invalid number literal"), "number", lit))
	}

	s := lit
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	mantissa, exponent := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(strings.TrimPrefix(s[i+1:], "+"))
		if err != nil || e > maxExponent || e < -maxExponent {
			return invalid()
		}
		mantissa, exponent = s[:i], e
	}

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	if intPart == "" || !isDigits(intPart) || !isDigits(fracPart) {
		return invalid()
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	exponent -= len(fracPart)
	trimmed := strings.TrimRight(digits, "0")
	exponent += len(digits) - len(trimmed)
	digits = trimmed

	if digits == "" {
		buf.WriteByte('0')
		return nil
	}
	if negative {
		buf.WriteByte('-')
	}

	// point is the position of the decimal point relative to the first digit.
	k, point := len(digits), exponent+len(digits)
	switch {
	case k <= point && point <= 21:
		buf.WriteString(digits)
		buf.WriteString(strings.Repeat("0", point-k))
	case 0 < point && point <= 21:
		buf.WriteString(digits[:point])
		buf.WriteByte('.')
		buf.WriteString(digits[point:])
	case -6 < point && point <= 0:
		buf.WriteString("0.")
		buf.WriteString(strings.Repeat("0", -point))
		buf.WriteString(digits)
	default:
		buf.WriteByte(digits[0])
		if k > 1 {
			buf.WriteByte('.')
			buf.WriteString(digits[1:])
		}
		buf.WriteByte('e')
		if point-1 >= 0 {
			buf.WriteByte('+')
		}
		buf.WriteString(strconv.Itoa(point - 1))
	}
	return nil
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
