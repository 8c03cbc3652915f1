package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseError reports a CSS color string that could not be understood.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidColor }

// Parse converts a CSS color (hex, rgb(), rgba(), hsl(), hsla(), a named
// color or "transparent") into HSLA.
func Parse(s string) (HSLA, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	switch {
	case in == "":
		return HSLA{}, &ParseError{Input: s, Reason: "empty"}
	case in == "transparent":
		return HSLA{}, nil
	case in == "rebeccapurple":
		// CSS Color 4 name, missing from the SVG 1.1 table
		return parseHex(s, "#663399")
	case strings.HasPrefix(in, "#"):
		return parseHex(s, in)
	case strings.HasPrefix(in, "rgb"):
		return parseFunc(s, in, "rgb", parseRGBArgs)
	case strings.HasPrefix(in, "hsl"):
		return parseFunc(s, in, "hsl", parseHSLArgs)
	}

	named, ok := colornames.Map[in]
	if !ok {
		return HSLA{}, &ParseError{Input: s, Reason: "unknown color name"}
	}
	c := colorful.Color{
		R: float64(named.R) / 255,
		G: float64(named.G) / 255,
		B: float64(named.B) / 255,
	}
	return FromColorful(c, 1), nil
}

// MustParse is Parse for compile-time constants; it panics on error.
func MustParse(s string) HSLA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(orig, in string) (HSLA, error) {
	digits := in[1:]
	alpha := 1.0

	switch len(digits) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(digits[3:], 16, 8)
		if err != nil {
			return HSLA{}, &ParseError{Input: orig, Reason: "bad alpha digit"}
		}
		alpha = float64(a) / 15
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return HSLA{}, &ParseError{Input: orig, Reason: "bad alpha digits"}
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return HSLA{}, &ParseError{Input: orig, Reason: "hex colors need 3, 4, 6 or 8 digits"}
	}

	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return HSLA{}, &ParseError{Input: orig, Reason: "bad hex digit"}
		}
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return HSLA{}, &ParseError{Input: orig, Reason: err.Error()}
	}
	return FromColorful(c, alpha), nil
}

type argParser func(args [3]string) (HSLA, error)

func parseFunc(orig, in, name string, parse argParser) (HSLA, error) {
	open := strings.IndexByte(in, '(')
	if open < 0 || !strings.HasSuffix(in, ")") {
		return HSLA{}, &ParseError{Input: orig, Reason: "malformed " + name + "()"}
	}
	fn := in[:open]
	if fn != name && fn != name+"a" {
		return HSLA{}, &ParseError{Input: orig, Reason: "unknown function " + fn}
	}
	body := in[open+1 : len(in)-1]

	alphaArg := ""
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		alphaArg = strings.TrimSpace(body[slash+1:])
		body = body[:slash]
	}

	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if alphaArg == "" && len(parts) == 4 {
		alphaArg = parts[3]
		parts = parts[:3]
	}
	if len(parts) != 3 {
		return HSLA{}, &ParseError{Input: orig, Reason: fmt.Sprintf("%s() needs 3 components, got %d", name, len(parts))}
	}

	c, err := parse([3]string{parts[0], parts[1], parts[2]})
	if err != nil {
		return HSLA{}, &ParseError{Input: orig, Reason: err.Error()}
	}

	c.A = 1
	if alphaArg != "" {
		a, err := parseAlpha(alphaArg)
		if err != nil {
			return HSLA{}, &ParseError{Input: orig, Reason: err.Error()}
		}
		c.A = a
	}
	return c, nil
}

func parseRGBArgs(args [3]string) (HSLA, error) {
	var ch [3]float64
	for i, a := range args {
		if strings.HasSuffix(a, "%") {
			v, err := parseNumber(strings.TrimSuffix(a, "%"))
			if err != nil {
				return HSLA{}, fmt.Errorf("bad channel %q", a)
			}
			ch[i] = clamp(v/100, 0, 1)
			continue
		}
		v, err := parseNumber(a)
		if err != nil {
			return HSLA{}, fmt.Errorf("bad channel %q", a)
		}
		ch[i] = clamp(v/255, 0, 1)
	}
	return FromColorful(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, 1), nil
}

func parseHSLArgs(args [3]string) (HSLA, error) {
	h, err := parseNumber(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return HSLA{}, fmt.Errorf("bad hue %q", args[0])
	}
	s, err := parseNumber(strings.TrimSuffix(args[1], "%"))
	if err != nil {
		return HSLA{}, fmt.Errorf("bad saturation %q", args[1])
	}
	l, err := parseNumber(strings.TrimSuffix(args[2], "%"))
	if err != nil {
		return HSLA{}, fmt.Errorf("bad lightness %q", args[2])
	}
	return HSLA{H: normalizeHue(h), S: clamp(s, 0, 100), L: clamp(l, 0, 100)}, nil
}

func parseAlpha(a string) (float64, error) {
	if strings.HasSuffix(a, "%") {
		v, err := parseNumber(strings.TrimSuffix(a, "%"))
		if err != nil {
			return 0, fmt.Errorf("bad alpha %q", a)
		}
		return clamp(v/100, 0, 1), nil
	}
	v, err := parseNumber(a)
	if err != nil {
		return 0, fmt.Errorf("bad alpha %q", a)
	}
	return clamp(v, 0, 1), nil
}

// parseNumber accepts finite decimal numbers only; NaN and Inf are not CSS.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}
