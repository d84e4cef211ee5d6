package assistant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

// Calculator evaluates pure arithmetic expressions on behalf of the
// tool-calling responder. The grammar admits numeric literals, + - * /,
// ^ for exponentiation, parentheses and unary sign. Nothing else, so
// there is no path to evaluating arbitrary code.
type Calculator struct{}

// CalculatorToolName is the name the tool is registered under.
const CalculatorToolName = "calculator"

// Def returns the tool definition exposed to the agent loop.
func (Calculator) Def() llm.ToolDef {
	return llm.ToolDef{
		Name:        CalculatorToolName,
		Description: "Evaluate basic arithmetic expressions. Input should be a string containing the expression, like '4*4*(33/22)+12-20'.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"expression": map[string]any{
					"type":        "string",
					"description": "The arithmetic expression to evaluate.",
				},
			},
			"required": []string{"expression"},
		},
	}
}

// Evaluate parses and evaluates an arithmetic expression. The result is
// formatted to 6 decimal places with trailing zeros and a trailing decimal
// point stripped ("4", "4.5", "0.25"). Any parse or evaluation failure is
// returned as an "Error: ..." string since the agent loop expects a textual
// result, never an error value.
func (Calculator) Evaluate(expression string) string {
	p := &exprParser{input: strings.TrimSpace(expression)}
	if p.input == "" {
		return "Error: empty expression"
	}

	result, err := p.parseAddSub()
	if err != nil {
		return "Error: " + err.Error()
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return fmt.Sprintf("Error: unexpected character %q at position %d", p.input[p.pos], p.pos)
	}

	formatted := strings.TrimRight(fmt.Sprintf("%.6f", result), "0")
	formatted = strings.TrimRight(formatted, ".")
	if formatted == "" || formatted == "-" {
		formatted = "0"
	}
	return formatted
}

// exprParser is a recursive-descent parser over the arithmetic grammar.
// Precedence, loosest to tightest: addsub, muldiv, unary sign, power.
// Power is right-associative.
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseAddSub() (float64, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		right, err := p.parseMulDiv()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *exprParser) parseMulDiv() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			break
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		}
	}
	return left, nil
}

func (p *exprParser) parseUnary() (float64, error) {
	p.skipSpaces()
	if p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '-':
			p.pos++
			v, err := p.parseUnary()
			return -v, err
		case '+':
			p.pos++
			return p.parseUnary()
		}
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '^' {
		p.pos++
		// Right-associative: 2^3^2 == 2^(3^2). The exponent may carry
		// its own unary sign, as in 2^-1.
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return pow(base, exp)
	}
	return base, nil
}

func (p *exprParser) parseAtom() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	ch := p.input[p.pos]

	if ch == '(' {
		p.pos++
		val, err := p.parseAddSub()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++
		return val, nil
	}

	if unicode.IsDigit(rune(ch)) || ch == '.' {
		start := p.pos
		seenDot := false
		for p.pos < len(p.input) {
			c := p.input[p.pos]
			if c == '.' {
				if seenDot {
					return 0, fmt.Errorf("malformed number at position %d", p.pos)
				}
				seenDot = true
				p.pos++
				continue
			}
			if !unicode.IsDigit(rune(c)) {
				break
			}
			p.pos++
		}
		val, err := strconv.ParseFloat(p.input[start:p.pos], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed number %q", p.input[start:p.pos])
		}
		return val, nil
	}

	return 0, fmt.Errorf("unexpected character %q at position %d", ch, p.pos)
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// pow computes base^exp, rejecting results outside the real numbers (such
// as a negative base with a fractional exponent, or overflow).
func pow(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, fmt.Errorf("division by zero")
	}
	result := math.Pow(base, exp)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("result out of range")
	}
	return result, nil
}
