package keycodes

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluation failures. Callers that need a never-fails surface go through
// Deserialize, which maps any of these to the KC_NO sentinel.
var (
	ErrSyntax      = errors.New("keycode expression syntax error")
	ErrUnknownName = errors.New("unknown keycode identifier")
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	num  int64
}

func tokenize(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			j := i + 1
			if c == '0' && j < len(input) && (input[j] == 'x' || input[j] == 'X') {
				j++
				start := j
				for j < len(input) && isHexDigit(input[j]) {
					j++
				}
				if j == start {
					return nil, fmt.Errorf("%w: malformed hex literal", ErrSyntax)
				}
				n, err := strconv.ParseInt(input[start:j], 16, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %s", ErrSyntax, input[i:j])
				}
				toks = append(toks, token{kind: tokNumber, num: n})
			} else {
				for j < len(input) && input[j] >= '0' && input[j] <= '9' {
					j++
				}
				n, err := strconv.ParseInt(input[i:j], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %s", ErrSyntax, input[i:j])
				}
				toks = append(toks, token{kind: tokNumber, num: n})
			}
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(input) && isIdentPart(input[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: input[i:j]})
			i = j
		case c == '<' || c == '>':
			if i+1 >= len(input) || input[i+1] != c {
				return nil, fmt.Errorf("%w: stray %q", ErrSyntax, string(c))
			}
			toks = append(toks, token{kind: tokOp, text: string(c) + string(c)})
			i += 2
		case c == '|' || c == '^' || c == '&' || c == '+' || c == '-' || c == '(' || c == ')' || c == ',':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		default:
			return nil, fmt.Errorf("%w: invalid character %q", ErrSyntax, string(c))
		}
	}
	return toks, nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentStart(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// parser is a recursive-descent evaluator over the token stream. Precedence,
// lowest binding first: | ^ & (+ -) (<< >>) unary- primary.
type parser struct {
	toks []token
	pos  int
	reg  *Registry
}

// Evaluate parses the textual keycode expression grammar and computes its
// 16-bit value, resolving bare identifiers against the active registry. The
// whole input must form one expression; trailing tokens are an error.
func (r *Registry) Evaluate(expr string) (uint16, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	p := &parser{toks: toks, reg: r}
	v, err := p.parseOr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.toks) {
		return 0, fmt.Errorf("%w: unexpected trailing input", ErrSyntax)
	}
	return uint16(v), nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	t, ok := p.peek()
	if !ok || t.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) expectOp(op string) error {
	if _, ok := p.acceptOp(op); !ok {
		return fmt.Errorf("%w: expected %q", ErrSyntax, op)
	}
	return nil
}

func (p *parser) parseOr() (int64, error) {
	v, err := p.parseXor()
	if err != nil {
		return 0, err
	}
	for {
		if _, ok := p.acceptOp("|"); !ok {
			return v, nil
		}
		rhs, err := p.parseXor()
		if err != nil {
			return 0, err
		}
		v |= rhs
	}
}

func (p *parser) parseXor() (int64, error) {
	v, err := p.parseAnd()
	if err != nil {
		return 0, err
	}
	for {
		if _, ok := p.acceptOp("^"); !ok {
			return v, nil
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return 0, err
		}
		v ^= rhs
	}
}

func (p *parser) parseAnd() (int64, error) {
	v, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	for {
		if _, ok := p.acceptOp("&"); !ok {
			return v, nil
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		v &= rhs
	}
}

func (p *parser) parseAdditive() (int64, error) {
	v, err := p.parseShift()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return v, nil
		}
		rhs, err := p.parseShift()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) parseShift() (int64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("<<", ">>")
		if !ok {
			return v, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if rhs < 0 || rhs > 63 {
			v = 0
			continue
		}
		if op == "<<" {
			v <<= uint(rhs)
		} else {
			v >>= uint(rhs)
		}
	}
}

func (p *parser) parseUnary() (int64, error) {
	if _, ok := p.acceptOp("-"); ok {
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (int64, error) {
	t, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	switch t.kind {
	case tokNumber:
		p.pos++
		return t.num, nil
	case tokOp:
		if t.text == "(" {
			p.pos++
			v, err := p.parseOr()
			if err != nil {
				return 0, err
			}
			return v, p.expectOp(")")
		}
		return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.text)
	case tokIdent:
		p.pos++
		if _, isCall := p.acceptOp("("); isCall {
			return p.parseCall(t.text)
		}
		v, err := p.reg.resolveName(t.text)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}
	return 0, fmt.Errorf("%w: unexpected token", ErrSyntax)
}

// parseCall finishes a wrapper call form NAME(arg[, arg]) after the opening
// parenthesis has been consumed.
func (p *parser) parseCall(name string) (int64, error) {
	w, ok := lookupWrapper(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a wrapper", ErrUnknownName, name)
	}
	var args []uint16
	for {
		v, err := p.parseOr()
		if err != nil {
			return 0, err
		}
		args = append(args, uint16(v))
		if _, more := p.acceptOp(","); !more {
			break
		}
	}
	if err := p.expectOp(")"); err != nil {
		return 0, err
	}
	packed, err := w.pack(p.reg.table.layout, args)
	if err != nil {
		return 0, fmt.Errorf("%w: %s(...): %s", ErrSyntax, name, err)
	}
	return int64(packed), nil
}

// resolveName maps a bare identifier to its numeric value: table entry first,
// then modifier tokens, then registry aliases.
func (r *Registry) resolveName(name string) (uint16, error) {
	if v, ok := r.table.Values[name]; ok {
		return v, nil
	}
	if v, ok := modTokens[name]; ok {
		return v, nil
	}
	if kc, ok := r.byAlias[name]; ok {
		return kc.Value, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
}
