package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/config"
	"github.com/mirocana/typecheck/internal/types"
)

// The fixture surface syntax is a tiny s-expression-like grammar, just
// enough to exercise every shape match.Match dispatches on:
//
//	Unknown                unknown type
//	int, Dog, str          class instance
//	Type[Dog]               class/definition form
//	$T                      generic variable
//	List[int]               collection
//	Tuple[int, str]         fixed tuple
//	Tuple[int, ...]         homogeneous tuple
//	{foo, bar}              structural (duck) type
//	(int, bool) -> str      callable
//	(...) -> str            callable with unconstrained params
//	A | B                   union

type tokenKind int

const (
	tIdent tokenKind = iota
	tLBracket
	tRBracket
	tLParen
	tRParen
	tLBrace
	tRBrace
	tComma
	tPipe
	tArrow
	tDollar
	tEllipsis
	tEOF
)

type token struct {
	kind tokenKind
	text string
}

func lex(src string) ([]token, error) {
	var out []token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '[':
			out = append(out, token{tLBracket, "["})
			i++
		case c == ']':
			out = append(out, token{tRBracket, "]"})
			i++
		case c == '(':
			out = append(out, token{tLParen, "("})
			i++
		case c == ')':
			out = append(out, token{tRParen, ")"})
			i++
		case c == '{':
			out = append(out, token{tLBrace, "{"})
			i++
		case c == '}':
			out = append(out, token{tRBrace, "}"})
			i++
		case c == ',':
			out = append(out, token{tComma, ","})
			i++
		case c == '|':
			out = append(out, token{tPipe, "|"})
			i++
		case c == '$':
			out = append(out, token{tDollar, "$"})
			i++
		case c == '-' && i+1 < len(r) && r[i+1] == '>':
			out = append(out, token{tArrow, "->"})
			i += 2
		case c == '.' && i+2 < len(r) && r[i+1] == '.' && r[i+2] == '.':
			out = append(out, token{tEllipsis, "..."})
			i += 3
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
				i++
			}
			out = append(out, token{tIdent, string(r[start:i])})
		default:
			return nil, fmt.Errorf("unexpected character %q in type expression %q", c, src)
		}
	}
	out = append(out, token{tEOF, ""})
	return out, nil
}

type typeParser struct {
	toks []token
	pos  int
	reg  *classreg.StaticRegistry
}

func parseTypeExpr(src string, reg *classreg.StaticRegistry) (types.Type, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &typeParser{toks: toks, reg: reg}
	t, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tEOF {
		return nil, fmt.Errorf("unexpected trailing input in type expression %q at %q", src, p.peek().text)
	}
	return t, nil
}

func (p *typeParser) peek() token { return p.toks[p.pos] }

func (p *typeParser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *typeParser) expect(k tokenKind) (token, error) {
	t := p.next()
	if t.kind != k {
		return t, fmt.Errorf("expected token kind %d, got %q", k, t.text)
	}
	return t, nil
}

func (p *typeParser) parseUnion() (types.Type, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	members := []types.Type{first}
	for p.peek().kind == tPipe {
		p.next()
		m, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if len(members) == 1 {
		return first, nil
	}
	return types.NormalizeUnion(members, false), nil
}

func (p *typeParser) parseAtom() (types.Type, error) {
	switch p.peek().kind {
	case tDollar:
		p.next()
		name, err := p.expect(tIdent)
		if err != nil {
			return nil, err
		}
		return types.TypeVar{Name: name.text}, nil

	case tLBrace:
		p.next()
		attrs := map[string]struct{}{}
		if p.peek().kind != tRBrace {
			for {
				name, err := p.expect(tIdent)
				if err != nil {
					return nil, err
				}
				attrs[name.text] = struct{}{}
				if p.peek().kind == tComma {
					p.next()
					continue
				}
				break
			}
		}
		if _, err := p.expect(tRBrace); err != nil {
			return nil, err
		}
		return types.Structural{Attrs: attrs}, nil

	case tLParen:
		p.next()
		var params []types.Param
		if p.peek().kind == tEllipsis {
			p.next()
			params = nil
		} else if p.peek().kind == tRParen {
			params = []types.Param{}
		} else {
			for {
				t, err := p.parseUnion()
				if err != nil {
					return nil, err
				}
				params = append(params, types.Param{Type: t})
				if p.peek().kind == tComma {
					p.next()
					continue
				}
				break
			}
		}
		if _, err := p.expect(tRParen); err != nil {
			return nil, err
		}
		if _, err := p.expect(tArrow); err != nil {
			return nil, err
		}
		ret, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		return types.Callable{Params: params, Return: ret}, nil

	case tIdent:
		name := p.next().text
		if name == "Unknown" {
			return types.Unknown{}, nil
		}
		if name == "Type" && p.peek().kind == tLBracket {
			p.next()
			inner, err := p.expect(tIdent)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tRBracket); err != nil {
				return nil, err
			}
			return types.Class{Descriptor: p.reg.Declare(inner.text), IsDefinition: true}, nil
		}
		if p.peek().kind == tLBracket {
			p.next()
			if strings.EqualFold(name, "Tuple") {
				var elems []types.Type
				homogeneous := false
				for {
					t, err := p.parseUnion()
					if err != nil {
						return nil, err
					}
					elems = append(elems, t)
					if p.peek().kind == tComma {
						p.next()
						if p.peek().kind == tEllipsis {
							p.next()
							homogeneous = true
							break
						}
						continue
					}
					break
				}
				if _, err := p.expect(tRBracket); err != nil {
					return nil, err
				}
				desc := p.reg.Declare(config.TupleClassName)
				if homogeneous && len(elems) == 1 {
					return types.NewHomogeneousTuple(desc, elems[0]), nil
				}
				return types.NewFixedTuple(desc, elems), nil
			}
			var params []types.Type
			for {
				t, err := p.parseUnion()
				if err != nil {
					return nil, err
				}
				params = append(params, t)
				if p.peek().kind == tComma {
					p.next()
					continue
				}
				break
			}
			if _, err := p.expect(tRBracket); err != nil {
				return nil, err
			}
			return types.Collection{Descriptor: p.reg.Declare(name), Params: params}, nil
		}
		return types.Class{Descriptor: p.reg.Declare(name)}, nil

	default:
		return nil, fmt.Errorf("unexpected token %q while parsing type expression", p.peek().text)
	}
}
