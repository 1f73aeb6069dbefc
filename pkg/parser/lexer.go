package parser

import pkgerrors "github.com/pkg/errors"

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokPathSep
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokComma
	tokSemi
	tokStar
	tokPound
	tokBang
	tokOther
)

type token struct {
	kind  tokenKind
	text  string
	start int
	end   int
}

// lex tokenizes Rust source just far enough to locate use items: comments
// and literals are skipped so that braces inside them cannot confuse depth
// tracking, and every remaining token carries its byte span.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end, err := skipBlockComment(src, i)
			if err != nil {
				return nil, err
			}
			i = end
		case c == '"':
			end, err := skipString(src, i)
			if err != nil {
				return nil, err
			}
			i = end
		case c == 'r' && i+1 < len(src) && (src[i+1] == '"' || src[i+1] == '#') && isRawStringStart(src, i):
			end, err := skipRawString(src, i+1)
			if err != nil {
				return nil, err
			}
			i = end
		case c == 'b' && i+1 < len(src) && src[i+1] == '"':
			end, err := skipString(src, i+1)
			if err != nil {
				return nil, err
			}
			i = end
		case c == '\'':
			i = skipCharOrLifetime(src, i)
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], start: start, end: i})
		case c == ':' && i+1 < len(src) && src[i+1] == ':':
			toks = append(toks, token{kind: tokPathSep, text: "::", start: i, end: i + 2})
			i += 2
		default:
			kind := tokOther
			switch c {
			case '{':
				kind = tokLBrace
			case '}':
				kind = tokRBrace
			case '[':
				kind = tokLBracket
			case ']':
				kind = tokRBracket
			case '(':
				kind = tokLParen
			case ')':
				kind = tokRParen
			case ',':
				kind = tokComma
			case ';':
				kind = tokSemi
			case '*':
				kind = tokStar
			case '#':
				kind = tokPound
			case '!':
				kind = tokBang
			}
			toks = append(toks, token{kind: kind, text: src[i : i+1], start: i, end: i + 1})
			i++
		}
	}
	return toks, nil
}

func skipBlockComment(src string, start int) (int, error) {
	depth := 0
	i := start
	for i < len(src) {
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if i+1 < len(src) && src[i] == '*' && src[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				return i, nil
			}
			continue
		}
		i++
	}
	return 0, pkgerrors.Errorf("unterminated block comment at byte %d", start)
}

func skipString(src string, start int) (int, error) {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, pkgerrors.Errorf("unterminated string literal at byte %d", start)
}

// isRawStringStart reports whether the r at offset i begins r"..." or
// r#"..."# rather than a raw identifier like r#type.
func isRawStringStart(src string, i int) bool {
	j := i + 1
	for j < len(src) && src[j] == '#' {
		j++
	}
	return j < len(src) && src[j] == '"'
}

// skipRawString consumes r"..." and r#..#"..."#..# forms; start points at
// the first character after the leading r.
func skipRawString(src string, start int) (int, error) {
	hashes := 0
	i := start
	for i < len(src) && src[i] == '#' {
		hashes++
		i++
	}
	if i >= len(src) || src[i] != '"' {
		return 0, pkgerrors.Errorf("malformed raw string at byte %d", start)
	}
	i++
	for i < len(src) {
		if src[i] != '"' {
			i++
			continue
		}
		i++
		matched := 0
		for matched < hashes && i < len(src) && src[i] == '#' {
			matched++
			i++
		}
		if matched == hashes {
			return i, nil
		}
	}
	return 0, pkgerrors.Errorf("unterminated raw string at byte %d", start)
}

// skipCharOrLifetime distinguishes 'a' (char literal) from 'a (lifetime).
// Lifetimes have no closing quote, so consume the identifier and move on.
func skipCharOrLifetime(src string, start int) int {
	i := start + 1
	if i < len(src) && src[i] == '\\' {
		i += 2
		for i < len(src) && src[i] != '\'' {
			i++
		}
		return i + 1
	}
	if i < len(src) && isIdentStart(src[i]) {
		j := i + 1
		for j < len(src) && isIdentPart(src[j]) {
			j++
		}
		if j < len(src) && src[j] == '\'' {
			return j + 1 // char literal like 'a'
		}
		return j // lifetime
	}
	// something like '0' or a stray quote; scan to the closing quote
	for i < len(src) && src[i] != '\'' {
		i++
	}
	if i < len(src) {
		i++
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
