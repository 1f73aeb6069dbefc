// Package parser locates and parses top-level use declarations in Rust
// source text. It is deliberately shallow: everything that is not a use
// item is only tokenized far enough to track item boundaries.
package parser

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/tidyuse/tidyuse/pkg/errors"
	"github.com/tidyuse/tidyuse/pkg/syntax"
)

// Run is one contiguous run of top-level use declarations. Start and End
// are byte offsets into the scanned source; End extends over trailing
// blank lines so a rewritten block replaces them too.
type Run struct {
	Start int
	End   int
	Items []syntax.ItemUse
}

// ScanFile finds every run of use declarations in src. Use items decorated
// with attributes are unsupported and fail the whole scan.
func ScanFile(src string) ([]Run, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	runs, err := p.scan()
	if err != nil {
		return nil, err
	}
	for i := range runs {
		runs[i].End = skipBlankSpace(src, runs[i].End)
	}
	return runs, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) scan() ([]Run, error) {
	var runs []Run
	depth := 0
	contiguous := false
	attrPending := false

	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if depth == 0 {
			if t.kind == tokPound {
				inner, err := p.skipAttribute()
				if err != nil {
					return nil, err
				}
				if !inner {
					attrPending = true
				}
				contiguous = false
				continue
			}
			if p.atUseItem() {
				if attrPending {
					return nil, pkgerrors.Errorf("%s at byte %d", errors.ErrMsgDecoratedUse, t.start)
				}
				item, start, end, err := p.parseUseItem()
				if err != nil {
					return nil, err
				}
				if contiguous && len(runs) > 0 {
					last := &runs[len(runs)-1]
					last.Items = append(last.Items, item)
					last.End = end
				} else {
					runs = append(runs, Run{Start: start, End: end, Items: []syntax.ItemUse{item}})
				}
				contiguous = true
				continue
			}
			attrPending = false
			contiguous = false
		}
		switch t.kind {
		case tokLBrace:
			depth++
		case tokRBrace:
			if depth > 0 {
				depth--
			}
		}
		p.pos++
	}
	return runs, nil
}

// skipAttribute consumes #[...] or #![...] and reports whether it was the
// inner (file-level) form, which does not decorate the next item.
func (p *parser) skipAttribute() (inner bool, err error) {
	start := p.toks[p.pos].start
	p.pos++ // #
	if p.pos < len(p.toks) && p.toks[p.pos].kind == tokBang {
		inner = true
		p.pos++
	}
	if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokLBracket {
		return false, pkgerrors.Errorf("malformed attribute at byte %d", start)
	}
	depth := 0
	for p.pos < len(p.toks) {
		switch p.toks[p.pos].kind {
		case tokLBracket:
			depth++
		case tokRBracket:
			depth--
			if depth == 0 {
				p.pos++
				return inner, nil
			}
		}
		p.pos++
	}
	return false, pkgerrors.Errorf("unterminated attribute at byte %d", start)
}

// atUseItem reports whether the tokens at the cursor begin a use item:
// `use ...` or `pub use ...` or `pub(...) use ...`. Nothing is consumed.
func (p *parser) atUseItem() bool {
	i := p.pos
	if p.checkIdentAt(i, "use") {
		return true
	}
	if !p.checkIdentAt(i, "pub") {
		return false
	}
	i++
	if i < len(p.toks) && p.toks[i].kind == tokLParen {
		depth := 0
		for ; i < len(p.toks); i++ {
			switch p.toks[i].kind {
			case tokLParen:
				depth++
			case tokRParen:
				depth--
			}
			if depth == 0 {
				i++
				break
			}
		}
	}
	return p.checkIdentAt(i, "use")
}

func (p *parser) checkIdentAt(i int, text string) bool {
	return i < len(p.toks) && p.toks[i].kind == tokIdent && p.toks[i].text == text
}

func (p *parser) parseUseItem() (item syntax.ItemUse, start, end int, err error) {
	start = p.toks[p.pos].start
	if p.matchIdent("pub") {
		item.Vis, err = p.parseRestriction()
		if err != nil {
			return item, 0, 0, err
		}
	}
	if _, err = p.consumeIdent("use"); err != nil {
		return item, 0, 0, err
	}
	if p.match(tokPathSep) {
		item.LeadingColon = true
	}
	item.Tree, err = p.parseUseTree()
	if err != nil {
		return item, 0, 0, err
	}
	semi, err := p.consume(tokSemi, "expected ';' after use declaration")
	if err != nil {
		return item, 0, 0, err
	}
	return item, start, semi.end, nil
}

// parseRestriction parses what may follow pub: nothing, (crate|self|super)
// or (in path).
func (p *parser) parseRestriction() (syntax.Visibility, error) {
	vis := syntax.Visibility{Kind: syntax.VisPublic}
	if !p.match(tokLParen) {
		return vis, nil
	}
	vis.Kind = syntax.VisRestricted
	if p.matchIdent("in") {
		vis.In = true
		if p.match(tokPathSep) {
			vis.LeadingColon = true
		}
		for {
			segment, err := p.consume(tokIdent, "expected path segment in visibility")
			if err != nil {
				return vis, err
			}
			vis.Segments = append(vis.Segments, segment.text)
			if !p.match(tokPathSep) {
				break
			}
		}
	} else {
		segment, err := p.consume(tokIdent, "expected crate, self or super in visibility")
		if err != nil {
			return vis, err
		}
		vis.Segments = []string{segment.text}
	}
	if _, err := p.consume(tokRParen, "expected ')' to close visibility"); err != nil {
		return vis, err
	}
	return vis, nil
}

func (p *parser) parseUseTree() (syntax.Tree, error) {
	switch {
	case p.match(tokStar):
		return &syntax.Glob{}, nil
	case p.check(tokLBrace):
		return p.parseGroup()
	case p.check(tokIdent):
		ident := p.advance()
		switch {
		case p.check(tokPathSep):
			p.advance()
			sub, err := p.parseUseTree()
			if err != nil {
				return nil, err
			}
			return &syntax.Path{Ident: ident.text, Tree: sub}, nil
		case p.checkIdentAt(p.pos, "as"):
			p.advance()
			to, err := p.consume(tokIdent, "expected identifier after 'as'")
			if err != nil {
				return nil, err
			}
			return &syntax.Rename{Ident: ident.text, To: to.text}, nil
		default:
			return &syntax.Name{Ident: ident.text}, nil
		}
	default:
		at := len(p.src)
		if p.pos < len(p.toks) {
			at = p.toks[p.pos].start
		}
		return nil, pkgerrors.Errorf("expected use tree at byte %d", at)
	}
}

func (p *parser) parseGroup() (syntax.Tree, error) {
	p.advance() // {
	group := &syntax.Group{}
	for !p.check(tokRBrace) {
		item, err := p.parseUseTree()
		if err != nil {
			return nil, err
		}
		group.Items = append(group.Items, item)
		if !p.match(tokComma) {
			break
		}
	}
	if _, err := p.consume(tokRBrace, "expected '}' to close use group"); err != nil {
		return nil, err
	}
	return group, nil
}

func (p *parser) check(kind tokenKind) bool {
	return p.pos < len(p.toks) && p.toks[p.pos].kind == kind
}

func (p *parser) match(kind tokenKind) bool {
	if p.check(kind) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) matchIdent(text string) bool {
	if p.checkIdentAt(p.pos, text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) consume(kind tokenKind, msg string) (token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	at := len(p.src)
	if p.pos < len(p.toks) {
		at = p.toks[p.pos].start
	}
	return token{}, pkgerrors.Errorf("%s at byte %d", msg, at)
}

func (p *parser) consumeIdent(text string) (token, error) {
	if p.checkIdentAt(p.pos, text) {
		return p.advance(), nil
	}
	at := len(p.src)
	if p.pos < len(p.toks) {
		at = p.toks[p.pos].start
	}
	return token{}, pkgerrors.Errorf("expected '%s' at byte %d", text, at)
}

// skipBlankSpace extends end over whitespace up to the next non-blank
// content, so the rewritten block owns the blank lines that followed the
// original run.
func skipBlankSpace(src string, end int) int {
	for end < len(src) {
		switch src[end] {
		case ' ', '\t', '\r', '\n':
			end++
		default:
			return end
		}
	}
	return end
}
