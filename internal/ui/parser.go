package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a primitive CSS subset: type, .class and #id selectors (optionally comma-separated)
// and blocks of "key: value;". Rulesets whose selectors include anything else (combinators, pseudo
// classes) are skipped, as is everything inside @rules.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var selectors []string
	var props map[string]string
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, splitSelectors(p.Values())...)
		case css.BeginRulesetGrammar:
			selectors = append(selectors, splitSelectors(p.Values())...)
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[string(data)] = tokenText(p.Values())
			}
		case css.EndRulesetGrammar:
			if atDepth == 0 {
				for _, sel := range selectors {
					if sel != "" {
						sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
					}
				}
			}
			selectors, props = nil, nil
		}
	}
}

// splitSelectors turns selector tokens into one string per comma-separated selector. A selector
// that is not a bare type, .class or #id becomes "" and is dropped by the caller.
func splitSelectors(tokens []css.Token) []string {
	var out []string
	var cur []css.Token
	flush := func() {
		out = append(out, simpleSelector(cur))
		cur = cur[:0]
	}
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
		case css.CommaToken:
			flush()
		default:
			cur = append(cur, t)
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return out
}

func simpleSelector(tokens []css.Token) string {
	switch {
	case len(tokens) == 1 && tokens[0].TokenType == css.IdentToken:
		return string(tokens[0].Data)
	case len(tokens) == 1 && tokens[0].TokenType == css.HashToken:
		return string(tokens[0].Data)
	case len(tokens) == 2 && tokens[0].TokenType == css.DelimToken && bytes.Equal(tokens[0].Data, []byte(".")) &&
		tokens[1].TokenType == css.IdentToken:
		return "." + string(tokens[1].Data)
	}
	return ""
}

func tokenText(tokens []css.Token) string {
	var b bytes.Buffer
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return string(bytes.TrimSpace(b.Bytes()))
}
