// Package parse converts template source text into its in-memory
// representation (the ast package's Template and Node types).
package parse

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strconv"

	"github.com/jingolang/jingo/ast"
	"github.com/jingolang/jingo/errortypes"
	"github.com/jingolang/jingo/value"
)

// Resolver resolves an include or extends target name to its source
// text. A miss (ok == false) becomes a parse error at the include/extends
// site reading "Template source not found: <name>".
type Resolver func(name string) (src string, ok bool)

// parser is the mutable state of a single template parse: a pushback
// stack over the lexer's token stream, the read-only resolver and
// source name, the shared include-cycle guard, and the block table
// being accumulated for this template.
type parser struct {
	name       string
	lex        *lexer
	pushed     []item
	last       item
	resolver   Resolver
	inProgress map[string]bool
	blocks     map[string]*ast.Block
}

// Parse parses src as a template named sourceName. Include and extends
// targets are resolved through resolver.
func Parse(resolver Resolver, sourceName, src string) (*ast.Template, error) {
	return parseNamed(resolver, sourceName, src, map[string]bool{sourceName: true})
}

// ParseFile resolves sourceName through resolver and parses the result.
func ParseFile(resolver Resolver, sourceName string) (*ast.Template, error) {
	src, ok := resolver(sourceName)
	if !ok {
		return nil, errortypes.NewErrFilePosf(sourceName, 0, 0, "Template source not found: %s", sourceName)
	}
	return Parse(resolver, sourceName, src)
}

// parseNamed parses a single template, sharing inProgress (the
// include-cycle guard) with whichever parse chain led here.
func parseNamed(resolver Resolver, sourceName, src string, inProgress map[string]bool) (tmpl *ast.Template, err error) {
	p := &parser{
		name:       sourceName,
		lex:        lex(sourceName, src),
		resolver:   resolver,
		inProgress: inProgress,
		blocks:     make(map[string]*ast.Block),
	}
	defer p.recover(&err)
	tmpl = p.parseTemplate()
	return tmpl, nil
}

// resolveRelative joins name against the directory of the currently
// parsing source, unless name is already absolute.
func (p *parser) resolveRelative(name string) string {
	if path.IsAbs(name) {
		return name
	}
	return path.Join(path.Dir(p.name), name)
}

// parseReference resolves and fully parses an include/extends target,
// guarding against include cycles via p.inProgress.
func (p *parser) parseReference(tok item, name, verb string) *ast.Template {
	resolved := p.resolveRelative(name)
	if p.inProgress[resolved] {
		p.errorfAt(tok, "include cycle: %s", resolved)
	}
	src, ok := p.resolver(resolved)
	if !ok {
		p.errorfAt(tok, "Template source not found: %s", resolved)
	}
	p.inProgress[resolved] = true
	sub, err := parseNamed(p.resolver, resolved, src, p.inProgress)
	delete(p.inProgress, resolved)
	if err != nil {
		p.errorfAt(tok, "%s %q: %v", verb, resolved, err)
	}
	return sub
}

// --- top-level template ---

func (p *parser) parseTemplate() *ast.Template {
	tmpl := &ast.Template{Name: p.name, Blocks: p.blocks}
	if parentTok, parentName, ok := p.tryParseExtends(); ok {
		tmpl.Parent = p.parseReference(parentTok, parentName, "extends")
		p.parseDerivedBody()
		tmpl.Body = &ast.NullNode{}
		return tmpl
	}
	tmpl.Body = p.parseMulti()
	return tmpl
}

// tryParseExtends recognizes an optional leading all-whitespace text
// token followed by `{% extends "name" %}`, rewinding fully if the
// pattern doesn't match.
func (p *parser) tryParseExtends() (tok item, name string, ok bool) {
	la := p.startLookahead()
	first := la.next()
	if first.typ == itemText && isAllWhitespace(first.val) {
		first = la.next()
	}
	if first.typ != itemStmtOpen {
		la.rewind()
		return item{}, "", false
	}
	kw := la.next()
	if kw.typ != itemIdent || kw.val != "extends" {
		la.rewind()
		return item{}, "", false
	}
	nameTok := la.next()
	if nameTok.typ != itemString {
		la.rewind()
		return item{}, "", false
	}
	closeTok := la.next()
	if closeTok.typ != itemStmtClose {
		la.rewind()
		return item{}, "", false
	}
	return nameTok, unquote(nameTok.val), true
}

// parseDerivedBody parses the zero-or-more `{% block %}...{% endblock %}`
// definitions that make up a derived template's content, skipping
// whitespace-only text between them.
func (p *parser) parseDerivedBody() {
	for {
		tok := p.peek()
		if tok.typ == itemEOF {
			p.next()
			return
		}
		if tok.typ == itemText {
			p.next()
			if !isAllWhitespace(tok.val) {
				p.errorfAt(tok, "unexpected content in derived template (expected only block definitions)")
			}
			continue
		}
		if tok.typ != itemStmtOpen {
			p.unexpected(tok, "derived template (expected a block definition)")
		}
		tagTok := p.next()
		kw := p.expect(itemIdent, "derived template")
		if kw.val != "block" {
			p.unexpected(kw, "derived template (expected 'block')")
		}
		p.parseBlock(tagTok)
	}
}

// --- statement sequences ---

// parseMulti parses statements until one of enders matches as the
// upcoming `{% word %}` tag (without consuming it), or, if enders is
// empty, until end of input (which it does consume).
func (p *parser) parseMulti(enders ...string) *ast.MultiNode {
	m := &ast.MultiNode{Pos: p.peek().pos}
	for {
		if len(enders) > 0 {
			if _, ok := p.peekStmtKeyword(enders...); ok {
				return m
			}
		}
		if p.peek().typ == itemEOF {
			if len(enders) == 0 {
				p.next()
				return m
			}
			p.errorf("unexpected end of input")
		}
		n := p.parseStatement()
		if n != nil {
			if _, isNull := n.(*ast.NullNode); !isNull {
				m.Nodes = append(m.Nodes, n)
			}
		}
	}
}

func (p *parser) parseStatement() ast.Node {
	tok := p.next()
	switch tok.typ {
	case itemText:
		if tok.val == "" {
			return nil
		}
		return &ast.LiteralNode{Pos: tok.pos, Html: value.Html(tok.val)}
	case itemInterpOpen:
		return p.parseInterpolation(tok)
	case itemStmtOpen:
		return p.parseTag(tok)
	case itemEOF:
		p.errorf("unexpected end of input")
	default:
		p.unexpected(tok, "template")
	}
	return nil
}

func (p *parser) parseInterpolation(tok item) ast.Node {
	expr := p.parseExpr(0)
	p.expect(itemInterpClose, "interpolation")
	return &ast.InterpolationNode{Pos: tok.pos, Expr: expr}
}

// parseTag parses the contents of a `{% ... %}` tag; tok is the
// already-consumed stmtOpen token.
func (p *parser) parseTag(tok item) ast.Node {
	kw := p.expect(itemIdent, "statement tag")
	switch kw.val {
	case "if":
		return p.parseIf(tok)
	case "set":
		return p.parseSet(tok)
	case "for":
		return p.parseFor(tok)
	case "include":
		return p.parseInclude(tok)
	case "macro":
		return p.parseMacro(tok)
	case "block":
		return p.parseBlock(tok)
	case "call":
		return p.parseCall(tok)
	case "scope":
		return p.parseScope(tok)
	default:
		p.unexpected(kw, "statement tag")
	}
	return nil
}

// --- individual statement forms ---

func (p *parser) parseIf(tok item) ast.Node {
	cond := p.parseExpr(0)
	p.expect(itemStmtClose, "if")
	then := p.parseMulti("elif", "else", "endif")
	kw := p.expectStmtKeyword("elif", "else", "endif")
	switch kw.val {
	case "elif":
		elseNode := p.parseIf(kw)
		return &ast.IfNode{Pos: tok.pos, Cond: cond, Then: then, Else: elseNode}
	case "else":
		p.expect(itemStmtClose, "if")
		elseBody := p.parseMulti("endif")
		p.expectStmtKeyword("endif")
		p.expect(itemStmtClose, "if")
		return &ast.IfNode{Pos: tok.pos, Cond: cond, Then: then, Else: elseBody}
	default: // "endif"
		p.expect(itemStmtClose, "if")
		return &ast.IfNode{Pos: tok.pos, Cond: cond, Then: then}
	}
}

func (p *parser) parseSet(tok item) ast.Node {
	name := p.expect(itemIdent, "set")
	p.expect(itemEquals, "set")
	expr := p.parseExpr(0)
	p.expect(itemStmtClose, "set")
	return &ast.SetVarNode{Pos: tok.pos, Name: name.val, Expr: expr}
}

func (p *parser) parseFor(tok item) ast.Node {
	var valueVar, indexVar string
	var iteree ast.Node
	if vv, iv, ok := p.tryParseForIterIn(); ok {
		valueVar, indexVar = vv, iv
		iteree = p.parseExpr(0)
	} else {
		iteree = p.parseExpr(0)
		asKw := p.expect(itemIdent, "for")
		if asKw.val != "as" {
			p.unexpected(asKw, "for (expected 'as')")
		}
		valueVar, indexVar = p.parseIterVars()
	}
	p.expect(itemStmtClose, "for")
	body := p.parseMulti("endfor")
	p.expectStmtKeyword("endfor")
	p.expect(itemStmtClose, "for")
	return &ast.ForNode{Pos: tok.pos, ValueVar: valueVar, IndexVar: indexVar, Iteree: iteree, Body: body}
}

// tryParseForIterIn recognizes `var in` or `index, var in`, returning
// (valueVar, indexVar) with indexVar == "" for the single-identifier
// form. Rewinds fully on failure.
func (p *parser) tryParseForIterIn() (valueVar, indexVar string, ok bool) {
	la := p.startLookahead()
	first := la.next()
	if first.typ != itemIdent {
		la.rewind()
		return "", "", false
	}
	second := la.next()
	if second.typ == itemComma {
		third := la.next()
		if third.typ != itemIdent {
			la.rewind()
			return "", "", false
		}
		fourth := la.next()
		if fourth.typ != itemIdent || fourth.val != "in" {
			la.rewind()
			return "", "", false
		}
		return third.val, first.val, true
	}
	if second.typ != itemIdent || second.val != "in" {
		la.rewind()
		return "", "", false
	}
	return first.val, "", true
}

// parseIterVars parses `var` or `index, var` (mandatory, no rewind).
func (p *parser) parseIterVars() (valueVar, indexVar string) {
	first := p.expect(itemIdent, "for")
	if p.peek().typ == itemComma {
		p.next()
		second := p.expect(itemIdent, "for")
		return second.val, first.val
	}
	return first.val, ""
}

func (p *parser) parseInclude(tok item) ast.Node {
	nameTok := p.expect(itemString, "include")
	p.expect(itemStmtClose, "include")
	sub := p.parseReference(nameTok, unquote(nameTok.val), "include")
	return &ast.IncludeNode{Pos: tok.pos, Template: sub}
}

func (p *parser) parseMacro(tok item) ast.Node {
	name := p.expect(itemIdent, "macro")
	args := p.parseParamList()
	p.expect(itemStmtClose, "macro")
	body := p.parseMulti("endmacro")
	p.expectStmtKeyword("endmacro")
	p.consumeOptionalTrailingName()
	p.expect(itemStmtClose, "macro")
	return &ast.MacroNode{Pos: tok.pos, Name: name.val, Args: args, Body: body}
}

func (p *parser) parseBlock(tok item) ast.Node {
	name := p.expect(itemIdent, "block")
	p.expect(itemStmtClose, "block")
	body := p.parseMulti("endblock")
	p.expectStmtKeyword("endblock")
	p.consumeOptionalTrailingName()
	p.expect(itemStmtClose, "block")
	p.blocks[name.val] = &ast.Block{Name: name.val, Body: body}
	return &ast.BlockRefNode{Pos: tok.pos, Name: name.val}
}

// parseCall desugars `{% call (optArgs) expr %} body {% endcall %}`
// into Scoped(Multi[Macro("caller", optArgs, body), Interpolation(expr)]).
func (p *parser) parseCall(tok item) ast.Node {
	var params []string
	if p.peek().typ == itemLeftParen {
		params = p.parseParamList()
	}
	expr := p.parseExpr(0)
	p.expect(itemStmtClose, "call")
	body := p.parseMulti("endcall")
	p.expectStmtKeyword("endcall")
	p.expect(itemStmtClose, "call")
	macro := &ast.MacroNode{Pos: tok.pos, Name: "caller", Args: params, Body: body}
	interp := &ast.InterpolationNode{Pos: tok.pos, Expr: expr}
	multi := &ast.MultiNode{Pos: tok.pos, Nodes: []ast.Node{macro, interp}}
	return &ast.ScopedNode{Pos: tok.pos, Body: multi}
}

func (p *parser) parseScope(tok item) ast.Node {
	p.expect(itemStmtClose, "scope")
	body := p.parseMulti("endscope")
	p.expectStmtKeyword("endscope")
	p.expect(itemStmtClose, "scope")
	return &ast.ScopedNode{Pos: tok.pos, Body: body}
}

// parseParamList parses "(" [ident ("," ident)*] ")".
func (p *parser) parseParamList() []string {
	p.expect(itemLeftParen, "parameter list")
	var params []string
	if p.peek().typ == itemRightParen {
		p.next()
		return params
	}
	for {
		id := p.expect(itemIdent, "parameter list")
		params = append(params, id.val)
		switch nt := p.next(); nt.typ {
		case itemComma:
			continue
		case itemRightParen:
			return params
		default:
			p.unexpected(nt, "parameter list")
		}
	}
}

// consumeOptionalTrailingName consumes the optional, unchecked name
// after `endblock`/`endmacro`.
func (p *parser) consumeOptionalTrailingName() {
	if p.peek().typ == itemIdent {
		p.next()
	}
}

// --- expressions ---

// precedence assigns a binding strength to each binary operator level;
// higher binds tighter. Lambda is not in this table: it is recognized
// structurally at the start of parseExpr(0), not via precedence.
var precedence = map[itemType]int{
	itemOr:  2,
	itemAnd: 2,

	itemEq:    3,
	itemNotEq: 3,
	itemGt:    3,
	itemGte:   3,
	itemLt:    3,
	itemLte:   3,

	itemPlus:  4,
	itemMinus: 4,
	itemTilde: 4,

	itemMul:  5,
	itemIDiv: 5,
	itemDiv:  5,
	itemMod:  5,
}

// opFuncName names the builtin function each binary operator desugars
// into, per the postfix/precedence grammar.
var opFuncName = map[itemType]string{
	itemOr:  "any",
	itemAnd: "all",

	itemEq:    "equals",
	itemNotEq: "nequals",
	itemGte:   "greaterEquals",
	itemLte:   "lessEquals",
	itemGt:    "greater",
	itemLt:    "less",

	itemPlus:  "sum",
	itemMinus: "difference",
	itemTilde: "concat",

	itemMul:  "product",
	itemIDiv: "int_ratio",
	itemDiv:  "ratio",
	itemMod:  "modulo",
}

// parseExpr parses an expression using precedence climbing. At prec
// 0 (the outermost call for any expression position), a lambda is
// tried first since it is the loosest-binding production.
func (p *parser) parseExpr(prec int) ast.Node {
	if prec == 0 {
		if n, ok := p.tryParseLambda(); ok {
			return n
		}
	}
	n := p.parsePostfix(p.parseAtomic())
	for {
		tok := p.peek()
		q, isOp := precedence[tok.typ]
		if !isOp || q < prec {
			return n
		}
		p.next()
		rhs := p.parseExpr(q + 1)
		n = &ast.CallNode{
			Pos:    tok.pos,
			Callee: &ast.VarNode{Pos: tok.pos, Name: opFuncName[tok.typ]},
			Args:   []ast.CallArg{{Value: n}, {Value: rhs}},
		}
	}
}

// tryParseLambda recognizes `(name, ...) -> expr`, rewinding fully if
// the parenthesized run doesn't resolve to an arrow.
func (p *parser) tryParseLambda() (ast.Node, bool) {
	la := p.startLookahead()
	open := la.next()
	if open.typ != itemLeftParen {
		la.rewind()
		return nil, false
	}
	var params []string
	if tok := la.next(); tok.typ != itemRightParen {
		for {
			if tok.typ != itemIdent {
				la.rewind()
				return nil, false
			}
			params = append(params, tok.val)
			sep := la.next()
			if sep.typ == itemRightParen {
				break
			}
			if sep.typ != itemComma {
				la.rewind()
				return nil, false
			}
			tok = la.next()
		}
	}
	arrow := la.next()
	if arrow.typ != itemArrow {
		la.rewind()
		return nil, false
	}
	body := p.parseExpr(0)
	return &ast.LambdaNode{Pos: open.pos, Params: params, Body: body}, true
}

// parsePostfix applies zero or more of `.ident`, `[expr]`, `(args)`,
// `| filter(args?)` to base, left to right.
func (p *parser) parsePostfix(base ast.Node) ast.Node {
	for {
		switch tok := p.peek(); tok.typ {
		case itemDot:
			p.next()
			id := p.expect(itemIdent, "member access")
			base = &ast.MemberLookupNode{Pos: tok.pos, Base: base, Index: &ast.StringNode{Pos: id.pos, Value: id.val}}
		case itemLeftBracket:
			p.next()
			idx := p.parseExpr(0)
			p.expect(itemRightBracket, "index")
			base = &ast.MemberLookupNode{Pos: tok.pos, Base: base, Index: idx}
		case itemLeftParen:
			p.next()
			args := p.parseCallArgs()
			base = &ast.CallNode{Pos: tok.pos, Callee: base, Args: args}
		case itemPipe:
			p.next()
			callee, args := p.parseFilterTarget()
			base = &ast.CallNode{Pos: tok.pos, Callee: callee, Args: append([]ast.CallArg{{Value: base}}, args...)}
		default:
			return base
		}
	}
}

// parseFilterTarget parses the filter name and optional call arguments
// following a `|`.
func (p *parser) parseFilterTarget() (ast.Node, []ast.CallArg) {
	tok := p.expect(itemIdent, "filter")
	callee := ast.Node(&ast.VarNode{Pos: tok.pos, Name: tok.val})
	if p.peek().typ == itemLeftParen {
		p.next()
		return callee, p.parseCallArgs()
	}
	return callee, nil
}

// parseCallArgs parses call arguments up to and including the closing
// `)`; the opening `(` has already been consumed.
func (p *parser) parseCallArgs() []ast.CallArg {
	var args []ast.CallArg
	if p.peek().typ == itemRightParen {
		p.next()
		return args
	}
	for {
		args = append(args, p.parseCallArg())
		switch tok := p.next(); tok.typ {
		case itemComma:
			continue
		case itemRightParen:
			return args
		default:
			p.unexpected(tok, "call arguments")
		}
	}
}

// parseCallArg parses one argument, detecting the named form
// `ident = expr` by peeking past a leading identifier for `=`.
func (p *parser) parseCallArg() ast.CallArg {
	if p.peek().typ == itemIdent {
		save := p.next()
		if p.peek().typ == itemEquals {
			p.next()
			return ast.CallArg{Name: save.val, Value: p.parseExpr(0)}
		}
		p.push(save)
	}
	return ast.CallArg{Value: p.parseExpr(0)}
}

// parseAtomic parses a parenthesized expression, object/list literal,
// or primitive/variable.
func (p *parser) parseAtomic() ast.Node {
	tok := p.next()
	switch tok.typ {
	case itemLeftParen:
		n := p.parseExpr(0)
		p.expect(itemRightParen, "parenthesized expression")
		return n
	case itemLeftBrace:
		return p.parseMapLiteral(tok)
	case itemLeftBracket:
		return p.parseListLiteral(tok)
	case itemString:
		return &ast.StringNode{Pos: tok.pos, Value: unquote(tok.val)}
	case itemNumber:
		f, err := strconv.ParseFloat(tok.val, 64)
		if err != nil {
			p.errorfAt(tok, "invalid number literal %q", tok.val)
		}
		return &ast.NumberNode{Pos: tok.pos, Value: f}
	case itemIdent:
		switch tok.val {
		case "true":
			return &ast.BoolNode{Pos: tok.pos, Value: true}
		case "false":
			return &ast.BoolNode{Pos: tok.pos, Value: false}
		case "null":
			return &ast.NullValueNode{Pos: tok.pos}
		default:
			return &ast.VarNode{Pos: tok.pos, Name: tok.val}
		}
	default:
		p.unexpected(tok, "expression")
	}
	return nil
}

func (p *parser) parseListLiteral(tok item) ast.Node {
	var items []ast.Node
	if p.peek().typ == itemRightBracket {
		p.next()
		return &ast.ListNode{Pos: tok.pos, Items: items}
	}
	for {
		items = append(items, p.parseExpr(0))
		switch nt := p.next(); nt.typ {
		case itemComma:
			if p.peek().typ == itemRightBracket {
				p.next()
				return &ast.ListNode{Pos: tok.pos, Items: items}
			}
			continue
		case itemRightBracket:
			return &ast.ListNode{Pos: tok.pos, Items: items}
		default:
			p.unexpected(nt, "list literal")
		}
	}
}

func (p *parser) parseMapLiteral(tok item) ast.Node {
	var pairs []ast.MapPair
	if p.peek().typ == itemRightBrace {
		p.next()
		return &ast.MapNode{Pos: tok.pos, Pairs: pairs}
	}
	for {
		key := p.parseExpr(0)
		p.expect(itemColon, "map literal")
		val := p.parseExpr(0)
		pairs = append(pairs, ast.MapPair{Key: key, Value: val})
		switch nt := p.next(); nt.typ {
		case itemComma:
			if p.peek().typ == itemRightBrace {
				p.next()
				return &ast.MapNode{Pos: tok.pos, Pairs: pairs}
			}
			continue
		case itemRightBrace:
			return &ast.MapNode{Pos: tok.pos, Pairs: pairs}
		default:
			p.unexpected(nt, "map literal")
		}
	}
}

// --- token stream helpers ---

// next returns the next token, preferring the pushback stack.
func (p *parser) next() item {
	var it item
	if n := len(p.pushed); n > 0 {
		it = p.pushed[n-1]
		p.pushed = p.pushed[:n-1]
	} else {
		it = p.lex.nextItem()
	}
	p.last = it
	return it
}

// push returns a token to the stream, to be re-read by the next next().
func (p *parser) push(it item) {
	p.pushed = append(p.pushed, it)
}

// peek returns the next token without consuming it.
func (p *parser) peek() item {
	it := p.next()
	p.push(it)
	return it
}

// lookahead records tokens consumed through it so a speculative parse
// attempt can rewind them all on failure. Used where the grammar
// requires unbounded lookahead: lambda params, the extends prologue,
// and the for-loop iterator-vs-expression disambiguation.
type lookahead struct {
	p        *parser
	consumed []item
}

func (p *parser) startLookahead() *lookahead { return &lookahead{p: p} }

func (la *lookahead) next() item {
	it := la.p.next()
	la.consumed = append(la.consumed, it)
	return it
}

func (la *lookahead) rewind() {
	for i := len(la.consumed) - 1; i >= 0; i-- {
		la.p.push(la.consumed[i])
	}
	la.consumed = nil
}

// peekStmtKeyword reports whether the upcoming tokens are `{% word %}`
// (stmtOpen followed by an ident in words) without consuming anything.
func (p *parser) peekStmtKeyword(words ...string) (string, bool) {
	a := p.next()
	if a.typ != itemStmtOpen {
		p.push(a)
		return "", false
	}
	b := p.next()
	p.push(b)
	p.push(a)
	if b.typ == itemIdent && containsString(words, b.val) {
		return b.val, true
	}
	return "", false
}

// expectStmtKeyword consumes `{% word %}`'s opening two tokens
// (stmtOpen + ident), requiring the ident to be one of words.
func (p *parser) expectStmtKeyword(words ...string) item {
	p.expect(itemStmtOpen, "statement tag")
	kw := p.expect(itemIdent, "statement tag")
	if !containsString(words, kw.val) {
		p.unexpected(kw, fmt.Sprintf("statement tag (expected one of %v)", words))
	}
	return kw
}

// expect consumes the next token and guarantees it has the given type.
func (p *parser) expect(expected itemType, context string) item {
	tok := p.next()
	if tok.typ != expected {
		p.unexpected(tok, fmt.Sprintf("%s (expected %v)", context, expected))
	}
	return tok
}

// unexpected panics with a parse error describing the offending token.
func (p *parser) unexpected(token item, context string) {
	if token.typ == itemError {
		p.errorfAt(token, "lexical error: %v", token.val)
	}
	p.errorfAt(token, "unexpected %v in %s", token, context)
}

// errorf panics with a parse error positioned at the last token read.
func (p *parser) errorf(format string, args ...interface{}) {
	p.errorfAt(p.last, format, args...)
}

// errorfAt panics with a parse error positioned at tok.
func (p *parser) errorfAt(tok item, format string, args ...interface{}) {
	line := p.lex.lineNumber(tok.pos)
	col := p.lex.columnNumber(tok.pos)
	panic(errortypes.NewErrFilePosf(p.name, line, col, format, args...))
}

// recover turns a parse-error panic into a return from Parse/ParseFile.
func (p *parser) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	switch v := e.(type) {
	case error:
		*errp = v
	case string:
		*errp = errors.New(v)
	default:
		panic(e)
	}
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
