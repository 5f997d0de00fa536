/*
File    : pidgin-go/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a hand-written recursive-descent parser for
// Pidgin, with one token of lookahead (CurrToken/NextToken). Unlike a
// Pratt parser driven by per-token function maps, expression precedence
// here is an explicit chain of methods — assignment, equality,
// comparison, term, factor, unary, primary — because Pidgin's operator
// set is small and fixed; a function-table indirection would only add
// ceremony.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/pidgin-go/lexer"
)

// Parser holds the token stream and accumulated parse errors. The zero
// value is not usable; construct with NewParser.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []string
}

// NewParser creates a Parser over src and primes the two-token lookahead.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.advance()
	par.advance()
	return par
}

// advance moves the lookahead window forward by one token: CurrToken
// becomes the old NextToken, and a fresh token is pulled from the lexer.
// A lexical error is recorded and the stream is treated as exhausted so
// the parser does not loop forever on malformed input.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	tok, err := par.Lex.NextToken()
	if err != nil {
		par.addError(err.Error())
		tok = lexer.Token{Type: lexer.EOF, Line: par.CurrToken.Line, Column: par.CurrToken.Column}
	}
	par.NextToken = tok
}

// expectNext reports whether NextToken has the expected type, recording a
// diagnostic (without advancing) if it does not.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: expected %s, got %s",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type))
		return false
	}
	return true
}

// expectAdvance checks NextToken against expected and, if it matches,
// advances past it.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

func (par *Parser) HasErrors() bool  { return len(par.Errors) > 0 }
func (par *Parser) GetErrors() []string { return par.Errors }

// skipNewlines consumes any run of stray NEWLINE tokens sitting at
// CurrToken; the parser only skips them where the grammar says a
// statement boundary may occur, never inside an expression.
func (par *Parser) skipNewlines() {
	for par.CurrToken.Type == lexer.NEWLINE {
		par.advance()
	}
}

// Parse consumes the whole token stream and returns the resulting
// Program. Parse errors are collected in par.Errors rather than
// panicking; callers should check HasErrors after calling Parse.
func (par *Parser) Parse() *Program {
	prog := &Program{}
	par.skipNewlines()
	for par.CurrToken.Type != lexer.EOF {
		stmt := par.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			par.advance() // skip past a malformed statement so parsing always makes progress
		}
		par.skipNewlines()
	}
	return prog
}

// ---- Statements ----

func (par *Parser) parseStatement() Stmt {
	switch par.CurrToken.Type {
	case lexer.GET:
		return par.parseImportStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	case lexer.PRINT:
		return par.parsePrintStatement()
	case lexer.LET:
		return par.parseVarDeclStatement()
	case lexer.FUNCTION:
		return par.parseFunctionDeclStatement()
	case lexer.IF:
		return par.parseIfStatement()
	case lexer.WHILE:
		return par.parseWhileStatement()
	case lexer.LBRACE:
		return par.parseBlockStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseImportStatement parses `get Name from mod;`, `get Name <- mod;`
// and `get {N1,N2} from mod.sub;`. The module path is a dot-separated
// identifier sequence, recombined with "." (see §9 decision 5 — the dots
// stay literal in the resolved filename).
func (par *Parser) parseImportStatement() Stmt {
	var names []string
	if par.NextToken.Type == lexer.LBRACE {
		par.advance() // consume '{'
		for {
			if !par.expectAdvance(lexer.IDENTIFIER) {
				return nil
			}
			names = append(names, par.CurrToken.Literal)
			if par.NextToken.Type == lexer.COMMA {
				par.advance()
				continue
			}
			break
		}
		if !par.expectAdvance(lexer.RBRACE) {
			return nil
		}
	} else {
		if !par.expectAdvance(lexer.IDENTIFIER) {
			return nil
		}
		names = append(names, par.CurrToken.Literal)
	}

	if par.NextToken.Type != lexer.FROM && par.NextToken.Type != lexer.LARROW {
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: expected from or <-, got %s",
			par.NextToken.Line, par.NextToken.Column, par.NextToken.Type))
		return nil
	}
	par.advance() // consume 'from' / '<-'

	if !par.expectAdvance(lexer.IDENTIFIER) {
		return nil
	}
	var moduleParts []string
	moduleParts = append(moduleParts, par.CurrToken.Literal)
	for par.NextToken.Type == lexer.DOT {
		par.advance() // consume '.'
		if !par.expectAdvance(lexer.IDENTIFIER) {
			return nil
		}
		moduleParts = append(moduleParts, par.CurrToken.Literal)
	}

	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()
	return &ImportStmt{Names: names, Module: strings.Join(moduleParts, ".")}
}

func (par *Parser) parseReturnStatement() Stmt {
	par.advance() // consume 'return'
	value := par.parseExpression()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()
	return &ReturnStmt{Value: value}
}

// parsePrintStatement handles both surface forms: `print expr, a, b;` and
// `print(expr, a, b);`.
func (par *Parser) parsePrintStatement() Stmt {
	par.advance() // consume 'print'
	parenthesized := par.CurrToken.Type == lexer.LPAREN
	if parenthesized {
		par.advance() // consume '('
	}

	format := par.parseExpression()
	var args []Expr
	for par.NextToken.Type == lexer.COMMA {
		par.advance() // consume ','
		par.advance() // move to next expression's first token
		args = append(args, par.parseExpression())
	}

	if parenthesized {
		if !par.expectAdvance(lexer.RPAREN) {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()
	return &PrintStmt{Format: format, Args: args}
}

func (par *Parser) parseVarDeclStatement() Stmt {
	if !par.expectNext(lexer.IDENTIFIER) {
		return nil
	}
	par.advance()
	name := par.CurrToken.Literal

	var init Expr
	if par.NextToken.Type == lexer.ASSIGN {
		par.advance() // consume identifier -> now at '='
		par.advance() // consume '=' -> now at first token of expr
		init = par.parseExpression()
	}

	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()
	return &VarDeclStmt{Name: name, Initializer: init}
}

func (par *Parser) parseFunctionDeclStatement() Stmt {
	if !par.expectNext(lexer.IDENTIFIER) {
		return nil
	}
	par.advance()
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	var params []string
	if par.NextToken.Type != lexer.RPAREN {
		for {
			if !par.expectAdvance(lexer.IDENTIFIER) {
				return nil
			}
			params = append(params, par.CurrToken.Literal)
			if par.NextToken.Type == lexer.COMMA {
				par.advance()
				continue
			}
			break
		}
	}
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectNext(lexer.LBRACE) {
		return nil
	}
	par.advance()
	body := par.parseBlockStatement()
	return &FunctionDeclStmt{Name: name, Params: params, Body: body}
}

func (par *Parser) parseBlockStatement() Stmt {
	par.advance() // consume '{'
	block := &BlockStmt{}
	par.skipNewlines()
	for par.CurrToken.Type != lexer.RBRACE && par.CurrToken.Type != lexer.EOF {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			par.advance() // skip past a malformed statement so parsing always makes progress
		}
		par.skipNewlines()
	}
	if par.CurrToken.Type != lexer.RBRACE {
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: expected }, got %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type))
		return block
	}
	par.advance() // consume '}'
	return block
}

func (par *Parser) parseIfStatement() Stmt {
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectNext(lexer.LBRACE) {
		return nil
	}
	par.advance()
	then := par.parseBlockStatement()

	var elseBranch Stmt
	if par.CurrToken.Type == lexer.ELSE {
		if par.NextToken.Type == lexer.IF {
			par.advance() // consume 'else'
			elseBranch = par.parseIfStatement()
		} else if !par.expectNext(lexer.LBRACE) {
			return nil
		} else {
			par.advance() // consume 'else'
			elseBranch = par.parseBlockStatement()
		}
	}
	return &IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

func (par *Parser) parseWhileStatement() Stmt {
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectNext(lexer.LBRACE) {
		return nil
	}
	par.advance()
	body := par.parseBlockStatement()
	return &WhileStmt{Cond: cond, Body: body}
}

func (par *Parser) parseExpressionStatement() Stmt {
	expr := par.parseExpression()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()
	return &ExpressionStmt{Expr: expr}
}

// ---- Expressions: assignment → equality → comparison → term → factor →
// unary → primary (with postfix call/method/index chaining). ----

func (par *Parser) parseExpression() Expr {
	return par.parseAssignment()
}

func (par *Parser) parseAssignment() Expr {
	left := par.parseEquality()
	if par.NextToken.Type == lexer.ASSIGN {
		ident, ok := left.(*Identifier)
		if !ok {
			par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: invalid assignment target",
				par.NextToken.Line, par.NextToken.Column))
			return left
		}
		par.advance() // move onto '='
		par.advance() // move onto first token of RHS
		value := par.parseAssignment()
		return &AssignmentExpr{Name: ident.Name, Value: value}
	}
	return left
}

func (par *Parser) parseEquality() Expr {
	left := par.parseComparison()
	for par.NextToken.Type == lexer.EQ || par.NextToken.Type == lexer.NOTEQ {
		op := Eq
		if par.NextToken.Type == lexer.NOTEQ {
			op = NotEq
		}
		line, col := par.NextToken.Line, par.NextToken.Column
		par.advance() // move onto operator
		par.advance() // move onto RHS first token
		right := par.parseComparison()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line, Column: col}
	}
	return left
}

func (par *Parser) parseComparison() Expr {
	left := par.parseTerm()
	for {
		var op BinaryOp
		switch par.NextToken.Type {
		case lexer.LT:
			op = Lt
		case lexer.GT:
			op = Gt
		case lexer.LTEQ:
			op = LtEq
		case lexer.GTEQ:
			op = GtEq
		default:
			return left
		}
		line, col := par.NextToken.Line, par.NextToken.Column
		par.advance()
		par.advance()
		right := par.parseTerm()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line, Column: col}
	}
}

func (par *Parser) parseTerm() Expr {
	left := par.parseFactor()
	for par.NextToken.Type == lexer.PLUS || par.NextToken.Type == lexer.MINUS {
		op := Add
		if par.NextToken.Type == lexer.MINUS {
			op = Sub
		}
		line, col := par.NextToken.Line, par.NextToken.Column
		par.advance()
		par.advance()
		right := par.parseFactor()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line, Column: col}
	}
	return left
}

func (par *Parser) parseFactor() Expr {
	left := par.parseUnary()
	for par.NextToken.Type == lexer.STAR || par.NextToken.Type == lexer.SLASH {
		op := Mul
		if par.NextToken.Type == lexer.SLASH {
			op = Div
		}
		line, col := par.NextToken.Line, par.NextToken.Column
		par.advance()
		par.advance()
		right := par.parseUnary()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line, Column: col}
	}
	return left
}

func (par *Parser) parseUnary() Expr {
	if par.CurrToken.Type == lexer.MINUS {
		par.advance()
		operand := par.parseUnary()
		return &UnaryExpr{Op: UnaryMinus, Operand: operand}
	}
	return par.parsePrimary()
}

// parsePrimary parses a primary expression and then repeatedly consumes
// postfix suffixes — call, method, index — in that order, as many times
// as the source offers them.
func (par *Parser) parsePrimary() Expr {
	expr := par.parsePrimaryBase()
	for {
		switch par.NextToken.Type {
		case lexer.LPAREN:
			ident, ok := expr.(*Identifier)
			if !ok {
				return expr
			}
			par.advance() // move onto '('
			args := par.parseCallArgs()
			expr = &FunctionCallExpr{Name: ident.Name, Args: args}
		case lexer.DOT:
			par.advance() // move onto '.'
			expr = par.parseMethodCall(expr)
		case lexer.LBRACKET:
			par.advance() // move onto '['
			par.advance() // move onto index expression
			index := par.parseExpression()
			if !par.expectAdvance(lexer.RBRACKET) {
				return expr
			}
			expr = &IndexExpr{Array: expr, Index: index}
		default:
			return expr
		}
	}
}

// parseCallArgs parses a parenthesized, comma-separated argument list.
// CurrToken is '(' on entry; on exit CurrToken is ')'.
func (par *Parser) parseCallArgs() []Expr {
	var args []Expr
	if par.NextToken.Type == lexer.RPAREN {
		par.advance()
		return args
	}
	par.advance()
	args = append(args, par.parseExpression())
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		args = append(args, par.parseExpression())
	}
	par.expectAdvance(lexer.RPAREN)
	return args
}

var zeroArgMethods = map[string]bool{
	"pop": true, "length": true, "clear": true, "reverse": true,
	"toUpper": true, "toLower": true, "trim": true,
	"getYear": true, "getMonth": true, "getDay": true, "keys": true,
}

var oneArgMethods = map[string]bool{
	"push": true, "remove": true, "get": true, "has": true, "format": true,
}

var twoArgMethods = map[string]bool{
	"insert": true, "set": true,
}

// parseMethodCall parses `.name(args)` with method-name-directed arity,
// per §4.2. CurrToken is '.' on entry.
func (par *Parser) parseMethodCall(object Expr) Expr {
	if par.NextToken.Type != lexer.IDENTIFIER && par.NextToken.Type != lexer.GET {
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: expected method name, got %s",
			par.NextToken.Line, par.NextToken.Column, par.NextToken.Type))
		return object
	}
	par.advance()
	method := par.CurrToken.Literal

	if method == "replaceChar" {
		if !par.expectAdvance(lexer.LPAREN) {
			return object
		}
		if !par.expectAdvance(lexer.BACKTICK) {
			return object
		}
		transform := par.parseTransform()
		if !par.expectAdvance(lexer.BACKTICK) {
			return object
		}
		if !par.expectAdvance(lexer.RPAREN) {
			return object
		}
		return &MethodCallExpr{Object: object, Method: method, Args: []Expr{transform}}
	}

	if zeroArgMethods[method] {
		if !par.expectAdvance(lexer.LPAREN) {
			return object
		}
		if !par.expectAdvance(lexer.RPAREN) {
			return object
		}
		return &MethodCallExpr{Object: object, Method: method, Args: []Expr{&NilLit{}}}
	}

	if oneArgMethods[method] {
		if !par.expectAdvance(lexer.LPAREN) {
			return object
		}
		par.advance()
		arg := par.parseExpression()
		if !par.expectAdvance(lexer.RPAREN) {
			return object
		}
		return &MethodCallExpr{Object: object, Method: method, Args: []Expr{arg}}
	}

	if twoArgMethods[method] {
		if !par.expectAdvance(lexer.LPAREN) {
			return object
		}
		par.advance()
		first := par.parseExpression()
		if !par.expectAdvance(lexer.COMMA) {
			return object
		}
		par.advance()
		second := par.parseExpression()
		if !par.expectAdvance(lexer.RPAREN) {
			return object
		}
		return &MethodCallExpr{Object: object, Method: method, Args: []Expr{first, second}}
	}

	par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: unsupported method name %q",
		par.CurrToken.Line, par.CurrToken.Column, method))
	return object
}

// parseTransform parses `from -> to` where each side is a brace-wrapped
// identifier or a single bare token (an identifier or a punctuator such
// as `,` or `;`), taken by its literal text. CurrToken is the backtick on
// entry; on exit CurrToken is the last token before the closing backtick.
func (par *Parser) parseTransform() *TransformArg {
	from := par.parseTransformSide()
	if !par.expectAdvance(lexer.ARROW) {
		return &TransformArg{From: from}
	}
	to := par.parseTransformSide()
	return &TransformArg{From: from, To: to}
}

func (par *Parser) parseTransformSide() string {
	if par.NextToken.Type == lexer.LBRACE {
		par.advance() // consume '{'
		if !par.expectAdvance(lexer.IDENTIFIER) {
			return ""
		}
		name := par.CurrToken.Literal
		par.expectAdvance(lexer.RBRACE)
		return name
	}
	switch par.NextToken.Type {
	case lexer.ARROW, lexer.BACKTICK, lexer.EOF:
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: expected transform side, got %s",
			par.NextToken.Line, par.NextToken.Column, par.NextToken.Type))
		return ""
	}
	par.advance()
	return par.CurrToken.Literal
}

func (par *Parser) parsePrimaryBase() Expr {
	switch par.CurrToken.Type {
	case lexer.NUMBER:
		v, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
		if err != nil {
			par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: malformed number %q",
				par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal))
			v = 0
		}
		return &NumberLit{Value: v}
	case lexer.STRING:
		return &StringLit{Value: par.CurrToken.Literal}
	case lexer.TRUE:
		return &BooleanLit{Value: true}
	case lexer.FALSE:
		return &BooleanLit{Value: false}
	case lexer.IDENTIFIER:
		return &Identifier{Name: par.CurrToken.Literal}
	case lexer.LPAREN:
		par.advance() // consume '('
		expr := par.parseExpression()
		par.expectAdvance(lexer.RPAREN)
		return expr
	case lexer.LBRACKET:
		return par.parseFixedArray()
	case lexer.LBRACE:
		return par.parseDynamicArray()
	default:
		par.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: unexpected token %s in expression",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type))
		par.advance()
		return &NilLit{}
	}
}

func (par *Parser) parseFixedArray() Expr {
	par.advance() // consume '['
	elems := par.parseExprListUntil(lexer.RBRACKET)
	return &FixedArrayLit{Elements: elems}
}

func (par *Parser) parseDynamicArray() Expr {
	par.advance() // consume '{'
	elems := par.parseExprListUntil(lexer.RBRACE)
	return &DynamicArrayLit{Elements: elems}
}

// parseExprListUntil parses a comma-separated expression list up to the
// closing delimiter. CurrToken is the first element's token (or the
// closing delimiter itself, for an empty list) on entry; on exit
// CurrToken is the closing delimiter.
func (par *Parser) parseExprListUntil(closing lexer.TokenType) []Expr {
	var elems []Expr
	if par.CurrToken.Type == closing {
		return elems
	}
	elems = append(elems, par.parseExpression())
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		elems = append(elems, par.parseExpression())
	}
	par.expectAdvance(closing)
	return elems
}
