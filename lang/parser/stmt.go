package parser

import (
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/token"
)

// parseCrate parses the top-level "fn*" production into an *ast.Crate.
func (p *parser) parseCrate() *ast.Crate {
	var crate ast.Crate
	for p.tok != token.EOF {
		crate.Fns = append(crate.Fns, p.parseFn())
	}
	return &crate
}

// parseFn parses "ident '(' params? ')' '{' stmt* '}'".
func (p *parser) parseFn() *ast.Fn {
	var fn ast.Fn

	namePos := p.pos()
	fn.StartPos = namePos
	fn.NamePos = namePos
	fn.Name = p.lit
	p.expectFatal(token.IDENT)

	p.expectFatal(token.LPAREN)
	if p.tok != token.RPAREN {
		fn.Params = append(fn.Params, p.parseParam())
		for {
			if _, ok := p.eat(token.COMMA); !ok {
				break
			}
			fn.Params = append(fn.Params, p.parseParam())
		}
	}
	p.expectFatal(token.RPAREN)

	fn.Body = p.parseBlock()
	_, fn.EndPos = fn.Body.Span()
	return &fn
}

func (p *parser) parseParam() ast.Param {
	pos := p.pos()
	name := p.lit
	p.expectFatal(token.IDENT)
	return ast.Param{Name: name, Ty: ast.TyInt, Pos: pos}
}

// parseBlock parses "'{' stmt* '}'".
func (p *parser) parseBlock() *ast.BlockStmt {
	block := &ast.BlockStmt{Id: p.newID()}
	block.Start = p.expectFatal(token.LBRACE)

	for p.tok != token.RBRACE && p.tok != token.EOF {
		if s := p.parseStmt(); s != nil {
			block.Stmts = append(block.Stmts, s)
		}
	}
	block.End = p.expectFatal(token.RBRACE)
	return block
}

// parseStmt parses one statement, recovering from a panic-mode error by
// synchronizing to the next statement boundary and discarding the partial
// node (the caller receives nil, meaning "skip").
func (p *parser) parseStmt() (stmt ast.Stmt) {
	start := p.pos()

	defer func() {
		if r := recover(); r != nil {
			if r == errPanicMode {
				p.syncAfterError()
				stmt = &ast.NullStmt{Id: p.newID(), Pos: start}
				return
			}
			panic(r)
		}
	}()

	switch p.tok {
	case token.SEMI:
		pos := p.pos()
		p.advance()
		return &ast.NullStmt{Id: p.newID(), Pos: pos}

	case token.LBRACE:
		return p.parseBlock()

	case token.RETURN:
		return p.parseReturnStmt()

	case token.IF:
		return p.parseIfStmt()

	case token.WHILE:
		return p.parseWhileStmt()

	case token.FOR:
		return p.parseForStmt()

	case token.INT_KW:
		return p.parseDeclStmt()

	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	id := p.newID()
	kw := p.expect(token.RETURN)
	expr := p.parseExpr()
	semi := p.expect(token.SEMI)
	return &ast.ReturnStmt{Id: id, Kw: kw, Expr: expr, Semi: semi}
}

func (p *parser) parseIfStmt() *ast.IfStmt {
	id := p.newID()
	kw := p.expectFatal(token.IF)
	p.expectFatal(token.LPAREN)
	cond := p.parseExpr()
	p.expectFatal(token.RPAREN)
	then := p.parseStmt()

	var elseStmt ast.Stmt
	if _, ok := p.eat(token.ELSE); ok {
		elseStmt = p.parseStmt()
	}
	return &ast.IfStmt{Id: id, Kw: kw, Cond: cond, Then: then, Else: elseStmt}
}

func (p *parser) parseWhileStmt() *ast.WhileStmt {
	id := p.newID()
	kw := p.expectFatal(token.WHILE)
	p.expectFatal(token.LPAREN)
	cond := p.parseExpr()
	p.expectFatal(token.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{Id: id, Kw: kw, Cond: cond, Body: body}
}

// parseForStmt parses "'for' '(' expr_stmt expr_stmt expr? ')' stmt".
func (p *parser) parseForStmt() *ast.ForStmt {
	id := p.newID()
	kw := p.expectFatal(token.FOR)
	p.expectFatal(token.LPAREN)

	init := p.parseExprStmtExpr()
	cond := p.parseExprStmtExpr()

	var incr ast.Expr
	if p.tok != token.RPAREN {
		incr = p.parseExpr()
	}
	p.expectFatal(token.RPAREN)
	body := p.parseStmt()

	return &ast.ForStmt{Id: id, Kw: kw, Init: init, Cond: cond, Incr: incr, Body: body}
}

// parseExprStmtExpr parses "expr_stmt" (";" | expr ";") and returns the
// wrapped expression, or nil for a bare ";". Used by the for-loop header,
// which needs the expression rather than a Stmt wrapper.
func (p *parser) parseExprStmtExpr() ast.Expr {
	if _, ok := p.eat(token.SEMI); ok {
		return nil
	}
	expr := p.parseExpr()
	p.expectFatal(token.SEMI)
	return expr
}

// parseExprStmt parses "expr_stmt" as a statement: ";" or "expr ';'".
func (p *parser) parseExprStmt() ast.Stmt {
	if pos, ok := p.eat(token.SEMI); ok {
		return &ast.NullStmt{Id: p.newID(), Pos: pos}
	}
	id := p.newID()
	expr := p.parseExpr()
	p.expect(token.SEMI)
	return &ast.ExprStmt{Id: id, Expr: expr}
}

// parseDeclStmt parses "'int' declarator ('=' assign)? (',' declarator
// ('=' assign)?)* ';'".
func (p *parser) parseDeclStmt() *ast.DeclStmt {
	id := p.newID()
	specPos := p.expect(token.INT_KW)
	spec := ast.DeclSpec{Ty: ast.TyInt, Pos: specPos}

	var decls []ast.VarDecl
	decls = append(decls, p.parseVarDecl())
	for {
		if _, ok := p.eat(token.COMMA); !ok {
			break
		}
		decls = append(decls, p.parseVarDecl())
	}
	semi := p.expect(token.SEMI)

	return &ast.DeclStmt{Id: id, Spec: spec, Decls: decls, Semi: semi}
}

func (p *parser) parseVarDecl() ast.VarDecl {
	var decl ast.Declarator
	decl.Id = p.newID()

	if star, ok := p.eat(token.STAR); ok {
		decl.Ptr = &ast.PointerDecl{Star: star}
	}

	pos := p.pos()
	name := p.lit
	p.expect(token.IDENT)
	decl.Direct = ast.DirectDeclarator{Name: name, Pos: pos}

	var init ast.Expr
	if _, ok := p.eat(token.ASSIGN); ok {
		init = p.parseAssign()
	}
	return ast.VarDecl{Declarator: decl, Init: init}
}

// syncAfterError advances past tokens until a likely statement boundary: a
// ';' (consumed) or a token that starts a new statement/closes the
// enclosing block (not consumed).
func (p *parser) syncAfterError() {
	for p.tok != token.EOF {
		switch p.tok {
		case token.SEMI:
			p.advance()
			return
		case token.RBRACE, token.IF, token.WHILE, token.FOR, token.RETURN, token.INT_KW:
			return
		}
		p.advance()
	}
}
