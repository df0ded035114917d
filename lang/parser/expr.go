package parser

import (
	"strconv"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/token"
)

// parseExpr parses "expr ::= assign".
func (p *parser) parseExpr() ast.Expr { return p.parseAssign() }

// parseAssign parses "assign ::= equality ('=' assign)?", right-associative.
func (p *parser) parseAssign() ast.Expr {
	left := p.parseEquality()
	if eq, ok := p.eat(token.ASSIGN); ok {
		id := p.newID()
		value := p.parseAssign()
		return &ast.AssignExpr{Id: id, Target: left, EqPos: eq, Value: value}
	}
	return left
}

// parseEquality parses "equality ::= relational (('=='|'!=') relational)*".
func (p *parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for {
		var op ast.BinOp
		switch p.tok {
		case token.EQL:
			op = ast.BinEq
		case token.NEQ:
			op = ast.BinNeq
		default:
			return left
		}
		id := p.newID()
		opPos := p.pos()
		p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Id: id, Op: op, OpPos: opPos, Left: left, Right: right}
	}
}

// parseRelational parses "relational ::= add (('<'|'<='|'>'|'>=') add)*".
func (p *parser) parseRelational() ast.Expr {
	left := p.parseAdd()
	for {
		var op ast.BinOp
		switch p.tok {
		case token.LT:
			op = ast.BinLt
		case token.LE:
			op = ast.BinLe
		case token.GT:
			op = ast.BinGt
		case token.GE:
			op = ast.BinGe
		default:
			return left
		}
		id := p.newID()
		opPos := p.pos()
		p.advance()
		right := p.parseAdd()
		left = &ast.BinaryExpr{Id: id, Op: op, OpPos: opPos, Left: left, Right: right}
	}
}

// parseAdd parses "add ::= mul (('+'|'-') mul)*".
func (p *parser) parseAdd() ast.Expr {
	left := p.parseMul()
	for {
		var op ast.BinOp
		switch p.tok {
		case token.PLUS:
			op = ast.BinAdd
		case token.MINUS:
			op = ast.BinSub
		default:
			return left
		}
		id := p.newID()
		opPos := p.pos()
		p.advance()
		right := p.parseMul()
		left = &ast.BinaryExpr{Id: id, Op: op, OpPos: opPos, Left: left, Right: right}
	}
}

// parseMul parses "mul ::= unary (('*'|'/') unary)*".
func (p *parser) parseMul() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinOp
		switch p.tok {
		case token.STAR:
			op = ast.BinMul
		case token.SLASH:
			op = ast.BinDiv
		default:
			return left
		}
		id := p.newID()
		opPos := p.pos()
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Id: id, Op: op, OpPos: opPos, Left: left, Right: right}
	}
}

// parseUnary parses "unary ::= ('+'|'-'|'&'|'*') unary | primary".
func (p *parser) parseUnary() ast.Expr {
	var op ast.UnOp
	switch p.tok {
	case token.PLUS:
		op = ast.UnPos
	case token.MINUS:
		op = ast.UnNeg
	case token.AMP:
		op = ast.UnAddr
	case token.STAR:
		op = ast.UnDeref
	default:
		return p.parsePrimary()
	}
	id := p.newID()
	opPos := p.pos()
	p.advance()
	operand := p.parseUnary()
	return &ast.UnaryExpr{Id: id, Op: op, OpPos: opPos, Operand: operand}
}

// parsePrimary parses "primary ::= '(' expr ')' | ident ('(' (assign (','
// assign)*)? ')')? | integer". A malformed primary records a WrongType
// diagnostic and yields an *ast.ErrorExpr instead of panicking, so callers
// higher up the precedence ladder can keep going (spec.md §4.D).
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.LPAREN:
		start := p.pos()
		p.advance()
		inner := p.parseExpr()
		if !p.expectClosing(token.RPAREN) {
			end := p.pos()
			return &ast.ErrorExpr{Id: p.newID(), Start: start, End: end}
		}
		return inner

	case token.INT:
		id := p.newID()
		pos := p.pos()
		lit := p.lit
		p.advance()
		v, _ := strconv.ParseInt(lit, 10, 64)
		return &ast.LiteralExpr{Id: id, Pos: pos, Len: int32(len(lit)), Value: v}

	case token.IDENT:
		id := p.newID()
		pos := p.pos()
		name := p.lit
		p.advance()
		callee := &ast.VarExpr{Id: id, Name: name, Pos: pos}

		if _, ok := p.eat(token.LPAREN); ok {
			callID := p.newID()
			var args []ast.Expr
			if p.tok != token.RPAREN {
				args = append(args, p.parseAssign())
				for {
					if _, ok := p.eat(token.COMMA); !ok {
						break
					}
					args = append(args, p.parseAssign())
				}
			}
			rparen := p.pos()
			if !p.expectClosing(token.RPAREN) {
				return &ast.ErrorExpr{Id: p.newID(), Start: pos, End: p.pos()}
			}
			return &ast.FnCallExpr{Id: callID, Callee: callee, Args: args, RParen: rparen}
		}
		return callee

	default:
		start := p.pos()
		p.error(diag.WrongType, start, "expected number, found %s", p.curTokenText())
		if p.tok != token.EOF && p.tok != token.SEMI && p.tok != token.RPAREN {
			p.advance()
		}
		end := p.pos()
		return &ast.ErrorExpr{Id: p.newID(), Start: start, End: end}
	}
}
