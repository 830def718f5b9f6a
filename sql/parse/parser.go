package parse

import (
	"github.com/terakoya76/rdb-sample/sql"
)

// Parser builds statements from a token stream.
type Parser struct {
	l         *Tokenizer
	curToken  Token
	peekToken Token
}

// NewParser returns a parser over the given query string.
func NewParser(query string) *Parser {
	p := &Parser{l: NewTokenizer(query)}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a single statement.
func Parse(query string) (Statement, error) {
	return NewParser(query).ParseStatement()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t TokenType) error {
	if !p.peekTokenIs(t) {
		return sql.ErrSyntax.New("unexpected token " + p.peekToken.String())
	}
	p.nextToken()
	return nil
}

// ParseStatement parses the statement at the current position.
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.curToken.Type {
	case TokenSelect:
		return p.parseSelect()
	case TokenInsert:
		return p.parseInsert()
	case TokenCreate:
		return p.parseCreate()
	default:
		return nil, sql.ErrSyntax.New("unexpected token " + p.curToken.String())
	}
}

// SELECT targets FROM table [, table] [ON cond] [WHERE conds]
func (p *Parser) parseSelect() (*SelectStmt, error) {
	stmt := &SelectStmt{}

	for {
		p.nextToken()
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)

		if !p.peekTokenIs(TokenComma) {
			break
		}
		p.nextToken()
	}

	if err := p.expectPeek(TokenFrom); err != nil {
		return nil, err
	}

	for {
		if err := p.expectPeek(TokenIdent); err != nil {
			return nil, err
		}
		stmt.Source.Tables = append(stmt.Source.Tables, p.curToken.Literal)

		if !p.peekTokenIs(TokenComma) {
			break
		}
		p.nextToken()
	}

	if p.peekTokenIs(TokenOn) {
		p.nextToken()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		stmt.Source.Condition = &cond
	}

	if p.peekTokenIs(TokenWhere) {
		p.nextToken()
		conds, err := p.parseConditions()
		if err != nil {
			return nil, err
		}
		stmt.Condition = conds
	}

	return stmt, p.expectEnd()
}

// parseTarget parses `*`, `name`, or `table.name`.
func (p *Parser) parseTarget() (Target, error) {
	if p.curTokenIs(TokenAsterisk) {
		return Target{Name: "*"}, nil
	}
	if !p.curTokenIs(TokenIdent) {
		return Target{}, sql.ErrSyntax.New("unexpected token " + p.curToken.String())
	}

	name := p.curToken.Literal
	if p.peekTokenIs(TokenDot) {
		p.nextToken()
		if err := p.expectPeek(TokenIdent); err != nil {
			return Target{}, err
		}
		return Target{TableName: name, Name: p.curToken.Literal}, nil
	}
	return Target{Name: name}, nil
}

// parseConditions parses a left-associative AND/OR chain of comparisons.
func (p *Parser) parseConditions() (Conditions, error) {
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	var tree Conditions = &Leaf{Cond: cond}
	for p.peekTokenIs(TokenAnd) || p.peekTokenIs(TokenOr) {
		op := p.peekToken.Type
		p.nextToken()

		next, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if op == TokenAnd {
			tree = &And{Left: tree, Right: &Leaf{Cond: next}}
		} else {
			tree = &Or{Left: tree, Right: &Leaf{Cond: next}}
		}
	}
	return tree, nil
}

// parseCondition parses `target op comparable`.
func (p *Parser) parseCondition() (Condition, error) {
	p.nextToken()
	left, err := p.parseTarget()
	if err != nil {
		return Condition{}, err
	}
	if left.Name == "*" {
		return Condition{}, sql.ErrSyntax.New("* is not allowed in a condition")
	}

	p.nextToken()
	var op Operator
	switch p.curToken.Type {
	case TokenEqual:
		op = Equ
	case TokenNotEqual:
		op = NEqu
	case TokenGT:
		op = GT
	case TokenLT:
		op = LT
	case TokenGE:
		op = GE
	case TokenLE:
		op = LE
	default:
		return Condition{}, sql.ErrSyntax.New("unexpected token " + p.curToken.String())
	}

	p.nextToken()
	right, err := p.parseComparable()
	if err != nil {
		return Condition{}, err
	}

	return Condition{Left: left, Op: op, Right: right}, nil
}

// parseComparable parses a literal or a column reference.
func (p *Parser) parseComparable() (Comparable, error) {
	switch p.curToken.Type {
	case TokenNumber:
		v, err := sql.NewValue(sql.Int64, p.curToken.Literal)
		if err != nil {
			return nil, sql.ErrSyntax.New("bad number literal " + p.curToken.Literal)
		}
		return Lit{Value: v}, nil
	case TokenString:
		return Lit{Value: sql.NewText(p.curToken.Literal)}, nil
	case TokenIdent:
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		return Word{TableName: target.TableName, Name: target.Name}, nil
	default:
		return nil, sql.ErrSyntax.New("unexpected token " + p.curToken.String())
	}
}

// INSERT INTO table VALUES (lit, ...)
func (p *Parser) parseInsert() (*InsertStmt, error) {
	if err := p.expectPeek(TokenInto); err != nil {
		return nil, err
	}
	if err := p.expectPeek(TokenIdent); err != nil {
		return nil, err
	}
	stmt := &InsertStmt{TableName: p.curToken.Literal}

	if err := p.expectPeek(TokenValues); err != nil {
		return nil, err
	}
	if err := p.expectPeek(TokenLParen); err != nil {
		return nil, err
	}

	for {
		p.nextToken()
		switch p.curToken.Type {
		case TokenNumber:
			v, err := sql.NewValue(sql.Int64, p.curToken.Literal)
			if err != nil {
				return nil, sql.ErrSyntax.New("bad number literal " + p.curToken.Literal)
			}
			stmt.Values = append(stmt.Values, v)
		case TokenString:
			stmt.Values = append(stmt.Values, sql.NewText(p.curToken.Literal))
		default:
			return nil, sql.ErrSyntax.New("unexpected token " + p.curToken.String())
		}

		if p.peekTokenIs(TokenComma) {
			p.nextToken()
			continue
		}
		break
	}

	if err := p.expectPeek(TokenRParen); err != nil {
		return nil, err
	}
	return stmt, p.expectEnd()
}

// CREATE TABLE name (col type, ...)
func (p *Parser) parseCreate() (*CreateTableStmt, error) {
	if err := p.expectPeek(TokenTable); err != nil {
		return nil, err
	}
	if err := p.expectPeek(TokenIdent); err != nil {
		return nil, err
	}
	stmt := &CreateTableStmt{TableName: p.curToken.Literal}

	if err := p.expectPeek(TokenLParen); err != nil {
		return nil, err
	}

	for {
		if err := p.expectPeek(TokenIdent); err != nil {
			return nil, err
		}
		col := ColumnDef{Name: p.curToken.Literal}

		p.nextToken()
		switch p.curToken.Type {
		case TokenIntType:
			col.Type = sql.Int64
		case TokenVarcharType, TokenTextType:
			col.Type = sql.Text
			if p.peekTokenIs(TokenLParen) {
				// length argument is accepted and ignored
				p.nextToken()
				if err := p.expectPeek(TokenNumber); err != nil {
					return nil, err
				}
				if err := p.expectPeek(TokenRParen); err != nil {
					return nil, err
				}
			}
		default:
			return nil, sql.ErrSyntax.New("invalid column type " + p.curToken.String())
		}
		stmt.Columns = append(stmt.Columns, col)

		if p.peekTokenIs(TokenComma) {
			p.nextToken()
			continue
		}
		break
	}

	if err := p.expectPeek(TokenRParen); err != nil {
		return nil, err
	}
	return stmt, p.expectEnd()
}

func (p *Parser) expectEnd() error {
	if p.peekTokenIs(TokenSemi) {
		p.nextToken()
	}
	if !p.peekTokenIs(TokenEOF) {
		return sql.ErrSyntax.New("unexpected token " + p.peekToken.String())
	}
	return nil
}
