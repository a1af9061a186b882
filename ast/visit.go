package ast

// WalkStatements invokes visit for n and every statement reachable from it
// through sibling chains (Next) and nested bodies (If/For/Function). The
// expressions each statement carries are *not* descended into — use
// WalkExpressions from an ExpressionStatement/Declaration/etc. for that.
// Visitor order is preorder, depth first.
func WalkStatements(n Statement, visit func(Statement)) {
	for s := n; s != nil; s = nextStatement(s) {
		visit(s)
		switch v := s.(type) {
		case *If:
			WalkStatements(v.Then, visit)
			if v.Else != nil {
				WalkStatements(v.Else, visit)
			}
		case *For:
			if v.Init != nil {
				WalkStatements(v.Init, visit)
			}
			WalkStatements(v.Body, visit)
		case *Function:
			if v.Body != nil {
				WalkStatements(v.Body, visit)
			}
		}
	}
}

func nextStatement(s Statement) Statement {
	return s.Base().Next
}

// WalkExpressions invokes visit for e and every expression reachable from
// it (operands, argument lists via Next). Preorder, depth first.
func WalkExpressions(e Expression, visit func(Expression)) {
	for x := e; x != nil; x = nextExpression(x) {
		visit(x)
		switch v := x.(type) {
		case *Constructor:
			WalkExpressions(v.Args, visit)
		case *Cast:
			WalkExpressions(v.Inner, visit)
		case *Unary:
			WalkExpressions(v.Inner, visit)
		case *Binary:
			WalkExpressions(v.LHS, visit)
			WalkExpressions(v.RHS, visit)
		case *Conditional:
			WalkExpressions(v.Cond, visit)
			WalkExpressions(v.Then, visit)
			WalkExpressions(v.Else, visit)
		case *MemberAccess:
			WalkExpressions(v.Object, visit)
		case *ArrayAccess:
			WalkExpressions(v.Array, visit)
			WalkExpressions(v.Index, visit)
		case *FunctionCall:
			WalkExpressions(v.Args, visit)
		}
	}
}

func nextExpression(e Expression) Expression {
	return e.Base().Next
}
