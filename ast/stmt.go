package ast

import "frascal/report"

// StatementGroup is an ordered sequence of statements.
type StatementGroup struct {
	ASTBase

	Stmts []Stmt
}

func NewStatementGroup(span *report.TextSpan) *StatementGroup {
	return &StatementGroup{ASTBase: NewASTBaseOn(span)}
}

func (*StatementGroup) Kind() NodeKind { return NK_STATEMENT_GROUP }

func (sg *StatementGroup) Append(stmt Stmt) {
	sg.Stmts = append(sg.Stmts, stmt)
}

// Assign stores the value of Src into the location denoted by Dest.
type Assign struct {
	StmtBase

	Dest Expr
	Src  Expr
}

func NewAssign(span *report.TextSpan, dest, src Expr) *Assign {
	return &Assign{StmtBase: StmtBase{NewASTBaseOn(span)}, Dest: dest, Src: src}
}

func (*Assign) Kind() NodeKind { return NK_ASSIGN }

// If is an if/elif/else chain.  Elifs and Else may be nil.
type If struct {
	StmtBase

	Cond   Expr
	Action *StatementGroup
	Elifs  *ElifGroup
	Else   *StatementGroup
}

func NewIf(span *report.TextSpan, cond Expr, action *StatementGroup, elifs *ElifGroup, elseBranch *StatementGroup) *If {
	return &If{
		StmtBase: StmtBase{NewASTBaseOn(span)},
		Cond:     cond,
		Action:   action,
		Elifs:    elifs,
		Else:     elseBranch,
	}
}

func (*If) Kind() NodeKind { return NK_IF }

// Branches returns the guarded branches of the chain in order: the leading if
// followed by each elif.
func (i *If) Branches() []*Branch {
	branches := []*Branch{{ASTBase: i.ASTBase, Cond: i.Cond, Action: i.Action}}
	if i.Elifs != nil {
		branches = append(branches, i.Elifs.Branches...)
	}

	return branches
}

// ElifGroup is the ordered list of elif branches of an if statement.
type ElifGroup struct {
	ASTBase

	Branches []*Branch
}

func NewElifGroup(span *report.TextSpan) *ElifGroup {
	return &ElifGroup{ASTBase: NewASTBaseOn(span)}
}

func (*ElifGroup) Kind() NodeKind { return NK_ELIF_GROUP }

func (eg *ElifGroup) Append(branch *Branch) {
	eg.Branches = append(eg.Branches, branch)
}

// Branch is a condition guarding an action.
type Branch struct {
	ASTBase

	Cond   Expr
	Action *StatementGroup
}

func NewBranch(span *report.TextSpan, cond Expr, action *StatementGroup) *Branch {
	return &Branch{ASTBase: NewASTBaseOn(span), Cond: cond, Action: action}
}

func (*Branch) Kind() NodeKind { return NK_BRANCH }

// For iterates Iter over the inclusive integer range [From, To].
type For struct {
	StmtBase

	Iter     Expr
	From, To Expr
	Body     *StatementGroup
}

func NewFor(span *report.TextSpan, iter, from, to Expr, body *StatementGroup) *For {
	return &For{StmtBase: StmtBase{NewASTBaseOn(span)}, Iter: iter, From: from, To: to, Body: body}
}

func (*For) Kind() NodeKind { return NK_FOR }

// While is a pre-tested loop.
type While struct {
	StmtBase

	Cond Expr
	Body *StatementGroup
}

func NewWhile(span *report.TextSpan, cond Expr, body *StatementGroup) *While {
	return &While{StmtBase: StmtBase{NewASTBaseOn(span)}, Cond: cond, Body: body}
}

func (*While) Kind() NodeKind { return NK_WHILE }

// DoWhile is a post-tested loop: the body runs at least once.
type DoWhile struct {
	StmtBase

	Body *StatementGroup
	Cond Expr
}

func NewDoWhile(span *report.TextSpan, body *StatementGroup, cond Expr) *DoWhile {
	return &DoWhile{StmtBase: StmtBase{NewASTBaseOn(span)}, Body: body, Cond: cond}
}

func (*DoWhile) Kind() NodeKind { return NK_DO_WHILE }

// Return returns the value of Expr from the enclosing function.
type Return struct {
	StmtBase

	Expr Expr
}

func NewReturn(span *report.TextSpan, expr Expr) *Return {
	return &Return{StmtBase: StmtBase{NewASTBaseOn(span)}, Expr: expr}
}

func (*Return) Kind() NodeKind { return NK_RETURN }

// Print writes its arguments to standard output followed by a newline.
type Print struct {
	StmtBase

	Args *ArgList
}

func NewPrint(span *report.TextSpan, args *ArgList) *Print {
	return &Print{StmtBase: StmtBase{NewASTBaseOn(span)}, Args: args}
}

func (*Print) Kind() NodeKind { return NK_PRINT }

// ArgList is an ordered list of call or print arguments.
type ArgList struct {
	ASTBase

	Args []*Arg
}

func NewArgList(span *report.TextSpan) *ArgList {
	return &ArgList{ASTBase: NewASTBaseOn(span)}
}

func (*ArgList) Kind() NodeKind { return NK_ARG_LIST }

func (al *ArgList) Append(arg *Arg) {
	al.Args = append(al.Args, arg)
}

// Len returns the number of arguments.  It is safe to call on a nil list.
func (al *ArgList) Len() int {
	if al == nil {
		return 0
	}

	return len(al.Args)
}

// Arg wraps a single argument expression.
type Arg struct {
	ASTBase

	Expr Expr
}

func NewArg(span *report.TextSpan, expr Expr) *Arg {
	return &Arg{ASTBase: NewASTBaseOn(span), Expr: expr}
}

func (*Arg) Kind() NodeKind { return NK_ARG }
