package ast

// FuncDecl is the structural decomposition of one function declaration.
//
// Every field except Name holds a verbatim byte range of the source
// text, delimiters included; nothing is normalized or reprinted. Body
// in particular is opaque: the parser balances its braces to find the
// closing one and otherwise never looks inside.
type FuncDecl struct {
	Name       string // identifier; visibility is the name's case
	Receiver   string // raw "(r *T)" text, or "" for a plain function
	TypeParams string // raw "[T any]" text, or ""
	Params     string // raw parameter list text, parens included
	Result     string // raw result annotation; discarded by emission
	Body       string // raw body block, braces included
}

// Exported reports whether the declared name is exported.
func (d *FuncDecl) Exported() bool {
	return len(d.Name) > 0 && d.Name[0] >= 'A' && d.Name[0] <= 'Z'
}
