package irtext

import (
	"fmt"
	"slices"

	"github.com/mathvm/mvmir/internal/ir"
)

// DocumentError reports a malformed program document. Path locates the
// offending element in document coordinates (functions[1].blocks[0]...).
type DocumentError struct {
	Path    string
	Message string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document: %s: %s", e.Path, e.Message)
}

func docErrf(path, format string, args ...any) error {
	return &DocumentError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// Build lowers a document into an IR program. The document tree is
// walked exactly once; jump targets are resolved by block name within
// each function, so forward references are fine. Graph-level
// well-formedness (reachability, call resolution) stays with the
// validator and is not re-checked here.
func Build(doc *Document) (*ir.Program, error) {
	if doc.Version != DocumentVersion {
		return nil, docErrf("version", "unsupported document version %d, want %d", doc.Version, DocumentVersion)
	}
	p := ir.NewProgram()
	for i := range doc.Functions {
		path := fmt.Sprintf("functions[%d]", i)
		f, err := buildFunction(&doc.Functions[i], path)
		if err != nil {
			return nil, err
		}
		if err := p.AddFunction(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildFunction(fd *FunctionDoc, path string) (*ir.Function, error) {
	typ, ok := typeByName[fd.Returns]
	if !ok {
		return nil, docErrf(path+".returns", "unknown type %q", fd.Returns)
	}
	if len(fd.Blocks) == 0 {
		return nil, docErrf(path+".blocks", "function needs at least one block")
	}

	f := ir.NewFunction(fd.ID, typ)
	f.Params = slices.Clone(fd.Params)
	for _, s := range fd.Pool {
		f.AddToPool(s)
	}

	// The first document block is the entry; it takes over the block
	// pre-created by NewFunction instead of registering a second one.
	byName := make(map[string]*ir.Block, len(fd.Blocks))
	f.Entry.Name = fd.Blocks[0].Name
	byName[f.Entry.Name] = f.Entry
	for i := 1; i < len(fd.Blocks); i++ {
		name := fd.Blocks[i].Name
		if _, dup := byName[name]; dup {
			return nil, docErrf(fmt.Sprintf("%s.blocks[%d]", path, i), "duplicate block name %q", name)
		}
		byName[name] = f.NewBlock(name)
	}

	for i := range fd.Blocks {
		bd := &fd.Blocks[i]
		bpath := fmt.Sprintf("%s.blocks[%d]", path, i)
		b := byName[bd.Name]
		for j := range bd.Stmts {
			s, err := buildStmt(&bd.Stmts[j], fmt.Sprintf("%s.stmts[%d]", bpath, j))
			if err != nil {
				return nil, err
			}
			b.Append(s)
		}
		if bd.Jump != nil {
			if err := linkBlock(b, bd.Jump, byName, bpath+".jump"); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func linkBlock(b *ir.Block, jd *JumpDoc, byName map[string]*ir.Block, path string) error {
	switch {
	case jd.Always != nil && jd.Cond == nil:
		target, ok := byName[*jd.Always]
		if !ok {
			return docErrf(path, "unknown block %q", *jd.Always)
		}
		return b.LinkAlways(target)
	case jd.Cond != nil && jd.Always == nil:
		condition, err := buildAtom(&jd.Cond.If, path+".cond.if")
		if err != nil {
			return err
		}
		yes, ok := byName[jd.Cond.Yes]
		if !ok {
			return docErrf(path, "unknown block %q", jd.Cond.Yes)
		}
		no, ok := byName[jd.Cond.No]
		if !ok {
			return docErrf(path, "unknown block %q", jd.Cond.No)
		}
		return b.LinkCond(yes, no, condition)
	default:
		return docErrf(path, "exactly one of always/cond must be set")
	}
}

func buildStmt(sd *StmtDoc, path string) (ir.Stmt, error) {
	set := 0
	if sd.Assign != nil {
		set++
	}
	if sd.Return != nil {
		set++
	}
	if sd.Print != nil {
		set++
	}
	if set != 1 {
		return nil, docErrf(path, "exactly one of assign/return/print must be set")
	}

	switch {
	case sd.Assign != nil:
		value, err := buildExpr(&sd.Assign.Value, path+".assign.value")
		if err != nil {
			return nil, err
		}
		return &ir.Assignment{Var: &ir.Variable{ID: sd.Assign.Var}, Value: value}, nil
	case sd.Return != nil:
		ret := &ir.Return{}
		if sd.Return.Atom != nil {
			atom, err := buildAtom(sd.Return.Atom, path+".return.atom")
			if err != nil {
				return nil, err
			}
			ret.Atom = atom
		}
		return ret, nil
	default:
		atom, err := buildAtom(sd.Print, path+".print")
		if err != nil {
			return nil, err
		}
		return &ir.Print{Atom: atom}, nil
	}
}

func buildExpr(ed *ExprDoc, path string) (ir.Expr, error) {
	set := 0
	for _, present := range []bool{
		ed.Int != nil, ed.Double != nil, ed.Ptr != nil, ed.Var != nil,
		ed.BinOp != nil, ed.UnOp != nil, ed.Phi != nil, ed.Call != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, docErrf(path, "exactly one expression field must be set")
	}

	switch {
	case ed.Int != nil:
		return &ir.Int{Value: *ed.Int}, nil
	case ed.Double != nil:
		return &ir.Double{Value: *ed.Double}, nil
	case ed.Ptr != nil:
		return &ir.Ptr{Value: ed.Ptr.Value, Pooled: ed.Ptr.Pooled}, nil
	case ed.Var != nil:
		return &ir.Variable{ID: *ed.Var}, nil
	case ed.BinOp != nil:
		op, ok := binOpByName[ed.BinOp.Op]
		if !ok {
			return nil, docErrf(path+".binop.op", "unknown operator %q", ed.BinOp.Op)
		}
		left, err := buildExpr(&ed.BinOp.Left, path+".binop.left")
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(&ed.BinOp.Right, path+".binop.right")
		if err != nil {
			return nil, err
		}
		return &ir.BinOp{Left: left, Right: right, Op: op}, nil
	case ed.UnOp != nil:
		op, ok := unOpByName[ed.UnOp.Op]
		if !ok {
			return nil, docErrf(path+".unop.op", "unknown operator %q", ed.UnOp.Op)
		}
		operand, err := buildExpr(&ed.UnOp.Operand, path+".unop.operand")
		if err != nil {
			return nil, err
		}
		return &ir.UnOp{Operand: operand, Op: op}, nil
	case ed.Phi != nil:
		vars := make([]*ir.Variable, len(ed.Phi))
		for i, id := range ed.Phi {
			vars[i] = &ir.Variable{ID: id}
		}
		return &ir.Phi{Vars: vars}, nil
	default:
		call := &ir.Call{FunctionID: ed.Call.Function}
		for i := range ed.Call.Args {
			arg, err := buildAtom(&ed.Call.Args[i], fmt.Sprintf("%s.call.args[%d]", path, i))
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		return call, nil
	}
}

func buildAtom(ed *ExprDoc, path string) (ir.Atom, error) {
	e, err := buildExpr(ed, path)
	if err != nil {
		return nil, err
	}
	a, ok := e.(ir.Atom)
	if !ok {
		return nil, docErrf(path, "expected an atom, got a composite expression")
	}
	return a, nil
}
