package irtext

// DocumentVersion is the only program document version this package
// reads or writes.
const DocumentVersion = 1

// Document is the serialized form of a whole program. It is a plain
// tree: block references are by name, function references by id, and
// there are no maps anywhere so encoding is deterministic.
type Document struct {
	Version   int           `json:"version" yaml:"version"`
	Functions []FunctionDoc `json:"functions" yaml:"functions"`
}

// FunctionDoc serializes one function. Blocks appear in registration
// order; the first block is the entry.
type FunctionDoc struct {
	ID      uint16     `json:"id" yaml:"id"`
	Returns string     `json:"returns" yaml:"returns"`
	Params  []uint64   `json:"params,omitempty" yaml:"params,omitempty"`
	Pool    []string   `json:"pool,omitempty" yaml:"pool,omitempty"`
	Blocks  []BlockDoc `json:"blocks" yaml:"blocks"`
}

// BlockDoc serializes one basic block. Predecessors are not stored:
// they are derived state and are rebuilt by linking on decode.
type BlockDoc struct {
	Name  string    `json:"name" yaml:"name"`
	Stmts []StmtDoc `json:"stmts,omitempty" yaml:"stmts,omitempty"`
	Jump  *JumpDoc  `json:"jump,omitempty" yaml:"jump,omitempty"`
}

// StmtDoc is a tagged union over the statement kinds; exactly one field
// is set.
type StmtDoc struct {
	Assign *AssignDoc `json:"assign,omitempty" yaml:"assign,omitempty"`
	Return *ReturnDoc `json:"return,omitempty" yaml:"return,omitempty"`
	Print  *ExprDoc   `json:"print,omitempty" yaml:"print,omitempty"`
}

// AssignDoc serializes an assignment.
type AssignDoc struct {
	Var   uint64  `json:"var" yaml:"var"`
	Value ExprDoc `json:"value" yaml:"value"`
}

// ReturnDoc serializes a return; a nil Atom is a void return.
type ReturnDoc struct {
	Atom *ExprDoc `json:"atom,omitempty" yaml:"atom,omitempty"`
}

// JumpDoc is a tagged union over the transition kinds; exactly one
// field is set. Targets are block names within the same function.
type JumpDoc struct {
	Always *string  `json:"always,omitempty" yaml:"always,omitempty"`
	Cond   *CondDoc `json:"cond,omitempty" yaml:"cond,omitempty"`
}

// CondDoc serializes a conditional transition.
type CondDoc struct {
	If  ExprDoc `json:"if" yaml:"if"`
	Yes string  `json:"yes" yaml:"yes"`
	No  string  `json:"no" yaml:"no"`
}

// ExprDoc is a tagged union over the expression kinds; exactly one
// field is set. Phi lists variable ids, never nested expressions.
type ExprDoc struct {
	Int    *int64    `json:"int,omitempty" yaml:"int,omitempty"`
	Double *float64  `json:"double,omitempty" yaml:"double,omitempty"`
	Ptr    *PtrDoc   `json:"ptr,omitempty" yaml:"ptr,omitempty"`
	Var    *uint64   `json:"var,omitempty" yaml:"var,omitempty"`
	BinOp  *BinOpDoc `json:"binop,omitempty" yaml:"binop,omitempty"`
	UnOp   *UnOpDoc  `json:"unop,omitempty" yaml:"unop,omitempty"`
	Phi    []uint64  `json:"phi,omitempty" yaml:"phi,omitempty"`
	Call   *CallDoc  `json:"call,omitempty" yaml:"call,omitempty"`
}

// PtrDoc serializes a pointer literal; Pooled marks a literal-pool
// index rather than a raw address.
type PtrDoc struct {
	Value  uint64 `json:"value" yaml:"value"`
	Pooled bool   `json:"pooled,omitempty" yaml:"pooled,omitempty"`
}

// BinOpDoc serializes a binary operation with a mnemonic operator name.
type BinOpDoc struct {
	Op    string  `json:"op" yaml:"op"`
	Left  ExprDoc `json:"left" yaml:"left"`
	Right ExprDoc `json:"right" yaml:"right"`
}

// UnOpDoc serializes a unary operation with a mnemonic operator name.
type UnOpDoc struct {
	Op      string  `json:"op" yaml:"op"`
	Operand ExprDoc `json:"operand" yaml:"operand"`
}

// CallDoc serializes a call; Args are atoms only.
type CallDoc struct {
	Function uint16    `json:"function" yaml:"function"`
	Args     []ExprDoc `json:"args,omitempty" yaml:"args,omitempty"`
}
