package irtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathvm/mvmir/internal/disasm"
	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/testutil"
)

func TestMarshalJSONRoundTrip(t *testing.T) {
	p := testutil.LoopProgram(t)

	data, err := MarshalJSON(p)
	require.NoError(t, err)

	back, err := UnmarshalJSON(data)
	require.NoError(t, err)

	// Observational equality through the disassembler catches statement
	// order, predecessor order and transition shape in one comparison.
	assert.Equal(t, disasm.Program(p), disasm.Program(back))
	assert.Empty(t, ir.ValidateProgram(back))
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	p := testutil.LoopProgram(t)

	data, err := MarshalYAML(p)
	require.NoError(t, err)

	back, err := UnmarshalYAML(data)
	require.NoError(t, err)

	assert.Equal(t, disasm.Program(p), disasm.Program(back))
}

func TestEncodeDocumentShape(t *testing.T) {
	p := ir.NewProgram()
	require.NoError(t, p.AddFunction(testutil.LeafFunction(t, 4)))

	doc := Encode(p)
	require.Equal(t, DocumentVersion, doc.Version)
	require.Len(t, doc.Functions, 1)

	fd := doc.Functions[0]
	assert.Equal(t, uint16(4), fd.ID)
	assert.Equal(t, "bot", fd.Returns)
	assert.Equal(t, []string{"mvm"}, fd.Pool)
	require.Len(t, fd.Blocks, 1)

	bd := fd.Blocks[0]
	assert.Equal(t, "entry4", bd.Name)
	require.Len(t, bd.Stmts, 2)
	require.NotNil(t, bd.Stmts[0].Print)
	assert.True(t, bd.Stmts[0].Print.Ptr.Pooled)
	require.NotNil(t, bd.Stmts[1].Return)
	assert.Nil(t, bd.Stmts[1].Return.Atom)
	require.NotNil(t, bd.Jump)
	require.NotNil(t, bd.Jump.Always)
	assert.Equal(t, "entry4", *bd.Jump.Always)
}

func TestBuildErrors(t *testing.T) {
	entry := func(stmts []StmtDoc, jump *JumpDoc) []FunctionDoc {
		return []FunctionDoc{{
			ID:      0,
			Returns: "bot",
			Blocks:  []BlockDoc{{Name: "start", Stmts: stmts, Jump: jump}},
		}}
	}
	always := func(name string) *JumpDoc { return &JumpDoc{Always: &name} }
	one := int64(1)

	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "bad version",
			doc:  Document{Version: 2},
			want: "unsupported document version",
		},
		{
			name: "unknown return type",
			doc: Document{Version: 1, Functions: []FunctionDoc{{
				Returns: "float", Blocks: []BlockDoc{{Name: "start"}},
			}}},
			want: "unknown type",
		},
		{
			name: "no blocks",
			doc:  Document{Version: 1, Functions: []FunctionDoc{{Returns: "bot"}}},
			want: "at least one block",
		},
		{
			name: "duplicate block name",
			doc: Document{Version: 1, Functions: []FunctionDoc{{
				Returns: "bot",
				Blocks:  []BlockDoc{{Name: "start"}, {Name: "start"}},
			}}},
			want: "duplicate block name",
		},
		{
			name: "unknown jump target",
			doc:  Document{Version: 1, Functions: entry(nil, always("missing"))},
			want: `unknown block "missing"`,
		},
		{
			name: "jump union empty",
			doc:  Document{Version: 1, Functions: entry(nil, &JumpDoc{})},
			want: "exactly one of always/cond",
		},
		{
			name: "stmt union empty",
			doc:  Document{Version: 1, Functions: entry([]StmtDoc{{}}, nil)},
			want: "exactly one of assign/return/print",
		},
		{
			name: "expr union empty",
			doc: Document{Version: 1, Functions: entry([]StmtDoc{
				{Assign: &AssignDoc{Var: 1, Value: ExprDoc{}}},
			}, nil)},
			want: "exactly one expression field",
		},
		{
			name: "composite where atom required",
			doc: Document{Version: 1, Functions: entry([]StmtDoc{
				{Print: &ExprDoc{BinOp: &BinOpDoc{
					Op:    "add",
					Left:  ExprDoc{Int: &one},
					Right: ExprDoc{Int: &one},
				}}},
			}, nil)},
			want: "expected an atom",
		},
		{
			name: "unknown binop",
			doc: Document{Version: 1, Functions: entry([]StmtDoc{
				{Assign: &AssignDoc{Var: 1, Value: ExprDoc{BinOp: &BinOpDoc{
					Op:    "plus",
					Left:  ExprDoc{Int: &one},
					Right: ExprDoc{Int: &one},
				}}}},
			}, nil)},
			want: "unknown operator",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(&tt.doc)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBuildDuplicateFunctionID(t *testing.T) {
	doc := Document{Version: 1, Functions: []FunctionDoc{
		{ID: 7, Returns: "bot", Blocks: []BlockDoc{{Name: "a"}}},
		{ID: 7, Returns: "int", Blocks: []BlockDoc{{Name: "b"}}},
	}}
	_, err := Build(&doc)
	require.Error(t, err)
	assert.True(t, ir.IsDuplicateFunctionID(err))
}

func TestValidateJSON(t *testing.T) {
	p := testutil.LoopProgram(t)
	good, err := MarshalJSON(p)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(good))

	tests := []struct {
		name string
		doc  string
	}{
		{"wrong version", `{"version": 2, "functions": []}`},
		{"missing returns", `{"version": 1, "functions": [{"id": 0, "blocks": [{"name": "a"}]}]}`},
		{"bad return type", `{"version": 1, "functions": [{"id": 0, "returns": "float", "blocks": [{"name": "a"}]}]}`},
		{"empty block name", `{"version": 1, "functions": [{"id": 0, "returns": "bot", "blocks": [{"name": ""}]}]}`},
		{"no blocks", `{"version": 1, "functions": [{"id": 0, "returns": "bot", "blocks": []}]}`},
		{"id out of range", `{"version": 1, "functions": [{"id": 70000, "returns": "bot", "blocks": [{"name": "a"}]}]}`},
		{"bad operator", `{"version": 1, "functions": [{"id": 0, "returns": "bot", "blocks": [{"name": "a", "stmts": [{"assign": {"var": 1, "value": {"binop": {"op": "plus", "left": {"int": 1}, "right": {"int": 1}}}}}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestUnmarshalJSONRejectsBeforeBuilding(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"version": 2, "functions": []}`))
	require.Error(t, err)
}

func TestOperatorNameTablesAreTotal(t *testing.T) {
	for k := ir.BinAdd; k <= ir.BinXor; k++ {
		name, ok := binOpNames[k]
		require.True(t, ok, "missing name for binop %d", k)
		assert.Equal(t, k, binOpByName[name])
	}
	for k := ir.UnCastIntToDouble; k <= ir.UnNot; k++ {
		name, ok := unOpNames[k]
		require.True(t, ok, "missing name for unop %d", k)
		assert.Equal(t, k, unOpByName[name])
	}
	for _, typ := range []ir.Type{ir.TypeBot, ir.TypeInt, ir.TypeDouble, ir.TypePtr} {
		name, ok := typeNames[typ]
		require.True(t, ok, "missing name for type %d", typ)
		assert.Equal(t, typ, typeByName[name])
	}
}
