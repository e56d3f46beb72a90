// Package ir defines the typed control-flow-graph intermediate
// representation that programs are lowered into after parsing.
//
// This package contains the node taxonomy, the visitor protocol, and the
// block-linking operations. All other internal packages import ir; ir
// imports nothing internal. This ensures the IR remains the foundational
// layer with no circular dependencies.
//
// Key design constraints:
//   - The node kind set is closed: every concrete node carries a Kind tag
//     drawn from a stable enumeration, and new kinds are only appended.
//   - Ownership is a strict tree (function -> block -> statement -> owned
//     sub-expression). Jump targets, predecessor back-edges, call arguments
//     and phi variable lists are non-owning references and may form cycles.
//   - Nodes are logically immutable once a function is linked; rewriting
//     passes produce replacement nodes through the visitor, they never
//     mutate fields in place.
package ir
