// Package ast defines the expression and statement node types produced by
// the parser and consumed by the module resolver, static resolver and
// interpreter.
//
// Node shapes are grounded on sam-decook-lox/codecrafters/cmd/ast.go's
// Stmt/Expr interfaces, generalized per spec.md §3: every node carries a
// globally unique id assigned at construction, which the static resolver's
// side-table is keyed by (the teacher instead keys its side-table by the
// Expr interface value itself).
package ast

import "sync/atomic"

// ID is the key the static resolver's scope-depth table is indexed by.
type ID = uint64

var nextID uint64

// NewID returns the next globally unique node id. §9 notes this is a
// process-wide counter; callers that need deterministic, isolated ids across
// test cases should construct each program from its own scanner/parser run.
func NewID() ID {
	return atomic.AddUint64(&nextID, 1)
}

// Node is embedded by every Expr and Stmt implementation to supply ID().
type Node struct {
	id ID
}

// NewNode assigns a fresh id. Call once per constructed node.
func NewNode() Node {
	return Node{id: NewID()}
}

func (n Node) ID() ID { return n.id }

// Expr is implemented by every expression node.
type Expr interface {
	ID() ID
	exprNode()
	String() string
}

// Stmt is implemented by every statement node.
type Stmt interface {
	ID() ID
	stmtNode()
	String() string
}
