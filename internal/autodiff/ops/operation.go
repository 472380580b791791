// Package ops defines the closed set of scalar operators and their local
// derivative rules.
//
// Each Kind is a tagged variant: the forward rule produces the node value from
// its parents and the backward rule converts the node gradient into the
// contributions added to each parent gradient. Both storage strategies
// (internal/autodiff and internal/graph) dispatch through this table.
package ops

import "fmt"

// Kind identifies the operator that produced a derived node.
// The zero Kind is Leaf: no parents and no backward rule.
type Kind uint8

// Supported operators.
const (
	Leaf Kind = iota
	Add
	Mul
	Neg
	Pow
	Div
	Exp
	Log
	Tanh
	ReLU
)

var kindNames = [...]string{
	Leaf: "leaf",
	Add:  "add",
	Mul:  "mul",
	Neg:  "neg",
	Pow:  "pow",
	Div:  "div",
	Exp:  "exp",
	Log:  "log",
	Tanh: "tanh",
	ReLU: "relu",
}

// String returns a human-readable operator name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of parents the operator consumes.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Mul, Pow, Div:
		return 2
	case Neg, Exp, Log, Tanh, ReLU:
		return 1
	default:
		panic(fmt.Sprintf("ops: unknown operator %s", k))
	}
}

// IsLeaf reports whether the kind carries no backward rule.
func (k Kind) IsLeaf() bool {
	return k == Leaf
}

// Valid reports whether k is one of the defined operators.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}
