// File: visitor.go
// Title: Logic AST Visitor Pattern Implementation
// Description: Visitor interface for walking expression trees plus the
//              statistics and tree dump visitors used by the engine and
//              the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes
type Visitor interface {
	VisitOperand(node *Operand) interface{}
	VisitUnary(node *UnaryExpr) interface{}
	VisitBinary(node *BinaryExpr) interface{}
}

func (o *Operand) Accept(v Visitor) interface{}    { return v.VisitOperand(o) }
func (u *UnaryExpr) Accept(v Visitor) interface{}  { return v.VisitUnary(u) }
func (b *BinaryExpr) Accept(v Visitor) interface{} { return v.VisitBinary(b) }

// Walk calls fn for node and its descendants in pre-order. Returning false
// from fn skips the children of that node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *UnaryExpr:
		Walk(n.Child, fn)
	case *BinaryExpr:
		Walk(n.Lhs, fn)
		Walk(n.Rhs, fn)
	}
}

// Stats summarizes the shape of a tree
type Stats struct {
	Nodes     int                  `json:"nodes"`
	Depth     int                  `json:"depth"`
	Operands  int                  `json:"operands"`
	Operators map[OperatorType]int `json:"-"`
}

// statsVisitor returns the depth of the visited subtree
type statsVisitor struct {
	stats *Stats
}

func (v *statsVisitor) VisitOperand(*Operand) interface{} {
	v.stats.Nodes++
	v.stats.Operands++
	return 1
}

func (v *statsVisitor) VisitUnary(node *UnaryExpr) interface{} {
	v.stats.Nodes++
	v.stats.Operators[node.Op]++
	return 1 + node.Child.Accept(v).(int)
}

func (v *statsVisitor) VisitBinary(node *BinaryExpr) interface{} {
	v.stats.Nodes++
	v.stats.Operators[node.Op]++
	lhs := node.Lhs.Accept(v).(int)
	rhs := node.Rhs.Accept(v).(int)
	if rhs > lhs {
		lhs = rhs
	}
	return 1 + lhs
}

// Analyze collects node counts and the depth of node
func Analyze(node Node) Stats {
	stats := Stats{Operators: make(map[OperatorType]int)}
	if node == nil {
		return stats
	}
	stats.Depth = node.Accept(&statsVisitor{stats: &stats}).(int)
	return stats
}

// dumpVisitor renders one line per node, indented by depth
type dumpVisitor struct {
	sb    strings.Builder
	depth int
}

func (v *dumpVisitor) line(format string, args ...interface{}) {
	v.sb.WriteString(strings.Repeat("  ", v.depth))
	fmt.Fprintf(&v.sb, format, args...)
	v.sb.WriteByte('\n')
}

func (v *dumpVisitor) VisitOperand(node *Operand) interface{} {
	v.line("Operand(%s)", node.String())
	return nil
}

func (v *dumpVisitor) VisitUnary(node *UnaryExpr) interface{} {
	v.line("UnaryExpr(%s)", node.Op)
	v.depth++
	node.Child.Accept(v)
	v.depth--
	return nil
}

func (v *dumpVisitor) VisitBinary(node *BinaryExpr) interface{} {
	v.line("BinaryExpr(%s)", node.Op)
	v.depth++
	node.Lhs.Accept(v)
	node.Rhs.Accept(v)
	v.depth--
	return nil
}

// Dump returns an indented tree view of node
func Dump(node Node) string {
	if node == nil {
		return ""
	}
	v := &dumpVisitor{}
	node.Accept(v)
	return v.sb.String()
}
