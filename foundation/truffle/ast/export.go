// File: export.go
// Title: AST Map Export
// Description: Converts AST nodes to plain maps and slices for JSON or YAML
//              encoding by downstream consumers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package ast

// MapVisitor returns a map[string]interface{} for every node it visits.
// Lists are []interface{} so the result encodes with any generic encoder.
type MapVisitor struct{}

// ToMap exports node and everything below it
func ToMap(node Node) map[string]interface{} {
	m, _ := node.Accept(MapVisitor{}).(map[string]interface{})
	return m
}

func (mv MapVisitor) VisitProgram(program *Program) interface{} {
	functions := make([]interface{}, 0, len(program.Functions))
	for _, fn := range program.Functions {
		functions = append(functions, fn.Accept(mv))
	}
	return map[string]interface{}{
		"node":      "program",
		"functions": functions,
	}
}

func (mv MapVisitor) VisitFunction(fn *Function) interface{} {
	params := make([]interface{}, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		params = append(params, p.Accept(mv))
	}
	m := map[string]interface{}{
		"node":       "function",
		"name":       fn.Name,
		"parameters": params,
	}
	if fn.Body != nil {
		m["body"] = fn.Body.Accept(mv)
	}
	return m
}

func (mv MapVisitor) VisitCodeBlock(block *CodeBlock) interface{} {
	statements := make([]interface{}, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		statements = append(statements, stmt.Accept(mv))
	}
	return map[string]interface{}{
		"node":       "block",
		"statements": statements,
	}
}

func (mv MapVisitor) VisitAssignment(stmt *AssignmentStatement) interface{} {
	return map[string]interface{}{
		"node":   "assignment",
		"target": stmt.Target.Accept(mv),
		"value":  stmt.Source.Accept(mv),
	}
}

func (mv MapVisitor) VisitVariable(v *Variable) interface{} {
	return map[string]interface{}{
		"node": "variable",
		"name": v.Name,
		"type": v.DataType.String(),
	}
}

func (mv MapVisitor) VisitLiteral(l *Literal) interface{} {
	return map[string]interface{}{
		"node":  "literal",
		"value": l.Text,
		"type":  l.DataType.String(),
	}
}

func (mv MapVisitor) VisitOperation(op *Operation) interface{} {
	return map[string]interface{}{
		"node":     "operation",
		"operator": op.Op.String(),
		"category": op.Op.Category(),
		"type":     op.Result.String(),
		"left":     op.Left.Accept(mv),
		"right":    op.Right.Accept(mv),
	}
}
