package main

import (
	"encoding/json"
	"fmt"

	"github.com/mgomes/monkey/monkey"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

func validDumpFormat(format string) bool {
	switch format {
	case formatText, formatYAML, formatJSON:
		return true
	default:
		return false
	}
}

// astNode is the structural dump of one tree node. Only the fields that
// belong to the node's kind are set.
type astNode struct {
	Kind        string     `json:"kind" yaml:"kind"`
	Pos         string     `json:"pos" yaml:"pos"`
	Literal     string     `json:"literal,omitempty" yaml:"literal,omitempty"`
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Operator    string     `json:"operator,omitempty" yaml:"operator,omitempty"`
	Params      []string   `json:"params,omitempty" yaml:"params,omitempty"`
	Value       *astNode   `json:"value,omitempty" yaml:"value,omitempty"`
	Left        *astNode   `json:"left,omitempty" yaml:"left,omitempty"`
	Right       *astNode   `json:"right,omitempty" yaml:"right,omitempty"`
	Condition   *astNode   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Consequence *astNode   `json:"consequence,omitempty" yaml:"consequence,omitempty"`
	Alternative *astNode   `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	Function    *astNode   `json:"function,omitempty" yaml:"function,omitempty"`
	Arguments   []*astNode `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Body        *astNode   `json:"body,omitempty" yaml:"body,omitempty"`
	Statements  []*astNode `json:"statements,omitempty" yaml:"statements,omitempty"`
}

func renderProgram(program *monkey.Program, format string) (string, error) {
	switch format {
	case formatText:
		if len(program.Statements) == 0 {
			return "", nil
		}
		return program.String() + "\n", nil
	case formatYAML:
		tree, err := dumpNode(program)
		if err != nil {
			return "", err
		}
		out, err := yaml.Marshal(tree)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(out), nil
	case formatJSON:
		tree, err := dumpNode(program)
		if err != nil {
			return "", err
		}
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(out) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func dumpNode(node monkey.Node) (*astNode, error) {
	out := &astNode{Pos: fmt.Sprintf("%d:%d", node.Pos().Line, node.Pos().Column)}

	var err error
	switch n := node.(type) {
	case *monkey.Program:
		out.Kind = "Program"
		out.Statements, err = dumpStatements(n.Statements)
	case *monkey.LetStatement:
		out.Kind = "LetStatement"
		if n.Name != nil {
			out.Name = n.Name.Value
		}
		out.Value, err = dumpExpression(n.Value)
	case *monkey.ReturnStatement:
		out.Kind = "ReturnStatement"
		out.Value, err = dumpExpression(n.Value)
	case *monkey.ExpressionStatement:
		out.Kind = "ExpressionStatement"
		out.Value, err = dumpExpression(n.Expression)
	case *monkey.BlockStatement:
		out.Kind = "BlockStatement"
		out.Statements, err = dumpStatements(n.Statements)
	case *monkey.Identifier:
		out.Kind = "Identifier"
		out.Literal = n.Value
	case *monkey.IntegerLiteral:
		out.Kind = "IntegerLiteral"
		out.Literal = n.Token.Literal
	case *monkey.Boolean:
		out.Kind = "Boolean"
		out.Literal = n.Token.Literal
	case *monkey.PrefixExpression:
		out.Kind = "PrefixExpression"
		out.Operator = n.Operator
		out.Right, err = dumpExpression(n.Right)
	case *monkey.InfixExpression:
		out.Kind = "InfixExpression"
		out.Operator = n.Operator
		if out.Left, err = dumpExpression(n.Left); err == nil {
			out.Right, err = dumpExpression(n.Right)
		}
	case *monkey.IfExpression:
		out.Kind = "IfExpression"
		if out.Condition, err = dumpExpression(n.Condition); err != nil {
			break
		}
		if out.Consequence, err = dumpBlock(n.Consequence); err != nil {
			break
		}
		out.Alternative, err = dumpBlock(n.Alternative)
	case *monkey.FunctionLiteral:
		out.Kind = "FunctionLiteral"
		out.Params = make([]string, 0, len(n.Parameters))
		for _, param := range n.Parameters {
			out.Params = append(out.Params, param.Value)
		}
		out.Body, err = dumpBlock(n.Body)
	case *monkey.CallExpression:
		out.Kind = "CallExpression"
		if out.Function, err = dumpExpression(n.Function); err != nil {
			break
		}
		for _, arg := range n.Arguments {
			var dumped *astNode
			if dumped, err = dumpExpression(arg); err != nil {
				break
			}
			out.Arguments = append(out.Arguments, dumped)
		}
	default:
		return nil, fmt.Errorf("unsupported node %T", node)
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}

func dumpStatements(stmts []monkey.Statement) ([]*astNode, error) {
	out := make([]*astNode, 0, len(stmts))
	for _, stmt := range stmts {
		dumped, err := dumpNode(stmt)
		if err != nil {
			return nil, err
		}
		out = append(out, dumped)
	}
	return out, nil
}

func dumpExpression(expr monkey.Expression) (*astNode, error) {
	if expr == nil {
		return nil, nil
	}
	return dumpNode(expr)
}

func dumpBlock(block *monkey.BlockStatement) (*astNode, error) {
	if block == nil {
		return nil, nil
	}
	return dumpNode(block)
}
