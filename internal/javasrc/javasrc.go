// Package javasrc extracts method signatures from Java source so callers can
// feed declared parameter names and types to the boundary-value generator
// without typing signatures by hand.
package javasrc

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Parameter is one declared method parameter
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Method is one extracted method declaration
type Method struct {
	// Name is the method's simple name
	Name string `json:"name"`

	// ClassName is the enclosing class's simple name, empty when the
	// method sits outside any class declaration
	ClassName string `json:"class_name,omitempty"`

	Parameters []Parameter `json:"parameters"`
}

// Parser wraps a tree-sitter parser configured for Java
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new Java parser
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return &Parser{parser: parser}
}

// Close closes the parser and frees resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseFile extracts all method declarations from a Java source file
func (p *Parser) ParseFile(filename string, source []byte) ([]Method, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}

	var methods []Method
	collectMethods(root, source, "", &methods)
	return methods, nil
}

// ParseString extracts all method declarations from Java source code
func (p *Parser) ParseString(source string) ([]Method, error) {
	return p.ParseFile("<input>", []byte(source))
}

// collectMethods walks the syntax tree, tracking the nearest enclosing class
func collectMethods(node *sitter.Node, source []byte, className string, out *[]Method) {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "record_declaration", "enum_declaration":
		if name := childByField(node, "name"); name != nil {
			className = name.Content(source)
		}
	case "method_declaration", "constructor_declaration":
		if m, ok := buildMethod(node, source, className); ok {
			*out = append(*out, m)
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil {
			collectMethods(child, source, className, out)
		}
	}
}

// buildMethod extracts the name and formal parameters of one declaration
func buildMethod(node *sitter.Node, source []byte, className string) (Method, bool) {
	nameNode := childByField(node, "name")
	if nameNode == nil {
		return Method{}, false
	}

	m := Method{
		Name:      nameNode.Content(source),
		ClassName: className,
	}

	params := childByField(node, "parameters")
	if params == nil {
		return m, true
	}

	for i := 0; i < int(params.ChildCount()); i++ {
		param := params.Child(i)
		if param == nil {
			continue
		}
		if param.Type() != "formal_parameter" && param.Type() != "spread_parameter" {
			continue
		}

		typeNode := childByField(param, "type")
		paramName := childByField(param, "name")
		if paramName == nil {
			continue
		}

		declared := ""
		if typeNode != nil {
			declared = typeNode.Content(source)
		}
		m.Parameters = append(m.Parameters, Parameter{
			Name: paramName.Content(source),
			Type: declared,
		})
	}

	return m, true
}

// childByField finds the child bound to a grammar field name
func childByField(node *sitter.Node, fieldName string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && node.FieldNameForChild(i) == fieldName {
			return child
		}
	}
	return nil
}
