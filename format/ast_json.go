package format

import (
	"encoding/json"
	"io"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(eq *equation.Equation) error {
	text, err := e.MarshalText(eq)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(eq *equation.Equation) ([]byte, error) {
	data := astJSONEquation{
		Left:  exprToJSON(eq.Left),
		Right: exprToJSON(eq.Right),
	}
	return json.MarshalIndent(data, "", "  ")
}

type astJSONEquation struct {
	Left  *astJSONNode `json:"left"`
	Right *astJSONNode `json:"right"`
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Value    *float64       `json:"value,omitempty"`
	Name     string         `json:"name,omitempty"`
	Op       string         `json:"op,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

func exprToJSON(expr equation.Expr) *astJSONNode {
	switch e := expr.(type) {
	case *equation.Number:
		value := e.Value
		return &astJSONNode{Kind: "number", Value: &value}
	case *equation.Variable:
		return &astJSONNode{Kind: "variable", Name: e.Name}
	case *equation.Unary:
		return &astJSONNode{
			Kind:     "unary",
			Op:       e.Op.String(),
			Children: []*astJSONNode{exprToJSON(e.X)},
		}
	case *equation.Binary:
		return &astJSONNode{
			Kind:     "binary",
			Op:       e.Op.String(),
			Children: []*astJSONNode{exprToJSON(e.Left), exprToJSON(e.Right)},
		}
	case *equation.Call:
		return &astJSONNode{
			Kind:     "call",
			Name:     e.Name,
			Children: []*astJSONNode{exprToJSON(e.Arg)},
		}
	case *equation.Undefined:
		return &astJSONNode{Kind: "undefined", Reason: e.Reason}
	}
	return nil
}
