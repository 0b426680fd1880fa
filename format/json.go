package format

import (
	"encoding/json"
	"io"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

type JSONEncoder struct {
	w    io.Writer
	form *equation.LinearForm
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(form *equation.LinearForm) error {
	e.form = form
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildFormData(), "", "  ")
}

type jsonForm struct {
	Terms    []jsonTerm `json:"terms"`
	Constant float64    `json:"constant"`
	Display  string     `json:"display"`
}

type jsonTerm struct {
	Variable    string  `json:"variable"`
	Coefficient float64 `json:"coefficient"`
}

func (e *JSONEncoder) buildFormData() jsonForm {
	f := e.form
	terms := make([]jsonTerm, 0, len(f.Terms))
	for _, name := range f.Variables() {
		terms = append(terms, jsonTerm{
			Variable:    name,
			Coefficient: f.Terms[name],
		})
	}
	return jsonForm{
		Terms:    terms,
		Constant: f.Constant,
		Display:  f.String(),
	}
}
