package format

import (
	"io"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

type TextEncoder struct {
	w    io.Writer
	form *equation.LinearForm
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(form *equation.LinearForm) error {
	e.form = form
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.form.String() + "\n"), nil
}
