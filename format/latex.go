package format

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

type LaTeXEncoder struct {
	w    io.Writer
	form *equation.LinearForm
}

func NewLaTeXEncoder(w io.Writer) *LaTeXEncoder {
	return &LaTeXEncoder{w: w}
}

func (e *LaTeXEncoder) Encode(form *equation.LinearForm) error {
	e.form = form
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LaTeXEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	f := e.form

	names := f.Variables()
	for i, name := range names {
		coef := f.Terms[name]
		if i == 0 {
			switch {
			case coef == -1:
				sb.WriteString("-")
			case coef != 1:
				sb.WriteString(latexNumber(coef))
			}
		} else {
			if coef < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			if abs := math.Abs(coef); abs != 1 {
				sb.WriteString(latexNumber(abs))
			}
		}
		sb.WriteString(latexVariable(name))
	}
	if len(names) == 0 {
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, " = %s", latexNumber(f.Constant))

	return []byte(sb.String()), nil
}

// latexVariable wraps multi-letter names in \mathit so they render as a
// single identifier instead of a product of single letters.
func latexVariable(name string) string {
	if len(name) > 1 {
		return `\mathit{` + name + `}`
	}
	return name
}

func latexNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
