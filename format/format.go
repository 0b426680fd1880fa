package format

import (
	"encoding"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(form *equation.LinearForm) error
}
