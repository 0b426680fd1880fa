package langserver

import (
	"errors"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostics checks every non-blank line of a document as one equation
// and returns a diagnostic per failing line. Lexer and parser failures
// carry positions and get precise ranges; non-linear and undefined
// equations are flagged whole.
func Diagnostics(content string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := equation.SimplifyExpression(line); err != nil {
			diagnostics = append(diagnostics, lineDiagnostic(i, line, err))
		}
	}
	return diagnostics
}

func lineDiagnostic(lineNo int, line string, err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostic := protocol.Diagnostic{
		Range:    lineRange(lineNo, 0, len(line)),
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}

	// Columns are byte offsets, matching the ASCII-only token syntax.
	var lexErr *equation.LexError
	var parseErr *equation.ParseError
	switch {
	case errors.As(err, &lexErr):
		start := lexErr.Pos.Column - 1
		diagnostic.Range = lineRange(lineNo, start, start+1)
	case errors.As(err, &parseErr):
		diagnostic.Range = lineRange(lineNo, parseErr.Pos.Column-1, len(line))
	}

	return diagnostic
}

func lineRange(line, startChar, endChar int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(startChar)},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(endChar)},
	}
}
