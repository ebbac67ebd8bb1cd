// Package colorize highlights assembly output for terminals.
package colorize

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// getAssemblyLexer returns a 6502 capable assembly lexer with fallbacks.
func getAssemblyLexer() chroma.Lexer {
	for _, name := range []string{"ca65", "nasm", "gas"} {
		if lexer := lexers.Get(name); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}
	return nil
}

func getStyle() *chroma.Style {
	for _, name := range []string{"monokai", "dracula"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func getTerminalFormatter(trueColor bool) chroma.Formatter {
	candidates := []string{"terminal256", "terminal16m"}
	if trueColor {
		candidates = []string{"terminal16m", "terminal256"}
	}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Assembly applies syntax highlighting to assembly code. The code is returned
// unmodified if no assembly lexer is available.
func Assembly(code string, trueColor bool) (string, error) {
	lexer := getAssemblyLexer()
	if lexer == nil {
		return code, nil
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, fmt.Errorf("tokenizing assembly: %w", err)
	}

	var buf strings.Builder
	if err := getTerminalFormatter(trueColor).Format(&buf, getStyle(), iterator); err != nil {
		return code, fmt.Errorf("formatting assembly: %w", err)
	}
	return buf.String(), nil
}
