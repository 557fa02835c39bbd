package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
)

// getAssemblyLexer returns an appropriate assembly lexer with fallbacks
func getAssemblyLexer() chroma.Lexer {
	candidates := []string{"armasm", "gas", "GAS", "Gas", "nasm"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getDisasmStyle returns the disassembly style with fallbacks
func getDisasmStyle() *chroma.Style {
	candidates := []string{"disasm-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// Enabled reports whether colorized output should be produced.
func Enabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Asm highlights one line of disassembly. Plain text when color is off
// or no lexer is available.
func Asm(line string) string {
	if !Enabled() {
		return line
	}
	lexer := getAssemblyLexer()
	if lexer == nil {
		return line
	}
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return line
	}
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var b strings.Builder
	if err := formatter.Format(&b, getDisasmStyle(), iterator); err != nil {
		return line
	}
	return strings.TrimRight(b.String(), "\n")
}

// Line renders one address+instruction disassembly row.
func Line(addr uint64, raw uint32, text string) string {
	return fmt.Sprintf("%s  %s  %s",
		fmt.Sprintf("%#010x", addr),
		fmt.Sprintf("%08x", raw),
		Asm(text))
}
