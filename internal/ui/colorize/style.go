// Package colorize provides syntax highlighting for disassembly output.
package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register our custom disassembly style on package initialization
	_ = DisasmDark
}

// IDA-style theme colors
const (
	IDAAddress  = "#808080" // Gray for addresses
	IDAMnemonic = "#FFFFFF" // White for mnemonics
	IDARegister = "#87CEEB" // Light blue for registers
	IDANumber   = "#FF80C0" // Light pink for numbers
	IDALabel    = "#FFC800" // Yellow for labels/function names
	IDAComment  = "#FF8000" // Orange for comments
	IDAString   = "#00FF00" // Green for strings
	IDAHexBytes = "#646464" // Dark gray for hex bytes
)

// DisasmDark is a custom style for disassembly - IDA Pro style
var DisasmDark = styles.Register(chroma.MustNewStyle("disasm-dark", chroma.StyleEntries{
	chroma.Text:              "#FFFFFF",
	chroma.Background:        "bg:#000000",
	chroma.Keyword:           IDAMnemonic,
	chroma.Name:              IDARegister,
	chroma.NameBuiltin:       IDARegister,
	chroma.NameFunction:      IDALabel,
	chroma.NameLabel:         IDALabel,
	chroma.LiteralNumber:     IDANumber,
	chroma.LiteralNumberHex:  IDANumber,
	chroma.LiteralString:     IDAString,
	chroma.Comment:           IDAComment,
	chroma.CommentSingle:     IDAComment,
	chroma.Punctuation:       "#C0C0C0",
	chroma.Operator:          "#C0C0C0",
	chroma.GenericEmph:       IDAAddress,
	chroma.GenericOutput:     IDAHexBytes,
}))
