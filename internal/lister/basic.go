package lister

import (
	"fmt"
	"io"

	"github.com/retroenv/c64reasm/internal/cursor"
)

var basicTokens = [...]string{
	"END", "FOR", "NEXT", "DATA", "INPUT#", "INPUT", "DIM", "READ",
	"LET", "GOTO", "RUN", "IF", "RESTORE", "GOSUB", "RETURN", "REM",
	"STOP", "ON", "WAIT", "LOAD", "SAVE", "VERIFY", "DEF", "POKE",
	"PRINT#", "PRINT", "CONT", "LIST", "CLR", "CMD", "SYS", "OPEN",
	"CLOSE", "GET", "NEW", "TAB(", "TO", "FN", "SPC(", "THEN",
	"NOT", "STEP", "+", "-", "*", "/", "^", "AND",
	"OR", ">", "=", "<", "SGN", "INT", "ABS", "USR",
	"FRE", "POS", "SQR", "RND", "LOG", "EXP", "COS", "SIN",
	"TAN", "ATN", "PEEK", "LEN", "STR$", "VAL", "ASC", "CHR$",
	"LEFT$", "RIGHT$", "MID$", "GO",
}

const (
	basicPi    = 0xFF
	basicQuote = 0x22
)

// listBasic lists the BASIC lines at the cursor position. The link to the next
// line is only used to detect the end of the program, linking may be broken.
func listBasic(w io.Writer, c *cursor.Cursor) {
	for c.Has(4) {
		address := c.Address()
		if c.ReadWord() == 0 {
			break
		}
		fmt.Fprintf(w, "%04X  %d ", address, c.ReadWord())

		quoted := false
		for c.Has(1) {
			b := c.ReadByte()
			if b == 0 {
				break
			}
			if b == basicQuote {
				quoted = !quoted
			}
			fmt.Fprint(w, basicText(b, quoted))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func basicText(b byte, quoted bool) string {
	switch {
	case b == basicPi:
		return "<PI>"
	case b < 0x80 || quoted:
		if r := petscii(b); r != 0 {
			return string(r)
		}
		return fmt.Sprintf("{$%02X}", b)
	case int(b-0x80) < len(basicTokens):
		return basicTokens[b-0x80]
	default:
		return fmt.Sprintf("{$%02X}", b)
	}
}

// petscii converts a byte of the lower case character set to a rune, 0 is
// returned for control codes and graphic characters.
func petscii(b byte) rune {
	switch {
	case b >= 0x20 && b <= 0x40:
		return rune(b)
	case b >= 0x41 && b <= 0x5A:
		return rune(b) + 'a' - 'A'
	case b == 0x5B, b == 0x5D:
		return rune(b)
	case b == 0x5C:
		return '£'
	case b == 0x5E:
		return '↑'
	case b == 0x5F:
		return '←'
	case b >= 0x61 && b <= 0x7A:
		return rune(b) - 0x20
	case b >= 0xC1 && b <= 0xDA:
		return rune(b) - 0x80
	default:
		return 0
	}
}
