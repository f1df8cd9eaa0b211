package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SGR attribute codes used by the default and caller-supplied [schema.Styles].
const (
	AttrReset     = 0
	AttrBold      = 1
	AttrFaint     = 2
	AttrItalic    = 3
	AttrUnderline = 4
	AttrReverse   = 7
)

// Foreground colors, SGR 30-37 and 90-97.
const (
	FgBlack = 30 + iota
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

const (
	FgBrightBlack = 90 + iota
	FgBrightRed
	FgBrightGreen
	FgBrightYellow
	FgBrightBlue
	FgBrightMagenta
	FgBrightCyan
	FgBrightWhite
)

// SGR builds a Select Graphic Rendition sequence from the given attribute
// codes, collapsing an empty call to the reset sequence.
func SGR(attrs ...int) string {
	if len(attrs) == 0 {
		return ansi.SGR(AttrReset)
	}

	return ansi.SGR(attrs...)
}

// Reset is the SGR sequence that clears every active attribute.
func Reset() string { return ansi.SGR(AttrReset) }

// CursorForward moves the cursor right n columns (CSI n C).
func CursorForward(n int) string { return ansi.CUF(n) }

// CursorBack moves the cursor left n columns (CSI n D).
func CursorBack(n int) string { return ansi.CUB(n) }

// CursorUp moves the cursor up n rows (CSI n A).
func CursorUp(n int) string { return ansi.CUU(n) }

// CursorDown moves the cursor down n rows (CSI n B).
func CursorDown(n int) string { return ansi.CUD(n) }

// CursorNextLine moves to the first column of the n-th line below (CSI n E).
func CursorNextLine(n int) string { return ansi.CNL(n) }

// CursorPrevLine moves to the first column of the n-th line above (CSI n F).
func CursorPrevLine(n int) string { return ansi.CPL(n) }

// CursorHorizontalAbsolute moves the cursor to column n of the current line
// (CSI n G), the sequence the help formatter uses to align a three-column
// entry without repainting the columns already written.
func CursorHorizontalAbsolute(n int) string { return ansi.CHA(n) }

// CursorHorizontalTab advances the cursor to the n-th tab stop ahead (CSI n I).
func CursorHorizontalTab(n int) string { return ansi.CHT(n) }

// CursorBackTab moves the cursor back to the n-th tab stop behind (CSI n Z).
func CursorBackTab(n int) string { return ansi.CBT(n) }

// CursorPosition moves the cursor to (row, col), both 1-indexed (CSI H).
func CursorPosition(row, col int) string { return ansi.CUP(row, col) }

// VerticalPositionAbsolute moves the cursor to row n of the current column
// (CSI n d).
func VerticalPositionAbsolute(n int) string { return ansi.VPA(n) }

// VerticalPositionRelative moves the cursor down n rows from its current
// row, without changing column (CSI n e).
func VerticalPositionRelative(n int) string { return ansi.VPR(n) }

// EraseDisplay clears the screen per mode (0 below, 1 above, 2 all).
func EraseDisplay(mode int) string { return ansi.ED(mode) }

// EraseLine clears the current line per mode (0 to end, 1 to start, 2 all).
func EraseLine(mode int) string { return ansi.EL(mode) }

// InsertLine inserts n blank lines at the cursor, shifting the rest down.
func InsertLine(n int) string { return ansi.IL(n) }

// DeleteLine deletes n lines at the cursor, shifting the rest up.
func DeleteLine(n int) string { return ansi.DL(n) }

// InsertChar inserts n blank characters at the cursor.
func InsertChar(n int) string { return ansi.ICH(n) }

// DeleteChar deletes n characters at the cursor.
func DeleteChar(n int) string { return ansi.DCH(n) }

// EraseChar overwrites n characters at the cursor with blanks, without
// shifting the remainder of the line.
func EraseChar(n int) string { return ansi.ECH(n) }

// ScrollUp scrolls the page up n lines.
func ScrollUp(n int) string { return ansi.SU(n) }

// ScrollDown scrolls the page down n lines.
func ScrollDown(n int) string { return ansi.SD(n) }

// ScrollLeft scrolls the page left n columns (CSI n SP @).
func ScrollLeft(n int) string { return ansi.SL(n) }

// ScrollRight scrolls the page right n columns (CSI n SP A).
func ScrollRight(n int) string { return ansi.SR(n) }

// RepeatPrecedingChar repeats the last graphic character n times (CSI n b).
func RepeatPrecedingChar(n int) string { return ansi.REP(n) }

// ClearTabStop clears tab stops per mode (0 at the cursor, 3 all) (CSI n g).
func ClearTabStop(mode int) string { return ansi.TBC(mode) }

// SetMargins sets the scrolling region to [top, bottom] (CSI r).
func SetMargins(top, bottom int) string {
	return "\x1b[" + strconv.Itoa(top) + ";" + strconv.Itoa(bottom) + "r"
}

func joinParams(params ...int) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.Itoa(p)
	}

	return strings.Join(parts, ";")
}
