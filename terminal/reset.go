package terminal

import (
	"io"
	"os"
)

var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes the sequences that leave the alternate screen and restore
// cursor, attributes and wrapping, then re-enables cooked mode where supported
// For crash paths where Fini cannot be trusted; errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
