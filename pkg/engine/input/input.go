package input

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after a
// leading ESC byte. Returns the arrow direction code, or empty string.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadIntent blocks on one keypress in raw mode and returns its intent.
// Arrow keys and single characters both return immediately, no Enter
// needed. Ctrl+C maps to quit.
func ReadIntent() Intent {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	var code string
	switch {
	case b1 == 0x1b:
		code = tryReadArrowKey()
		if code == "" {
			code = "escape"
		}
	case b1 == 3: // Ctrl+C
		fmt.Println()
		code = "q"
	case b1 >= 32 && b1 < 127:
		code = string(lowercase(b1))
	default:
		return Intent{Action: ActionNone}
	}

	raw := RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

func lowercase(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
