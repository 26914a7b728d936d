package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cipherium-go/internal/encryption"
)

// entry is one line of the protocol menu
type entry struct {
	Label   string
	Op      encryption.OpType
	Decrypt bool
	// Verb fills "Enter message to <verb>: " for direction-specific entries
	Verb string
	Exit bool
}

// menu is ordered; the 1-based position is the selection number
var menu = []entry{
	{Label: "Caesar", Op: encryption.OpCaesar},
	{Label: "Symbol", Op: encryption.OpSymbol},
	{Label: "Reverse", Op: encryption.OpReverse},
	{Label: "Vigenère +Encode", Op: encryption.OpVigenere},
	{Label: "Vigenère -Decode", Op: encryption.OpVigenere, Decrypt: true},
	{Label: "Super  Encode", Op: encryption.OpSuperEncode, Verb: "encode"},
	{Label: "Super -Decode", Op: encryption.OpSuperDecode, Verb: "decode"},
	{Label: "Base64  Encode", Op: encryption.OpBase64Encode, Verb: "encode"},
	{Label: "Base64 -Decode", Op: encryption.OpBase64Decode, Verb: "decode"},
	{Label: "SHA256", Op: encryption.OpSHA256, Verb: "hash"},
	{Label: "StreamCipherX  Encode / -Decode", Op: encryption.OpStreamCipherX},
	{Label: "KeyStretchHash", Op: encryption.OpKeyStretchHash},
	{Label: "MatrixMixer", Op: encryption.OpMatrixMixer},
	{Label: "DoubleHashChain", Op: encryption.OpDoubleHashChain},
	{Label: "Exit", Exit: true},
}

// selectEntry resolves "1", "01" or " 1 " to a menu entry
func selectEntry(choice string) (entry, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < 1 || n > len(menu) {
		return entry{}, false
	}
	return menu[n-1], true
}

const menuWidth = 39

func (s *Shell) renderMenu() {
	t := s.theme
	border := strings.Repeat("─", menuWidth)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, t.Frame.Sprint("  ┌"+border+"┐"))
	fmt.Fprintln(s.out, t.Frame.Sprint("  │ "+pad("Protocols:", menuWidth-1)+"│"))
	fmt.Fprintln(s.out, t.Frame.Sprint("  ├"+border+"┤"))
	for i, e := range menu {
		line := fmt.Sprintf("  │ %02d %s│", i+1, pad(e.Label, menuWidth-4))
		if e.Exit {
			fmt.Fprintln(s.out, t.Danger.Sprint(line))
			continue
		}
		fmt.Fprintln(s.out, t.Item.Sprint(line))
	}
	fmt.Fprintln(s.out, t.Frame.Sprint("  └"+border+"┘"))
	fmt.Fprint(s.out, t.Prompt.Sprintf(">>> Select protocol (01-%02d): ", len(menu)))
}

// pad right-pads s with spaces to width characters
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
