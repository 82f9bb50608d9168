package demo

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader waits for a key on a terminal input, switching it to raw mode for the wait
// so a single key press is enough.
type KeyReader struct {
	In io.Reader
}

func NewKeyReader(in io.Reader) *KeyReader {
	return &KeyReader{In: in}
}

// WaitForKey returns after the first non-zero byte.
func (k *KeyReader) WaitForKey() error {
	if f, ok := k.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()
	}

	buf := make([]byte, 4)
	for {
		n, err := k.In.Read(buf)
		for _, b := range buf[:n] {
			if b != 0 {
				return nil
			}
		}
		if err != nil {
			return fmt.Errorf("waiting for a key: %w", err)
		}
	}
}
