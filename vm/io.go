package vm

import (
	"bufio"
	"io"
)

// ioAdapter is the byte-granular stream pair bound to the machine's
// Output and Input opcodes. Output flushes per byte so an interactive
// program's prompt is visible immediately; Input is sticky at
// end-of-stream.
type ioAdapter struct {
	out *bufio.Writer
	in  *bufio.Reader

	eof bool
}

func newIOAdapter(out io.Writer, in io.Reader) *ioAdapter {
	return &ioAdapter{
		out: bufio.NewWriter(out),
		in:  bufio.NewReader(in),
	}
}

// writeByte writes one byte to the output stream and flushes
// immediately, preserving I/O causality with whatever reads stdout.
func (a *ioAdapter) writeByte(b byte) error {
	if err := a.out.WriteByte(b); err != nil {
		return err
	}
	return a.out.Flush()
}

// readByte blocks until a byte is available or the stream ends. Once
// end-of-stream is observed it is sticky: every subsequent call also
// reports EOF without touching the underlying reader again.
func (a *ioAdapter) readByte() (b byte, eof bool) {
	if a.eof {
		return 0, true
	}

	b, err := a.in.ReadByte()
	if err != nil {
		a.eof = true
		return 0, true
	}
	return b, false
}
