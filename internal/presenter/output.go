package presenter

import (
	"fmt"
	"io"
)

// Output - receives snapshots and notices, nothing is returned to the game.
type Output interface {
	Print(snapshot string)
	Notify(notice string)
}

type WriterOutput struct {
	w io.Writer
}

func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

func (that *WriterOutput) Print(snapshot string) {
	fmt.Fprintf(that.w, "%s\n\n", snapshot)
}

func (that *WriterOutput) Notify(notice string) {
	fmt.Fprintln(that.w, notice)
}
