package minic

import (
	"fmt"
	"io"
)

// Dumper prints a snapshot of an Interp's symbol tables: one section
// per table, written after a run completes (or halts) for post-mortem
// inspection via -dump.
type Dumper struct {
	Interp *Interp
	Out    io.Writer
}

// Dump writes the current globals, locals, call stack, and function
// table to Out.
func (d Dumper) Dump() {
	ip := d.Interp
	fmt.Fprintf(d.Out, "# minic dump\n")
	fmt.Fprintf(d.Out, "  cursor: %d (of %d)\n", ip.prog, len(ip.buf))

	fmt.Fprintf(d.Out, "  functions:\n")
	for _, fn := range ip.funcs {
		fmt.Fprintf(d.Out, "    %s %s @%d\n", fn.RetType, fn.Name, fn.Entry)
	}

	fmt.Fprintf(d.Out, "  globals:\n")
	for _, v := range ip.globals {
		fmt.Fprintf(d.Out, "    %s %s = %d\n", v.Type, v.Name, v.Value)
	}

	fmt.Fprintf(d.Out, "  call stack (functos=%d):\n", ip.functos)
	for i, floor := range ip.callStack[:ip.functos] {
		fmt.Fprintf(d.Out, "    #%d floor=%d\n", i, floor)
	}

	fmt.Fprintf(d.Out, "  locals (lvartos=%d):\n", ip.lvartos)
	for i, v := range ip.locals[:ip.lvartos] {
		fmt.Fprintf(d.Out, "    @%d %s %s = %d\n", i, v.Type, v.Name, v.Value)
	}
}
