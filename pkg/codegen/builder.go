package codegen

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Builder accumulates generated source line by line, tracking indentation
// and scope balance. Emitters never concatenate raw strings; everything
// flows through here so the output stays structurally balanced.
type Builder struct {
	sb     strings.Builder
	depth  int
	opened int
	closed int
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Line writes one indented line.
func (b *Builder) Line(text string) {
	if text == "" {
		b.sb.WriteByte('\n')
		return
	}
	for i := 0; i < b.depth; i++ {
		b.sb.WriteString(indentUnit)
	}
	b.sb.WriteString(text)
	b.sb.WriteByte('\n')
}

// Linef writes one indented formatted line.
func (b *Builder) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (b *Builder) Blank() {
	b.sb.WriteByte('\n')
}

// Comment writes a line comment.
func (b *Builder) Comment(text string) {
	b.Line("// " + text)
}

// DocComment writes an XML doc summary block.
func (b *Builder) DocComment(text string) {
	b.Line("/// <summary>")
	for _, line := range strings.Split(text, "\n") {
		b.Line("/// " + line)
	}
	b.Line("/// </summary>")
}

// Directive writes a preprocessor line at column zero regardless of the
// current indent level.
func (b *Builder) Directive(text string) {
	b.sb.WriteString(text)
	b.sb.WriteByte('\n')
}

// OpenBlock writes the header line, an opening brace, and increases the
// indent. Pass an empty header for a bare block.
func (b *Builder) OpenBlock(header string) {
	if header != "" {
		b.Line(header)
	}
	b.Line("{")
	b.depth++
	b.opened++
}

// CloseBlock decreases the indent and writes the closing brace, with an
// optional trailing suffix (e.g. ";"). Closing a block that was never
// opened is an emitter bug, not a user-input problem.
func (b *Builder) CloseBlock(suffix ...string) {
	if b.closed >= b.opened {
		panic("codegen: CloseBlock without matching OpenBlock")
	}
	b.depth--
	b.closed++
	line := "}"
	if len(suffix) > 0 {
		line += strings.Join(suffix, "")
	}
	b.Line(line)
}

// Depth returns the current nesting depth.
func (b *Builder) Depth() int {
	return b.depth
}

// Balanced reports whether every opened block has been closed.
func (b *Builder) Balanced() bool {
	return b.opened == b.closed
}

// String returns the accumulated source. It panics if any block is still
// open, so an unbalanced emitter fails loudly in tests instead of emitting
// source that cannot compile.
func (b *Builder) String() string {
	if !b.Balanced() {
		panic(fmt.Sprintf("codegen: %d block(s) left open", b.opened-b.closed))
	}
	return b.sb.String()
}
