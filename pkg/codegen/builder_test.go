package codegen

import (
	"strings"
	"testing"
)

func TestBuilder_IndentationAndNesting(t *testing.T) {
	b := NewBuilder()
	b.OpenBlock("namespace Example")
	b.OpenBlock("public class Widget")
	b.Line("private int count;")
	b.CloseBlock()
	b.CloseBlock()

	got := b.String()
	want := "namespace Example\n{\n    public class Widget\n    {\n        private int count;\n    }\n}\n"
	if got != want {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestBuilder_Balanced(t *testing.T) {
	b := NewBuilder()
	if !b.Balanced() {
		t.Error("new builder should be balanced")
	}

	b.OpenBlock("class A")
	if b.Balanced() {
		t.Error("builder with open block should not be balanced")
	}
	if b.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", b.Depth())
	}

	b.CloseBlock()
	if !b.Balanced() {
		t.Error("builder should be balanced after close")
	}
}

func TestBuilder_CloseBlockSuffix(t *testing.T) {
	b := NewBuilder()
	b.OpenBlock("handler = () =>")
	b.Line("Begin();")
	b.CloseBlock(";")

	if !strings.Contains(b.String(), "};") {
		t.Errorf("expected closing brace with suffix, got:\n%s", b.String())
	}
}

func TestBuilder_PanicsOnUnmatchedClose(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on CloseBlock without OpenBlock")
		}
	}()
	NewBuilder().CloseBlock()
}

func TestBuilder_PanicsOnUnbalancedString(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on String with open blocks")
		}
	}()
	b := NewBuilder()
	b.OpenBlock("class A")
	_ = b.String()
}

func TestBuilder_DirectiveIgnoresIndent(t *testing.T) {
	b := NewBuilder()
	b.OpenBlock("namespace Example")
	b.Directive("#if MONO")
	b.Line("using ScheduleOne.Quests;")
	b.Directive("#endif")
	b.CloseBlock()

	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") && strings.HasPrefix(line, " ") {
			t.Errorf("directive should start at column zero: %q", line)
		}
	}
}
