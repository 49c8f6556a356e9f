package format

import "testing"

func TestRenderPositionalArguments(t *testing.T) {
	out, repl, err := Render("%2$@ = %1$d", NumberFormatter{}, []any{42, "answer"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != "answer = 42" {
		t.Fatalf("Render = %q, want %q", out, "answer = 42")
	}
	if len(repl) != 2 {
		t.Fatalf("len(replacements) = %d, want 2", len(repl))
	}
	if repl[0].ArgIndex != 2 || repl[1].ArgIndex != 1 {
		t.Fatalf("replacement arg indices = %d,%d, want 2,1", repl[0].ArgIndex, repl[1].ArgIndex)
	}
}

func TestRenderSequentialArguments(t *testing.T) {
	out, _, err := Render("%s has %d items", NumberFormatter{}, []any{"cart", 3})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != "cart has 3 items" {
		t.Fatalf("Render = %q, want %q", out, "cart has 3 items")
	}
}

func TestRenderMissingArgument(t *testing.T) {
	_, _, err := Render("%d and %d", NumberFormatter{}, []any{1})
	if err == nil {
		t.Fatalf("Render did not error on a missing argument")
	}
}

func TestRenderIntegerWithGrouping(t *testing.T) {
	nf := NumberFormatter{DecimalSeparator: ".", GroupingSeparator: ","}
	out, _, err := Render("%d", nf, []any{1234567})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != "1,234,567" {
		t.Fatalf("Render = %q, want %q", out, "1,234,567")
	}
}

func TestValidateAcceptsMatchingSpecifiers(t *testing.T) {
	if err := Validate("%d items for %s", "%d items for %s", 0); err != nil {
		t.Fatalf("Validate rejected matching specifier sequences: %v", err)
	}
}

func TestValidateRejectsMismatchedSpecifiers(t *testing.T) {
	if err := Validate("%d items for %s", "%s items for %s", 0); err == nil {
		t.Fatalf("Validate accepted a mismatched specifier kind")
	}
}
