package prune

import (
	"bytes"
	"strings"
	"testing"
)

// runConsole feeds scripted operator input through a ConsoleSelector.
func runConsole(t *testing.T, input string) (selectedCount int, output string) {
	t.Helper()
	var out bytes.Buffer
	selector := NewConsoleSelector(strings.NewReader(input), &out)
	selected, err := selector.Select(sampleRegions())
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	return len(selected), out.String()
}

func TestConsoleAcceptAllWithConfirmation(t *testing.T) {
	n, out := runConsole(t, "a\nyes\n")
	if n != 3 {
		t.Errorf("selected %d regions, want 3", n)
	}
	if !strings.Contains(out, "Type 'yes' to confirm") {
		t.Error("accept-all did not ask for the confirmation token")
	}
}

func TestConsoleAcceptAllWithoutConfirmation(t *testing.T) {
	for _, confirm := range []string{"no", "y", "", "YES PLEASE"} {
		if n, _ := runConsole(t, "a\n"+confirm+"\n"); n != 0 {
			t.Errorf("confirmation %q accepted %d regions, want 0", confirm, n)
		}
	}
}

func TestConsoleConfirmationTokenCaseInsensitive(t *testing.T) {
	if n, _ := runConsole(t, "A\nYES\n"); n != 3 {
		t.Error("expected uppercase choice and token to be accepted")
	}
}

func TestConsolePerRegionSelection(t *testing.T) {
	n, _ := runConsole(t, "s\ny\nn\ny\n")
	if n != 2 {
		t.Errorf("selected %d regions, want 2", n)
	}
}

func TestConsoleCancel(t *testing.T) {
	if n, _ := runConsole(t, "n\n"); n != 0 {
		t.Error("explicit cancel still selected regions")
	}
}

func TestConsoleUnrecognizedChoiceCancels(t *testing.T) {
	for _, choice := range []string{"x\n", "delete\n", "\n"} {
		if n, _ := runConsole(t, choice); n != 0 {
			t.Errorf("choice %q did not cancel", strings.TrimSpace(choice))
		}
	}
}

func TestConsoleEOFCancels(t *testing.T) {
	if n, _ := runConsole(t, ""); n != 0 {
		t.Error("closed input stream must cancel, not select")
	}
	if n, _ := runConsole(t, "a\n"); n != 0 {
		t.Error("EOF at the confirmation prompt must cancel")
	}
}
