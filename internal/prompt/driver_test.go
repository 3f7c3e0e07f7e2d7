package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", got)
	}

	wrapped := fmt.Errorf("asking: %w", terminal.InterruptErr)
	if got := translateSurveyErr(wrapped); !errors.Is(got, ErrAborted) {
		t.Fatalf("expected ErrAborted for wrapped interrupt, got %v", got)
	}

	other := errors.New("tty closed")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected error to pass through, got %v", got)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"3", "4", "5"}
	if got := indexOf(options, "4"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := indexOf(options, "9"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewSurveyDriver()
	if _, err := d.Confirm(ctx, "overwrite?"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := d.Input(ctx, InputConfig{Message: "name"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
