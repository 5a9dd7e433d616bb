package translate

import (
	"context"
	"testing"
)

func TestStub_Translate_PassThrough(t *testing.T) {
	t.Parallel()

	stub := NewStub()

	got, err := stub.Translate(context.Background(), "Der Hund läuft", "de", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Der Hund läuft" {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
