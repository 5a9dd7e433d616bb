package translate

import "context"

// Stub is a pass-through translator for environments without a translation
// model. Returns the input text unchanged.
type Stub struct{}

// NewStub creates a new pass-through translator.
func NewStub() *Stub { return &Stub{} }

// Translate returns text unchanged.
func (s *Stub) Translate(ctx context.Context, text, source, target string) (string, error) {
	return text, nil
}
