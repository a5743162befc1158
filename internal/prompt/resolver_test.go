package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	text string
	err  error
}

func (s *stubStore) ActivePrompt(_ context.Context, _ uuid.UUID) (string, error) {
	return s.text, s.err
}

func TestResolve_ActivePrompt(t *testing.T) {
	r := NewResolver(&stubStore{text: "Sos Jessica, asesora de Silver Line."})
	got := r.Resolve(context.Background(), uuid.New())
	assert.Equal(t, "Sos Jessica, asesora de Silver Line.", got)
}

func TestResolve_StoreErrorFallsBack(t *testing.T) {
	r := NewResolver(&stubStore{err: errors.New("connection refused")})
	got := r.Resolve(context.Background(), uuid.New())
	assert.Equal(t, Fallback, got)
}

func TestResolve_NoRowFallsBack(t *testing.T) {
	r := NewResolver(&stubStore{text: ""})
	got := r.Resolve(context.Background(), uuid.New())
	assert.Equal(t, Fallback, got)
}

func TestResolve_NilClientFallsBack(t *testing.T) {
	r := NewResolver(&stubStore{text: "should not be reached"})
	got := r.Resolve(context.Background(), uuid.Nil)
	assert.Equal(t, Fallback, got)
}
