package conversation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPreservesOrder(t *testing.T) {
	s := NewMemoryStore(0)
	a := Turn{Role: "user", Content: "Hola"}
	b := Turn{Role: "assistant", Content: "¡Hola! ¿En qué puedo ayudarte?"}

	s.Append("conv-1", a)
	s.Append("conv-1", b)

	got := s.History("conv-1")
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

func TestUnknownIDReturnsEmpty(t *testing.T) {
	s := NewMemoryStore(0)
	got := s.History("never-seen")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConversationsAreIndependent(t *testing.T) {
	s := NewMemoryStore(0)
	s.Append("a", Turn{Role: "user", Content: "uno"})
	s.Append("b", Turn{Role: "user", Content: "dos"})

	assert.Len(t, s.History("a"), 1)
	assert.Len(t, s.History("b"), 1)
	assert.Equal(t, "uno", s.History("a")[0].Content)
}

func TestMaxTurnsKeepsMostRecent(t *testing.T) {
	s := NewMemoryStore(4)
	for i := 0; i < 10; i++ {
		s.Append("conv", Turn{Role: "user", Content: fmt.Sprintf("msg %d", i)})
	}

	got := s.History("conv")
	require.Len(t, got, 4)
	assert.Equal(t, "msg 6", got[0].Content)
	assert.Equal(t, "msg 9", got[3].Content)
}

func TestHistoryReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0)
	s.Append("conv", Turn{Role: "user", Content: "original"})

	got := s.History("conv")
	got[0].Content = "mutated"

	assert.Equal(t, "original", s.History("conv")[0].Content)
}

func TestConcurrentAppends(t *testing.T) {
	s := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("conv-%d", n%5)
			s.Append(id, Turn{Role: "user", Content: "hola"})
			_ = s.History(id)
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 5; i++ {
		total += len(s.History(fmt.Sprintf("conv-%d", i)))
	}
	assert.Equal(t, 50, total)
}
