package components

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aviary-ai/aviary/schema"
)

func TestMemoryOverflow(t *testing.T) {
	m := NewMemory(3)
	for i := range 5 {
		m.NewMessage(UserRole, schema.String(fmt.Sprintf("msg-%d", i)))
	}
	if got := m.MessageCount(); got != 3 {
		t.Fatalf("expecting 3 messages, got %d", got)
	}
	first := m.History()[0]
	if schema.Stringify(first.Content()) != "msg-2" {
		t.Errorf("expecting oldest message trimmed, got %s", schema.Stringify(first.Content()))
	}
}

func TestMemoryContext(t *testing.T) {
	m := NewMemory(0)
	m.NewTurn()
	m.NewMessage(SystemRole, schema.String("you are an airline ops assistant"))
	m.NewMessage(UserRole, schema.String("weather at JFK?"))
	m.NewMessage(AssistantRole, schema.String("Cloudy, 21°C."))
	turns := m.Context()
	if len(turns) != 2 {
		t.Fatalf("expecting 2 turns, got %d", len(turns))
	}
	if turns[0].Role != UserRole || turns[1].Role != AssistantRole {
		t.Errorf("unexpected roles: %+v", turns)
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	m := NewMemory(0)
	m.NewTurn()
	turnID := m.TurnID()
	m.NewMessage(UserRole, schema.String("first"))
	m.NewTurn()
	m.NewMessage(UserRole, schema.String("second"))
	if err := m.DeleteTurn(turnID); err != nil {
		t.Fatal(err)
	}
	if got := m.MessageCount(); got != 1 {
		t.Errorf("expecting 1 message, got %d", got)
	}
	if err := m.DeleteTurn("missing"); err == nil {
		t.Error("expecting error for unknown turn")
	}
}

func TestMemoryConcurrent(t *testing.T) {
	m := NewMemory(0)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.NewMessage(UserRole, schema.String(fmt.Sprintf("msg-%d", i)))
		}(i)
	}
	wg.Wait()
	if got := m.MessageCount(); got != 16 {
		t.Errorf("expecting 16 messages, got %d", got)
	}
}
