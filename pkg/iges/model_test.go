package iges

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCreateEntityUnsupportedType(t *testing.T) {
	m := NewModel()
	_, err := m.CreateEntity(9999)
	if !errors.Is(err, ErrUnsupportedEntity) {
		t.Fatalf("got %v, want ErrUnsupportedEntity", err)
	}
}

func TestGetEntitiesByType(t *testing.T) {
	m := NewModel()
	a, _ := m.CreateEntity(TypeLine110)
	b, _ := m.CreateEntity(TypeLine110)
	_, _ = m.CreateEntity(TypeColor314)

	lines := m.GetEntitiesByType(TypeLine110)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !containsEntity(lines, a) || !containsEntity(lines, b) {
		t.Error("both created lines should be returned")
	}
}

func TestSetGlobal(t *testing.T) {
	m := NewModel()
	m.SetGlobal("MM", 1e-7, "pcbkernel")
	g := m.Global()
	if g.Units != "MM" || g.Resolution != 1e-7 || g.Author != "pcbkernel" {
		t.Errorf("Global() = %+v, want {MM 1e-07 pcbkernel}", g)
	}
}

func TestEntityBySeqUnresolved(t *testing.T) {
	m := NewModel()
	_, err := m.EntityBySeq(42)
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Fatalf("got %v, want ErrUnresolvedReference", err)
	}
}
