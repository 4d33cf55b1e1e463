// SPDX-License-Identifier: Apache-2.0

package history

import (
	"errors"
	"testing"
)

// counter is a minimal Cloner[T] used to test History in isolation from
// the timeline model.
type counter struct {
	value int
}

func (c *counter) Clone() *counter {
	return &counter{value: c.value}
}

func TestExecuteRecordsUndoEntry(t *testing.T) {
	h := New[*counter]()
	c := &counter{value: 0}

	err := h.Execute(&c, "increment", func(cur *counter) error {
		cur.value++
		return nil
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if c.value != 1 {
		t.Fatalf("expected value 1, got %d", c.value)
	}
	if !h.CanUndo() {
		t.Fatal("expected CanUndo")
	}
	if h.CanRedo() {
		t.Fatal("expected redo stack empty after Execute")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New[*counter]()
	c := &counter{value: 5}

	if err := h.Execute(&c, "add 10", func(cur *counter) error {
		cur.value += 10
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if c.value != 15 {
		t.Fatalf("expected 15, got %d", c.value)
	}

	if err := h.Undo(&c); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if c.value != 5 {
		t.Fatalf("undo∘execute(f) should be identity: expected 5, got %d", c.value)
	}

	if err := h.Redo(&c); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if c.value != 15 {
		t.Fatalf("redo∘undo∘execute(f) should restore after-state: expected 15, got %d", c.value)
	}
}

func TestFailedExecuteLeavesStateUnchanged(t *testing.T) {
	h := New[*counter]()
	c := &counter{value: 42}
	boom := errors.New("boom")

	err := h.Execute(&c, "will fail", func(cur *counter) error {
		cur.value = 999
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if c.value != 42 {
		t.Fatalf("expected state restored to 42, got %d", c.value)
	}
	if h.CanUndo() {
		t.Fatal("a failed execute must not push an undo entry")
	}
}

func TestNewCommandAfterUndoClearsRedo(t *testing.T) {
	h := New[*counter]()
	c := &counter{value: 0}

	step := func(delta int) func(*counter) error {
		return func(cur *counter) error {
			cur.value += delta
			return nil
		}
	}

	_ = h.Execute(&c, "step1", step(1))
	_ = h.Execute(&c, "step2", step(1))
	_ = h.Undo(&c)
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	if err := h.Execute(&c, "step3", step(5)); err != nil {
		t.Fatal(err)
	}
	if h.CanRedo() {
		t.Fatal("a new command after undo must clear the redo stack (P5)")
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	h := New[*counter]()
	c := &counter{}
	if err := h.Undo(&c); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestRedoOnEmptyStack(t *testing.T) {
	h := New[*counter]()
	c := &counter{}
	if err := h.Redo(&c); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("expected ErrNothingToRedo, got %v", err)
	}
}
