package cleanup

import (
	"errors"
	"testing"
)

func TestRunAllLIFO(t *testing.T) {
	var order []int
	Register(func() error { order = append(order, 1); return nil })
	Register(func() error { order = append(order, 2); return nil })
	Register(func() error { order = append(order, 3); return nil })

	if err := RunAll(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("order = %v, want [3 2 1]", order)
	}
}

func TestRunAllCollectsErrors(t *testing.T) {
	Register(func() error { return errors.New("first") })
	Register(func() error { return nil })
	Register(func() error { return errors.New("last") })

	err := RunAll()
	if err == nil {
		t.Fatal("expected a combined error")
	}
}

func TestRunAllClearsHooks(t *testing.T) {
	ran := 0
	Register(func() error { ran++; return nil })

	if err := RunAll(); err != nil {
		t.Fatal(err)
	}
	if err := RunAll(); err != nil {
		t.Fatal(err)
	}
	if ran != 1 {
		t.Errorf("hook ran %d times, want 1", ran)
	}
}

func TestRegisterNil(t *testing.T) {
	Register(nil)
	if err := RunAll(); err != nil {
		t.Fatal(err)
	}
}
