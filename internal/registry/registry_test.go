package registry

import (
	"testing"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "second", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "first", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create() returned %q, expected stub_b", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
			if list[i].Title != "Stub stub_a" || list[i].Description != "first" {
				t.Errorf("List() info = %+v", list[i])
			}
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted ids containing stub_a before stub_b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })
}
