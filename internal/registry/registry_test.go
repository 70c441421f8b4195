package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })

	require.True(t, Exists("zz_stub"))
	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub", g.Title())

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			assert.Equal(t, "Stub", info.Title)
		}
	}
	assert.True(t, found)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.ErrorContains(t, err, `"missing"`)
	assert.False(t, Exists("missing"))

	_, ok := Lookup("missing")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	Register("zz_lookup", func() Game { return &stubGame{id: "zz_lookup", title: "Lookup"} })

	info, ok := Lookup("zz_lookup")
	require.True(t, ok)
	assert.Equal(t, GameInfo{ID: "zz_lookup", Title: "Lookup"}, info)
}

func TestRegisterRejectsEmpty(t *testing.T) {
	assert.Panics(t, func() { Register("", func() Game { return &stubGame{} }) })
	assert.Panics(t, func() { Register("zz_nil", nil) })
	assert.False(t, Exists("zz_nil"))
}

func TestRegisterTwicePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	})
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
