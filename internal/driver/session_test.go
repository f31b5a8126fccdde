package driver

import (
	"testing"

	"pathviz/internal/core"
	"pathviz/internal/mapgen"
	"pathviz/internal/monitoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	m.Run()
}

func openSession(t *testing.T, rows, cols int) *Session {
	t.Helper()
	s := New(Config{Rows: rows, Cols: cols, Seed: 3, WallProb: 0})
	require.Zero(t, s.Grid().Count(core.Wall))
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := New(DefaultConfig())
	assert.Equal(t, 25, s.Grid().Rows)
	assert.Equal(t, 40, s.Grid().Cols)
	assert.Equal(t, "astar", s.Selected().Key)
	assert.Equal(t, msgWelcome, s.Status())
	assert.True(t, mapgen.Connected(s.Grid()))
	assert.Positive(t, s.Grid().Count(core.Wall))
	_, ok := s.Start()
	assert.False(t, ok)

	bare := New(Config{})
	assert.Equal(t, 25*40, bare.Grid().Rows*bare.Grid().Cols)
	assert.Zero(t, bare.Grid().Count(core.Wall), "zero wall probability leaves the board empty")
}

func TestAlgorithmsMatchRegistry(t *testing.T) {
	registered := core.Engines()
	for _, a := range Algorithms {
		_, ok := registered[a.Key]
		assert.True(t, ok, "%s is not registered", a.Key)
	}
	assert.Len(t, Algorithms, 7)
}

func TestClickSequence(t *testing.T) {
	s := openSession(t, 4, 4)
	a, b, c := core.Position{Row: 0, Col: 0}, core.Position{Row: 3, Col: 3}, core.Position{Row: 1, Col: 1}

	s.Grid().Set(a, core.Wall)
	assert.True(t, s.Click(a))
	assert.Equal(t, core.Start, s.Grid().At(a), "start replaces a wall")
	assert.Equal(t, msgStartSet, s.Status())

	assert.False(t, s.Click(a))
	assert.Equal(t, msgGoalOnSt, s.Status())

	assert.True(t, s.Click(b))
	assert.Equal(t, core.Goal, s.Grid().At(b))
	assert.Equal(t, msgGoalSet, s.Status())

	assert.True(t, s.Click(c))
	assert.Equal(t, core.Wall, s.Grid().At(c))
	assert.True(t, s.Click(c))
	assert.Equal(t, core.Empty, s.Grid().At(c))

	assert.False(t, s.Click(a), "endpoints are not toggled")
	assert.False(t, s.Click(b))
	assert.False(t, s.Click(core.Position{Row: 9, Col: 9}))

	s.Grid().Set(c, core.Closed)
	assert.True(t, s.Click(c))
	assert.Equal(t, core.Wall, s.Grid().At(c), "markers count as empty")
}

func TestRunRequiresEndpoints(t *testing.T) {
	s := openSession(t, 4, 4)
	assert.ErrorIs(t, s.Run(), ErrNoEndpoints)
	assert.Equal(t, msgNeedEnds, s.Status())
	s.Click(core.Position{Row: 0, Col: 0})
	assert.ErrorIs(t, s.Run(), ErrNoEndpoints)
	assert.False(t, s.Running())
}

func TestRunAndTickToCompletion(t *testing.T) {
	s := openSession(t, 5, 5)
	s.Click(core.Position{Row: 0, Col: 0})
	s.Click(core.Position{Row: 4, Col: 4})
	require.True(t, s.SelectName("bfs"))
	assert.Equal(t, "Selected BFS. SPACE to run.", s.Status())

	require.NoError(t, s.Run())
	assert.True(t, s.Running())
	assert.Equal(t, "Running BFS ...", s.Status())
	assert.ErrorIs(t, s.Run(), ErrBusy)
	assert.False(t, s.Click(core.Position{Row: 2, Col: 2}), "clicks ignored while running")
	assert.False(t, s.Select(0))

	sig := s.Tick()
	assert.Equal(t, core.Step, sig)
	assert.Equal(t, 5, s.Stats().Advances)

	for i := 0; i < 100 && s.Running(); i++ {
		sig = s.Tick()
	}
	require.Equal(t, core.Done, sig)
	assert.False(t, s.Running())
	assert.Equal(t, "Path found with BFS.", s.Status())

	st := s.Stats()
	assert.True(t, st.Finished)
	assert.Equal(t, core.Done, st.Outcome)
	assert.Equal(t, 7, st.Path)
	assert.InDelta(t, 8.0, st.Length, 1e-9)

	assert.Equal(t, core.Step, s.Tick(), "idle tick does nothing")
}

func TestNoPathStatus(t *testing.T) {
	s := openSession(t, 3, 5)
	for r := 0; r < 3; r++ {
		s.Grid().Set(core.Position{Row: r, Col: 2}, core.Wall)
	}
	s.Click(core.Position{Row: 0, Col: 0})
	s.Click(core.Position{Row: 2, Col: 4})
	require.True(t, s.SelectName("dijkstra"))
	require.NoError(t, s.Run())
	for i := 0; i < 20 && s.Running(); i++ {
		s.Tick()
	}
	assert.Equal(t, msgNoPath, s.Status())
	assert.Equal(t, core.Fail, s.Stats().Outcome)
	assert.Zero(t, s.Stats().Length)
}

func TestPauseAndSingleStep(t *testing.T) {
	s := openSession(t, 5, 5)
	s.Click(core.Position{Row: 0, Col: 0})
	s.Click(core.Position{Row: 4, Col: 4})
	require.NoError(t, s.Run())
	s.TogglePause()
	assert.Equal(t, core.Step, s.Tick())
	assert.Zero(t, s.Stats().Advances)
	s.StepOnce()
	assert.Equal(t, 1, s.Stats().Advances)
}

func TestClearPathAndRerun(t *testing.T) {
	s := openSession(t, 5, 5)
	start, goal := core.Position{Row: 0, Col: 0}, core.Position{Row: 4, Col: 4}
	s.Click(start)
	s.Click(goal)
	require.NoError(t, s.Run())
	for s.Running() {
		s.Tick()
	}
	require.Positive(t, s.Grid().Count(core.Path))

	s.ClearPath()
	assert.Equal(t, msgCleared, s.Status())
	assert.Zero(t, s.Grid().Count(core.Path))
	assert.Zero(t, s.Grid().Count(core.Closed))
	assert.Equal(t, core.Start, s.Grid().At(start))
	assert.Equal(t, core.Goal, s.Grid().At(goal))

	require.True(t, s.SelectName("prm"))
	require.NoError(t, s.Run())
	for i := 0; i < 1000 && s.Running(); i++ {
		s.Tick()
	}
	assert.Equal(t, "Path found with PRM.", s.Status())
	assert.NotEmpty(t, s.Edges())
}

func TestRunRestampsEndpoints(t *testing.T) {
	s := openSession(t, 3, 3)
	start, goal := core.Position{Row: 0, Col: 0}, core.Position{Row: 2, Col: 2}
	s.Click(start)
	s.Click(goal)
	s.Grid().Set(start, core.Path)
	s.Grid().Set(core.Position{Row: 1, Col: 1}, core.Closed)
	require.NoError(t, s.Run())
	assert.Equal(t, core.Start, s.Grid().At(start))
	assert.Equal(t, core.Empty, s.Grid().At(core.Position{Row: 1, Col: 1}))
}

func TestNewMapForgetsEndpoints(t *testing.T) {
	s := New(Config{Rows: 10, Cols: 10, Seed: 4})
	s.Click(core.Position{Row: 0, Col: 0})
	s.Click(core.Position{Row: 9, Col: 9})
	require.NoError(t, s.Run())
	s.NewMap()
	assert.False(t, s.Running())
	assert.Nil(t, s.Engine())
	_, ok := s.Goal()
	assert.False(t, ok)
	assert.Equal(t, msgNewMap, s.Status())
	assert.True(t, mapgen.Connected(s.Grid()))
}

func TestParameters(t *testing.T) {
	s := openSession(t, 3, 3)
	snap := s.Parameters()
	p, ok := snap.Lookup("steps_per_frame")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)

	assert.True(t, s.SetIntParameter("steps_per_frame", 9))
	assert.True(t, s.SetIntParameter("prm_k", 3))
	assert.False(t, s.SetIntParameter("prm_k", 0))
	assert.False(t, s.SetIntParameter("unknown", 3))
	assert.True(t, s.SetFloatParameter("wall_prob", 0.2))
	assert.False(t, s.SetFloatParameter("wall_prob", 1.5))

	snap = s.Parameters()
	p, _ = snap.Lookup("steps_per_frame")
	assert.Equal(t, "9", p.Value)
	p, _ = snap.Lookup("prm_k")
	assert.Equal(t, "3", p.Value)
	p, _ = snap.Lookup("wall_prob")
	assert.Equal(t, "0.2", p.Value)

	keys := map[string]bool{}
	for _, c := range s.ParameterControls() {
		keys[c.Key] = true
		_, ok := snap.Lookup(c.Key)
		assert.True(t, ok, c.Key)
	}
	assert.Len(t, keys, 5)

	var _ core.ParameterProvider = s
	var _ core.ParameterControlsProvider = s
	var _ core.IntParameterSetter = s
	var _ core.FloatParameterSetter = s
}
