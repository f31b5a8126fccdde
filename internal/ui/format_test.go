package ui

import (
	"testing"

	"pathviz/internal/core"
	"pathviz/internal/driver"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloatPrecision(t *testing.T) {
	assert.Equal(t, "0.32", formatFloat(core.ParameterControl{Step: 0.02}, 0.32))
	assert.Equal(t, "0.320", formatFloat(core.ParameterControl{Step: 0.005}, 0.32))
	assert.Equal(t, "0.3", formatFloat(core.ParameterControl{Step: 0.5}, 0.32))
	assert.Equal(t, "0.32", formatFloat(core.ParameterControl{}, 0.32))
}

func TestAlgorithmLine(t *testing.T) {
	want := "Algorithm: A*  [1:BFS 2:DFS 3:Dij 4:Greedy 5:A* 6:RRT 7:PRM]"
	assert.Equal(t, want, AlgorithmLine(driver.Algorithms[4]))
}

func TestStatsLine(t *testing.T) {
	assert.Equal(t, "advances 3  open 2  closed 1  path 0", StatsLine(driver.Stats{Advances: 3, Open: 2, Closed: 1}))
	assert.Equal(t, "advances 9  open 0  closed 7  path 3  length 4.00",
		StatsLine(driver.Stats{Advances: 9, Closed: 7, Path: 3, Length: 4}))
}
