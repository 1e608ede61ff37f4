package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func TestAddBlinkerPopulatesThreeCellsInARow(t *testing.T) {
	grid := model.NewGrid(5, 5)
	grid.AddBlinker(model.Coordinates{Row: 2, Column: 1})

	require.Equal(t, 3, grid.CountPopulated())
	for column := model.Column(1); column <= 3; column++ {
		cell, ok := grid.Cell(model.Coordinates{Row: 2, Column: column})
		require.True(t, ok)
		require.True(t, cell.IsPopulated())
	}
}

func TestAddGliderPopulatesFiveCells(t *testing.T) {
	grid := model.NewGrid(10, 10)
	grid.AddGlider(model.Coordinates{Row: 2, Column: 2})

	require.Equal(t, 5, grid.CountPopulated())
}

func TestPatternsClipAtTheGridEdge(t *testing.T) {
	grid := model.NewGrid(4, 4)

	// Only the cells that land inside the grid are populated.
	grid.AddGlider(model.Coordinates{Row: 2, Column: 1})
	require.Equal(t, 2, grid.CountPopulated())

	grid.Clear()
	grid.AddBlinker(model.Coordinates{Row: 1, Column: 3})
	require.Equal(t, 1, grid.CountPopulated())
}

func TestRandomizeDensityExtremes(t *testing.T) {
	grid := model.NewGrid(8, 8)

	grid.Randomize(0)
	require.Equal(t, 0, grid.CountPopulated())

	grid.Randomize(1)
	require.Equal(t, 64, grid.CountPopulated())
}

func TestInjectRandomLifePopulatesCells(t *testing.T) {
	grid := model.NewGrid(8, 8)
	grid.InjectRandomLife(5)

	count := grid.CountPopulated()
	require.Greater(t, count, 0)
	require.LessOrEqual(t, count, 5)
}

func TestInjectRandomLifeOnZeroSizedGridIsANoOp(t *testing.T) {
	grid := model.NewGrid(0, 0)
	grid.InjectRandomLife(5)
	require.Equal(t, 0, grid.CountPopulated())
}

func TestSeedPatternsRespectsDensity(t *testing.T) {
	grid := model.NewGrid(30, 20)
	grid.SeedPatterns(utils.Config{RandomDensity: 0})

	// With zero random density only the stamped patterns remain.
	require.Greater(t, grid.CountPopulated(), 0)

	grid.SeedPatterns(utils.Config{RandomDensity: 1})
	require.Equal(t, 600, grid.CountPopulated())
}
