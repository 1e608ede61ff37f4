package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/rules"
)

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{name: "lonely cell dies", neighbors: 0, alive: true, want: false},
		{name: "cell with one neighbor dies", neighbors: 1, alive: true, want: false},
		{name: "cell with two neighbors survives", neighbors: 2, alive: true, want: true},
		{name: "cell with three neighbors survives", neighbors: 3, alive: true, want: true},
		{name: "cell with four neighbors dies", neighbors: 4, alive: true, want: false},
		{name: "cell with eight neighbors dies", neighbors: 8, alive: true, want: false},
		{name: "empty cell stays empty with two neighbors", neighbors: 2, alive: false, want: false},
		{name: "empty cell with three neighbors is born", neighbors: 3, alive: false, want: true},
		{name: "empty cell stays empty with four neighbors", neighbors: 4, alive: false, want: false},
		{name: "empty cell stays empty with no neighbors", neighbors: 0, alive: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rules.ApplyConwayRules(tt.neighbors, tt.alive))
		})
	}
}
