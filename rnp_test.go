package partition_test

import (
	"testing"

	"github.com/katalvlaran/partition"
	"github.com/stretchr/testify/require"
)

// TestRNP_ScenarioFromSpec pins spec 8's concrete four-way scenario.
func TestRNP_ScenarioFromSpec(t *testing.T) {
	elements := []partition.Element{3, 3, 8, 4, 4, 3, 7}
	got, err := partition.Partition(partition.MethodRNP, elements, 4)
	require.NoError(t, err)
	require.Equal(t, partition.Element(9), makespan(got))
}

// TestRNP_MatchesBrute pins spec property 2 (optimality) for small inputs.
func TestRNP_MatchesBrute(t *testing.T) {
	cases := [][]partition.Element{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{10, 1, 9, 2, 8, 3, 7, 4},
	}
	for _, elements := range cases {
		rnp, err := partition.Partition(partition.MethodRNP, elements, 4)
		require.NoError(t, err)

		brute, err := partition.Partition(partition.MethodBrute, elements, 4)
		require.NoError(t, err)

		require.Equal(t, makespan(brute), makespan(rnp))
	}
}

func TestRNP_RequiresFour(t *testing.T) {
	_, err := partition.Partition(partition.MethodRNP, []partition.Element{1, 2, 3}, 2)
	require.ErrorIs(t, err, partition.ErrRNPRequiresFour)
}

func TestRNP_DisjointCover(t *testing.T) {
	elements := []partition.Element{5, 9, 2, 6, 4, 1, 8, 3}
	got, err := partition.Partition(partition.MethodRNP, elements, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	requireDisjointCover(t, elements, got)
}

func TestRNPResult_FlattenHeuristic(t *testing.T) {
	r := partition.RNPResult{
		Kind: partition.RNPHeuristic,
		Heuristic: []partition.Subset{
			partition.SubsetFromIndex(0, []partition.Element{1, 2}),
		},
	}
	require.Len(t, r.Flatten(), 1)
}
