package hanoi_test

import (
	"testing"

	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Length verifies the optimal move count 2^n - 1 for every n up
// to well past the animated range.
func TestSolve_Length(t *testing.T) {
	for n := 1; n <= 20; n++ {
		moves := hanoi.Solve(n)
		assert.Len(t, moves, (1<<n)-1, "n=%d", n)
	}
}

// TestSolve_OneDisk covers the base case: a single move A -> C.
func TestSolve_OneDisk(t *testing.T) {
	moves := hanoi.Solve(1)
	require.Len(t, moves, 1)
	assert.Equal(t, hanoi.Move{Disk: 1, From: hanoi.RoleSource, To: hanoi.RoleDestination}, moves[0])
}

// TestSolve_ThreeDisks pins the exact emission order for n=3.
func TestSolve_ThreeDisks(t *testing.T) {
	a, b, c := hanoi.RoleSource, hanoi.RoleAuxiliary, hanoi.RoleDestination
	want := []hanoi.Move{
		{Disk: 1, From: a, To: c},
		{Disk: 2, From: a, To: b},
		{Disk: 1, From: c, To: b},
		{Disk: 3, From: a, To: c},
		{Disk: 1, From: b, To: a},
		{Disk: 2, From: b, To: c},
		{Disk: 1, From: a, To: c},
	}
	assert.Equal(t, want, hanoi.Solve(3))
}

// TestSolve_DiskFrequency checks that disk k moves exactly 2^(n-k) times.
func TestSolve_DiskFrequency(t *testing.T) {
	for n := 1; n <= 12; n++ {
		counts := make(map[int]int)
		for _, mv := range hanoi.Solve(n) {
			counts[mv.Disk]++
		}
		for k := 1; k <= n; k++ {
			assert.Equal(t, 1<<(n-k), counts[k], "n=%d disk=%d", n, k)
		}
	}
}

func TestSequence_PullsInOrder(t *testing.T) {
	seq := hanoi.NewSequence(4)
	moves := hanoi.Solve(4)

	require.Equal(t, len(moves), seq.Len())
	for i, want := range moves {
		assert.Equal(t, i, seq.Index())
		got, ok := seq.Next()
		require.True(t, ok, "move %d", i)
		assert.Equal(t, want, got, "move %d", i)
	}

	_, ok := seq.Next()
	assert.False(t, ok, "sequence should be exhausted")
	assert.Equal(t, 0, seq.Remaining())

	// Exhausted stays exhausted.
	_, ok = seq.Next()
	assert.False(t, ok)
}

func TestMove_String(t *testing.T) {
	mv := hanoi.Move{Disk: 2, From: hanoi.RoleSource, To: hanoi.RoleDestination}
	assert.Equal(t, "move disk 2 from A to C", mv.String())
}

func TestParseRole(t *testing.T) {
	for _, role := range hanoi.Roles {
		got, err := hanoi.ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, got)
	}

	_, err := hanoi.ParseRole("D")
	assert.Error(t, err)
}
