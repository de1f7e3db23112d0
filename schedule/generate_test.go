// Package schedule_test verifies Generate: the canonical fixtures, the
// 1-factorization properties for a range of sizes, legs and error paths.
package schedule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundrobin/schedule"
)

// tenPlayerFixture is the canonical schedule for 10 (and 9) participants.
func tenPlayerFixture() [][][2]int {
	return [][][2]int{
		{{0, 9}, {1, 8}, {2, 7}, {3, 6}, {4, 5}},
		{{1, 9}, {2, 0}, {3, 8}, {4, 7}, {5, 6}},
		{{2, 9}, {3, 1}, {4, 0}, {5, 8}, {6, 7}},
		{{3, 9}, {4, 2}, {5, 1}, {6, 0}, {7, 8}},
		{{4, 9}, {5, 3}, {6, 2}, {7, 1}, {8, 0}},
		{{5, 9}, {6, 4}, {7, 3}, {8, 2}, {0, 1}},
		{{6, 9}, {7, 5}, {8, 4}, {0, 3}, {1, 2}},
		{{7, 9}, {8, 6}, {0, 5}, {1, 4}, {2, 3}},
		{{8, 9}, {0, 7}, {1, 6}, {2, 5}, {3, 4}},
	}
}

// pairKey normalizes an unordered pair.
type pairKey struct{ lo, hi int }

func keyOf(m schedule.Match) pairKey {
	if m.Home > m.Away {
		return pairKey{m.Away, m.Home}
	}
	return pairKey{m.Home, m.Away}
}

// TestGenerate_TenParticipants compares against the literal fixture.
func TestGenerate_TenParticipants(t *testing.T) {
	s, err := schedule.Generate(10)
	require.NoError(t, err)
	assert.Equal(t, tenPlayerFixture(), s.Pairs())
	assert.Equal(t, 10, s.Size)
	assert.Equal(t, 10, s.Participants)

	_, hasBye := s.ByeID()
	assert.False(t, hasBye, "even count has no bye")
	for _, r := range s.Rounds {
		assert.Equal(t, schedule.NoBye, r.Bye, "round %d", r.Index)
	}
}

// TestGenerate_NineParticipants checks that an odd count is padded to the
// next even count and yields the very same pairings, with 9 as the bye.
func TestGenerate_NineParticipants(t *testing.T) {
	s, err := schedule.Generate(9)
	require.NoError(t, err)
	assert.Equal(t, tenPlayerFixture(), s.Pairs())
	assert.Equal(t, 10, s.Size)
	assert.Equal(t, 9, s.Participants)

	byeID, ok := s.ByeID()
	require.True(t, ok)
	assert.Equal(t, 9, byeID)

	// Round i rests participant i: the anchor's opponent.
	for i, r := range s.Rounds {
		assert.Equal(t, i, r.Bye, "round %d bye", i)
		assert.Len(t, s.Games(i), 4, "four real games per round")
	}
}

// TestGenerate_Trivial covers counts with nobody to pair.
func TestGenerate_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		s, err := schedule.Generate(n)
		require.NoError(t, err, "n=%d", n)
		assert.Empty(t, s.Rounds, "n=%d", n)
		assert.Empty(t, s.Pairs(), "n=%d", n)
		assert.Zero(t, s.MatchCount(), "n=%d", n)
		assert.NoError(t, schedule.Validate(s), "n=%d", n)

		_, hasBye := s.ByeID()
		assert.False(t, hasBye, "n=%d", n)
	}
}

// TestGenerate_TwoParticipants expects a single round with a single match.
func TestGenerate_TwoParticipants(t *testing.T) {
	s, err := schedule.Generate(2)
	require.NoError(t, err)
	assert.Equal(t, [][][2]int{{{0, 1}}}, s.Pairs())
}

// TestGenerate_Properties checks round count, perfect matchings and pair
// uniqueness directly, without going through Validate.
func TestGenerate_Properties(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 13; n++ {
		s, err := schedule.Generate(n)
		require.NoError(t, err, "n=%d", n)

		size := n + n%2
		require.Equal(t, size, s.Size, "n=%d", n)
		require.Len(t, s.Rounds, size-1, "n=%d rounds", n)

		meetings := make(map[pairKey]int)
		for _, r := range s.Rounds {
			seen := make(map[int]bool, size)
			for _, m := range r.Matches {
				assert.NotEqual(t, m.Home, m.Away, "n=%d round %d self-match", n, r.Index)
				assert.False(t, seen[m.Home] || seen[m.Away], "n=%d round %d: %v plays twice", n, r.Index, m)
				seen[m.Home], seen[m.Away] = true, true
				meetings[keyOf(m)]++
			}
			assert.Len(t, seen, size, "n=%d round %d covers everyone", n, r.Index)
		}

		assert.Len(t, meetings, size*(size-1)/2, "n=%d every pair meets", n)
		for p, c := range meetings {
			assert.Equal(t, 1, c, "n=%d pair %v meets once", n, p)
		}
		assert.NoError(t, schedule.Validate(s), "n=%d", n)
	}
}

// TestGenerate_SmallEvenCounts runs Validate on the sizes named for
// programmatic verification.
func TestGenerate_SmallEvenCounts(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		s, err := schedule.Generate(n)
		require.NoError(t, err)
		assert.Len(t, s.Rounds, n-1)
		assert.Equal(t, n*(n-1)/2, s.MatchCount())
		assert.NoError(t, schedule.Validate(s), "n=%d", n)
	}
}

// TestGenerate_Idempotent asserts equal output for equal input, and that
// results never share memory.
func TestGenerate_Idempotent(t *testing.T) {
	a, err := schedule.Generate(12)
	require.NoError(t, err)
	b, err := schedule.Generate(12)
	require.NoError(t, err)
	require.Equal(t, a, b)

	a.Rounds[0].Matches[0] = schedule.Match{Home: 100, Away: 200}
	assert.Equal(t, schedule.Match{Home: 0, Away: 11}, b.Rounds[0].Matches[0], "results must not alias")
}

// TestGenerate_OddEvenEquivalence: an odd count yields the pairings of the
// next even count; dropping the bye matches leaves each real pair exactly once.
func TestGenerate_OddEvenEquivalence(t *testing.T) {
	for n := 3; n <= 15; n += 2 {
		odd, err := schedule.Generate(n)
		require.NoError(t, err)
		even, err := schedule.Generate(n + 1)
		require.NoError(t, err)
		assert.Equal(t, even.Pairs(), odd.Pairs(), "n=%d", n)

		played := make(map[pairKey]int)
		for i := range odd.Rounds {
			for _, m := range odd.Games(i) {
				played[keyOf(m)]++
			}
		}
		assert.Len(t, played, n*(n-1)/2, "n=%d", n)
		for p, c := range played {
			assert.Equal(t, 1, c, "n=%d pair %v", n, p)
		}
	}
}

// TestGenerate_Legs checks that the second leg mirrors the first.
func TestGenerate_Legs(t *testing.T) {
	s, err := schedule.Generate(7, schedule.WithLegs(2))
	require.NoError(t, err)
	require.Len(t, s.Rounds, 14, "8 slots: 7 rounds per leg")
	assert.Equal(t, 2, s.Legs)
	require.NoError(t, schedule.Validate(s))

	for i := 0; i < 7; i++ {
		first, second := s.Rounds[i], s.Rounds[i+7]
		assert.Equal(t, 0, first.Leg)
		assert.Equal(t, 1, second.Leg)
		assert.Equal(t, i+7, second.Index)
		assert.Equal(t, first.Bye, second.Bye, "round %d", i)
		require.Len(t, second.Matches, len(first.Matches))
		for k, m := range first.Matches {
			assert.Equal(t, schedule.Match{Home: m.Away, Away: m.Home}, second.Matches[k])
		}
	}

	// A third leg restores the canonical orientation.
	s3, err := schedule.Generate(4, schedule.WithLegs(3))
	require.NoError(t, err)
	require.Len(t, s3.Rounds, 9)
	for i := 0; i < 3; i++ {
		assert.Equal(t, s3.Rounds[i].Matches, s3.Rounds[i+6].Matches)
	}
	assert.NoError(t, schedule.Validate(s3))
}

// TestGenerate_Errors exercises each error path.
func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		opts []schedule.Option
		want error
	}{
		{"negative", -1, nil, schedule.ErrNegativeParticipants},
		{"very negative", math.MinInt, nil, schedule.ErrNegativeParticipants},
		{"above limit", 11, []schedule.Option{schedule.WithMaxParticipants(10)}, schedule.ErrTooManyParticipants},
		{"bye slot overflows", math.MaxInt, nil, schedule.ErrOverflow},
		{"legs overflow", math.MaxInt - 1, []schedule.Option{schedule.WithLegs(3)}, schedule.ErrTooManyRounds},
		{"huge legs", 4, []schedule.Option{schedule.WithLegs(math.MaxInt / 3)}, schedule.ErrTooManyRounds},
		{"legs above MaxRounds", 2, []schedule.Option{schedule.WithLegs(schedule.MaxRounds + 1)}, schedule.ErrTooManyRounds},
		{"single leg above MaxRounds", schedule.MaxRounds + 2, nil, schedule.ErrTooManyRounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := schedule.Generate(tc.n, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}
}

// TestGenerate_MaxRounds: exactly MaxRounds rounds is allowed.
func TestGenerate_MaxRounds(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates MaxRounds rounds")
	}
	s, err := schedule.Generate(2, schedule.WithLegs(schedule.MaxRounds))
	require.NoError(t, err)
	assert.Len(t, s.Rounds, schedule.MaxRounds)
	assert.Equal(t, schedule.Match{Home: 1, Away: 0}, s.Rounds[1].Matches[0])
}

// TestGenerate_Options covers limits at the boundary and option panics.
func TestGenerate_Options(t *testing.T) {
	s, err := schedule.Generate(10, schedule.WithMaxParticipants(10))
	require.NoError(t, err)
	assert.Len(t, s.Rounds, 9)

	// 0 disables the limit; later options override earlier ones.
	s, err = schedule.Generate(10, schedule.WithMaxParticipants(4), schedule.WithMaxParticipants(0))
	require.NoError(t, err)
	assert.Len(t, s.Rounds, 9)

	s, err = schedule.Generate(4, nil, schedule.WithLegs(2))
	require.NoError(t, err, "nil options are skipped")
	assert.Len(t, s.Rounds, 6)

	assert.Panics(t, func() { schedule.WithLegs(0) })
	assert.Panics(t, func() { schedule.WithMaxParticipants(-1) })
}
