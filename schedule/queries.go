// SPDX-License-Identifier: MIT
// Package: roundrobin/schedule
//
// queries.go - read-only views over a generated Schedule.
//
// All methods are side-effect free and return freshly allocated slices,
// so callers may modify results without touching the Schedule.

package schedule

import "fmt"

// String renders a match as "(home,away)".
func (m Match) String() string {
	return fmt.Sprintf("(%d,%d)", m.Home, m.Away)
}

// Involves reports whether p plays in m.
func (m Match) Involves(p int) bool {
	return m.Home == p || m.Away == p
}

// Opponent returns p's opponent in m, or false if p does not play in m.
func (m Match) Opponent(p int) (int, bool) {
	switch p {
	case m.Home:
		return m.Away, true
	case m.Away:
		return m.Home, true
	default:
		return 0, false
	}
}

// ByeID returns the synthetic bye identifier (equal to the odd
// participant count) and true, or false when nobody ever has a bye.
func (s *Schedule) ByeID() (int, bool) {
	if s.Size > s.Participants {
		return s.Participants, true
	}

	return 0, false
}

// Bye returns the participant resting in the given round, or false when the
// round is out of range or has no bye.
func (s *Schedule) Bye(round int) (int, bool) {
	if round < 0 || round >= len(s.Rounds) || s.Rounds[round].Bye == NoBye {
		return 0, false
	}

	return s.Rounds[round].Bye, true
}

// Games returns the matches of the given round that are actually played,
// i.e. all matches except the one against the synthetic bye participant.
// It returns nil for an out-of-range round.
func (s *Schedule) Games(round int) []Match {
	if round < 0 || round >= len(s.Rounds) {
		return nil
	}
	byeID, hasBye := s.ByeID()
	games := make([]Match, 0, len(s.Rounds[round].Matches))
	for _, m := range s.Rounds[round].Matches {
		if hasBye && m.Involves(byeID) {
			continue
		}
		games = append(games, m)
	}

	return games
}

// Pairs returns the schedule as plain rounds of (home, away) pairs, in
// canonical order. The result for a count below MinParticipants is empty.
func (s *Schedule) Pairs() [][][2]int {
	out := make([][][2]int, len(s.Rounds))
	for i, r := range s.Rounds {
		row := make([][2]int, len(r.Matches))
		for k, m := range r.Matches {
			row[k] = [2]int{m.Home, m.Away}
		}
		out[i] = row
	}

	return out
}

// MatchCount returns the total number of matches, bye matches included.
func (s *Schedule) MatchCount() int {
	total := 0
	for _, r := range s.Rounds {
		total += len(r.Matches)
	}

	return total
}

// Opponents returns p's opponent in every round, in round order. When p has
// a bye the entry is the synthetic bye identifier.
//
// Errors:
//   - ErrUnknownParticipant - p outside [0, Size).
//
// Complexity: O(legs·n²) time, O(legs·n) space.
func (s *Schedule) Opponents(p int) ([]int, error) {
	if p < 0 || p >= s.Size {
		return nil, fmt.Errorf("Opponents: p=%d not in [0,%d): %w", p, s.Size, ErrUnknownParticipant)
	}
	out := make([]int, 0, len(s.Rounds))
	for _, r := range s.Rounds {
		for _, m := range r.Matches {
			if opp, ok := m.Opponent(p); ok {
				out = append(out, opp)
				break
			}
		}
	}

	return out, nil
}

// RoundTable returns a Size×Size table whose cell [x][y] is the index of
// the first round in which x meets y. The diagonal, and any pair that never
// meets, holds -1. The table is symmetric.
//
// Complexity: O(legs·n² + n²) time, O(n²) space.
func (s *Schedule) RoundTable() [][]int {
	table := make([][]int, s.Size)
	for x := range table {
		table[x] = make([]int, s.Size)
		for y := range table[x] {
			table[x][y] = -1
		}
	}
	for _, r := range s.Rounds {
		for _, m := range r.Matches {
			if m.Home == m.Away || !s.inRange(m.Home) || !s.inRange(m.Away) || table[m.Home][m.Away] >= 0 {
				continue
			}
			table[m.Home][m.Away] = r.Index
			table[m.Away][m.Home] = r.Index
		}
	}

	return table
}

func (s *Schedule) inRange(p int) bool {
	return p >= 0 && p < s.Size
}
