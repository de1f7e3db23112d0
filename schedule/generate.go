package schedule

import (
	"fmt"
	"math"
)

// Generate - round-robin schedule by the circle method
//
// Description:
//
//	Generate returns the rounds in which each of n participants meets every
//	other participant once per leg. Odd counts are padded with one synthetic
//	participant (identifier n); whoever meets it has a bye that round.
//
// Algorithm Outline (first leg):
//  1. size = n rounded up to even; anchor = size-1; ring m = size-1;
//     half = (size-2)/2.
//  2. For round i = 0..m-1:
//     first match   (i, anchor)
//     then j = 0..half-1:
//     ((i+1+j) mod m, (i-1-j) mod m)
//  3. Leg k ≥ 1 repeats leg 0 round by round; odd k swaps Home and Away.
//
// This is the classic rotate-and-fold circle method: the anchor stays put,
// the ring advances one seat per round, and the remaining seats are folded
// front-to-back. The index form yields the same canonical order as rotating
// an actual list, e.g. Generate(10) starts
//
//	[(0,9) (1,8) (2,7) (3,6) (4,5)]
//	[(1,9) (2,0) (3,8) (4,7) (5,6)]
//
// Complexity:
//
//	Time   = O(legs·n²)
//	Memory = O(legs·n²) for the result, O(1) extra
//
// Errors:
//   - ErrNegativeParticipants - n < 0.
//   - ErrTooManyParticipants  - n above WithMaxParticipants.
//   - ErrOverflow             - n+1 does not fit in int.
//   - ErrTooManyRounds        - legs·(size-1) above MaxRounds.
func Generate(participants int, opts ...Option) (*Schedule, error) {
	cfg := newConfig(opts...)

	if participants < 0 {
		return nil, fmt.Errorf("%s: participants=%d: %w", methodGenerate, participants, ErrNegativeParticipants)
	}
	if cfg.maxParticipants > 0 && participants > cfg.maxParticipants {
		return nil, fmt.Errorf("%s: participants=%d > limit=%d: %w",
			methodGenerate, participants, cfg.maxParticipants, ErrTooManyParticipants)
	}

	// Zero or one participant: nobody to play.
	if participants < MinParticipants {
		return &Schedule{
			Participants: participants,
			Size:         participants,
			Legs:         cfg.legs,
			Rounds:       []Round{},
		}, nil
	}

	size := participants
	odd := participants%2 == 1
	if odd {
		if participants == math.MaxInt {
			return nil, fmt.Errorf("%s: participants=%d: bye slot: %w", methodGenerate, participants, ErrOverflow)
		}
		size++
	}

	perLeg := size - 1
	if perLeg > MaxRounds/cfg.legs {
		return nil, fmt.Errorf("%s: participants=%d legs=%d: %w", methodGenerate, participants, cfg.legs, ErrTooManyRounds)
	}

	s := &Schedule{
		Participants: participants,
		Size:         size,
		Legs:         cfg.legs,
		Rounds:       make([]Round, 0, perLeg*cfg.legs),
	}

	// Leg 0: canonical circle-method rounds.
	for i := 0; i < perLeg; i++ {
		r := circleRound(i, size)
		if odd {
			// The anchor is the synthetic participant; its opponent rests.
			r.Bye = r.Matches[0].Home
		}
		s.Rounds = append(s.Rounds, r)
	}

	// Later legs mirror leg 0.
	for leg := 1; leg < cfg.legs; leg++ {
		swap := leg%2 == 1
		for i := 0; i < perLeg; i++ {
			base := s.Rounds[i]
			matches := make([]Match, len(base.Matches))
			for k, m := range base.Matches {
				if swap {
					m.Home, m.Away = m.Away, m.Home
				}
				matches[k] = m
			}
			s.Rounds = append(s.Rounds, Round{
				Index:   leg*perLeg + i,
				Leg:     leg,
				Matches: matches,
				Bye:     base.Bye,
			})
		}
	}

	return s, nil
}

// circleRound builds round i of the first leg for an even size ≥ 2.
// The anchor's match comes first, then the folded ring pairs.
func circleRound(i, size int) Round {
	anchor := size - 1
	ring := size - 1
	half := (size - 2) / 2

	matches := make([]Match, 0, half+1)
	matches = append(matches, Match{Home: i, Away: anchor})
	for j := 0; j < half; j++ {
		matches = append(matches, Match{
			// (i+1+j) mod ring, written so no intermediate exceeds ring.
			Home: wrap(i-(ring-1-j), ring),
			Away: wrap(i-1-j, ring),
		})
	}

	return Round{Index: i, Leg: 0, Matches: matches, Bye: NoBye}
}

// wrap reduces k ∈ (-m, m) into [0, m).
func wrap(k, m int) int {
	if k < 0 {
		return k + m
	}

	return k
}
