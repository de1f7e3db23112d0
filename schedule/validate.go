// Package schedule - structural validation of schedules.
//
// Validate is deterministic and side-effect free. It reports only the first
// violation found, scanning rounds in order and matches in order.
package schedule

import (
	"fmt"
	"math"
)

// Validate checks that s is a well-formed round-robin schedule:
//
//  0. Size == Participants rounded up to even (Size == Participants
//     when Participants < 2).
//  1. len(Rounds) == Legs·(Size-1), or 0 when Size < 2.
//  2. Round k has Index k and Leg k/(Size-1).
//  3. Every match pairs two distinct identifiers in [0, Size).
//  4. Every round is a perfect matching over [0, Size).
//  5. No pair meets twice within one leg.
//  6. Round.Bye names the opponent of the synthetic participant when the
//     count is odd, and is NoBye otherwise.
//
// Together 0, 1, 4 and 5 imply completeness: Size-1 perfect matchings of
// Size/2 distinct pairs cover all Size(Size-1)/2 pairs of a leg.
//
// Errors carry the "Validate:" prefix and wrap either ErrNilSchedule or a
// *ValidationError around ErrSizeMismatch, ErrRoundCount, ErrRoundOrder,
// ErrParticipantRange, ErrNotPerfectMatching, ErrDuplicatePair or
// ErrByeMismatch.
//
// Complexity: O(legs·n²) time, O(n²) space.
func Validate(s *Schedule) error {
	if err := validate(s); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}

	return nil
}

func validate(s *Schedule) error {
	if s == nil {
		return ErrNilSchedule
	}

	if !sizeOK(s.Participants, s.Size) {
		return &ValidationError{
			Leg:   -1,
			Round: -1,
			Err:   fmt.Errorf("size=%d, participants=%d: %w", s.Size, s.Participants, ErrSizeMismatch),
		}
	}

	perLeg := 0
	if s.Size >= MinParticipants {
		perLeg = s.Size - 1
	}
	if !roundCountOK(len(s.Rounds), s.Legs, perLeg) {
		return &ValidationError{
			Leg:   -1,
			Round: -1,
			Err:   fmt.Errorf("got %d rounds, want %d legs × %d: %w", len(s.Rounds), s.Legs, perLeg, ErrRoundCount),
		}
	}
	if perLeg == 0 {
		return nil
	}

	byeID, hasBye := s.ByeID()
	inRound := make([]bool, s.Size)
	met := make([]bool, s.Size*s.Size) // met[lo*Size+hi], reset per leg

	for k, r := range s.Rounds {
		leg := k / perLeg
		if k%perLeg == 0 && k > 0 {
			clear(met)
		}
		if r.Index != k || r.Leg != leg {
			return &ValidationError{Leg: leg, Round: k, Err: ErrRoundOrder}
		}

		clear(inRound)
		wantBye := NoBye
		for _, m := range r.Matches {
			if m.Home == m.Away || !s.inRange(m.Home) || !s.inRange(m.Away) {
				return matchError(leg, k, m, ErrParticipantRange)
			}
			if inRound[m.Home] || inRound[m.Away] {
				return matchError(leg, k, m, ErrNotPerfectMatching)
			}
			inRound[m.Home], inRound[m.Away] = true, true

			lo, hi := m.Home, m.Away
			if lo > hi {
				lo, hi = hi, lo
			}
			if met[lo*s.Size+hi] {
				return matchError(leg, k, m, ErrDuplicatePair)
			}
			met[lo*s.Size+hi] = true

			if hasBye {
				if opp, ok := m.Opponent(byeID); ok {
					wantBye = opp
				}
			}
		}
		if len(r.Matches) != s.Size/2 {
			return &ValidationError{
				Leg:   leg,
				Round: k,
				Err:   fmt.Errorf("%d matches, want %d: %w", len(r.Matches), s.Size/2, ErrNotPerfectMatching),
			}
		}
		if r.Bye != wantBye {
			return &ValidationError{
				Leg:   leg,
				Round: k,
				Err:   fmt.Errorf("bye=%d, want %d: %w", r.Bye, wantBye, ErrByeMismatch),
			}
		}
	}

	return nil
}

// sizeOK reports whether size is participants rounded up to even, or
// participants itself below MinParticipants.
func sizeOK(participants, size int) bool {
	switch {
	case participants < 0:
		return false
	case participants < MinParticipants || participants%2 == 0:
		return size == participants
	default:
		return participants < math.MaxInt && size == participants+1
	}
}

// roundCountOK reports whether n == legs·perLeg without forming the product.
func roundCountOK(n, legs, perLeg int) bool {
	if legs < 1 {
		return false
	}
	if perLeg == 0 {
		return n == 0
	}

	return n%perLeg == 0 && n/perLeg == legs
}

func matchError(leg, round int, m Match, err error) *ValidationError {
	return &ValidationError{Leg: leg, Round: round, Match: &m, Err: err}
}
