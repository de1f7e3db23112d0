// SPDX-License-Identifier: MIT
// Package: roundrobin/schedule
//
// types.go - data model and sentinel errors for the schedule package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w and a method prefix
//     ("Generate: participants=-1: ...").
//   • Validate prefixes a *ValidationError, which unwraps to a sentinel.

package schedule

import (
	"errors"
	"fmt"
)

// NoBye is the Round.Bye value of a round in which every participant plays.
const NoBye = -1

// MinParticipants is the smallest participant count that yields a round.
// Counts below it produce an empty Schedule.
const MinParticipants = 2

// DefaultLegs is the number of legs when WithLegs is not supplied.
const DefaultLegs = 1

// MaxRounds bounds Legs·(Size-1). Generate refuses larger schedules.
const MaxRounds = 1 << 20

// Method names used to prefix wrapped errors.
const (
	methodGenerate = "Generate"
	methodValidate = "Validate"
)

var (
	// ErrNegativeParticipants indicates a participant count below zero.
	ErrNegativeParticipants = errors.New("schedule: participant count must be non-negative")

	// ErrTooManyParticipants indicates a count above the WithMaxParticipants limit.
	ErrTooManyParticipants = errors.New("schedule: participant count exceeds limit")

	// ErrOverflow indicates that the normalized size does not fit in an int.
	ErrOverflow = errors.New("schedule: schedule size overflows int")

	// ErrTooManyRounds indicates Legs·(Size-1) above MaxRounds.
	ErrTooManyRounds = errors.New("schedule: round count exceeds MaxRounds")

	// ErrUnknownParticipant indicates an identifier outside [0, Size).
	ErrUnknownParticipant = errors.New("schedule: unknown participant")
)

// Validation sentinels. Validate wraps them in *ValidationError.
var (
	// ErrNilSchedule is returned by Validate(nil).
	ErrNilSchedule = errors.New("schedule: nil schedule")

	// ErrSizeMismatch indicates a Size other than Participants rounded up
	// to even (or equal to Participants below MinParticipants).
	ErrSizeMismatch = errors.New("schedule: size inconsistent with participants")

	// ErrRoundCount indicates len(Rounds) != Legs*(Size-1).
	ErrRoundCount = errors.New("schedule: wrong number of rounds")

	// ErrRoundOrder indicates a Round.Index or Round.Leg out of sequence.
	ErrRoundOrder = errors.New("schedule: round out of sequence")

	// ErrParticipantRange indicates an identifier outside [0, Size)
	// or a participant matched against itself.
	ErrParticipantRange = errors.New("schedule: participant out of range")

	// ErrNotPerfectMatching indicates a round in which some participant
	// plays twice or not at all.
	ErrNotPerfectMatching = errors.New("schedule: round is not a perfect matching")

	// ErrDuplicatePair indicates two participants meeting twice within a leg.
	ErrDuplicatePair = errors.New("schedule: pair meets twice within a leg")

	// ErrByeMismatch indicates a Round.Bye that disagrees with the round's
	// match against the synthetic bye participant.
	ErrByeMismatch = errors.New("schedule: bye does not match pairing")
)

// Match is one pairing. Home and Away are distinct participant identifiers.
// Within the first leg the order is canonical only; later legs swap it.
type Match struct {
	Home int
	Away int
}

// Round is one set of simultaneous matches.
type Round struct {
	// Index is the zero-based position of the round in Schedule.Rounds.
	Index int
	// Leg is the zero-based leg the round belongs to.
	Leg int
	// Matches covers every identifier in [0, Size) exactly once, including
	// the match against the synthetic bye participant when the count is odd.
	Matches []Match
	// Bye is the participant without a real opponent, or NoBye.
	Bye int
}

// Schedule is the complete fixture list for one tournament.
//
// A Schedule returned by Generate is freshly allocated and shares no memory
// with any other call; treat it as read-only.
type Schedule struct {
	// Participants is the count passed to Generate.
	Participants int
	// Size is Participants rounded up to an even number (for counts ≥ 2).
	Size int
	// Legs is the number of times every pair meets.
	Legs int
	// Rounds holds Legs*(Size-1) rounds, or none when Participants < 2.
	Rounds []Round
}

// ValidationError describes the first invariant violation found by Validate.
type ValidationError struct {
	// Leg and Round locate the violation; -1 when not applicable.
	Leg   int
	Round int
	// Match is the offending match, if any.
	Match *Match
	// Err wraps one of the validation sentinels.
	Err error
}

func (e *ValidationError) Error() string {
	var where string
	switch {
	case e.Round >= 0:
		where = fmt.Sprintf("round %d", e.Round)
	case e.Leg >= 0:
		where = fmt.Sprintf("leg %d", e.Leg)
	default:
		where = "schedule"
	}
	if e.Match != nil {
		return fmt.Sprintf("%s, match %v: %v", where, *e.Match, e.Err)
	}

	return fmt.Sprintf("%s: %v", where, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }
