// Package schedule computes round-robin tournament schedules: for N
// participants it produces the ordered rounds in which every participant
// meets every other participant exactly once.
//
// 🚀 What is a round-robin schedule?
//
//	Seen as a graph problem, it is a 1-factorization of the complete graph
//	K_n: the n(n−1)/2 edges are split into n−1 perfect matchings, one per
//	round.  It is the fixture list behind:
//	  • Chess and go club tournaments
//	  • Sports league seasons (single or double round-robin)
//	  • Group stages of larger competitions
//
// ✨ Key features:
//   - circle method with a fixed anchor and modular index arithmetic
//     (no list rotation, one allocation per round)
//   - canonical, reproducible pairing order: Generate(10) always yields the
//     same 9 rounds in the same order
//   - odd counts get a synthetic "bye" participant; byes are reported
//     explicitly per round (Round.Bye) and via Schedule.ByeID
//   - multiple legs (WithLegs) for double round-robin seasons
//   - Validate checks every structural invariant of a schedule
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/roundrobin/schedule"
//
//	s, err := schedule.Generate(9, schedule.WithLegs(2))
//	if err != nil {
//	  // ErrNegativeParticipants, ErrTooManyParticipants, ErrOverflow
//	  // or ErrTooManyRounds
//	}
//	for _, r := range s.Rounds {
//	  fmt.Println(r.Index, s.Games(r.Index), r.Bye)
//	}
//
// Participant identifiers are the integers [0, Size), where Size is the
// participant count rounded up to the next even number. When the count is
// odd, the identifier equal to that count is the bye.
//
// Performance:
//
//   - Time:   O(N²) for Generate and Validate
//   - Memory: O(N²) output; Validate uses O(N²) scratch space
//
// See example_test.go for runnable examples.
package schedule
