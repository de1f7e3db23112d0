// Package roundrobin is a small, dependency-light toolkit for round-robin
// tournament scheduling: every participant meets every other participant
// exactly once per leg, one perfect matching per round.
//
// 🚀 What is in the module?
//
//	• schedule/        - circle-method generator, bye handling, multi-leg
//	                     seasons, read-only queries and a structural validator
//	• examples/league/ - runnable demo: YAML league → fixtures per division
//
// ✨ Why this shape?
//
//   - Pure functions – no I/O, no globals, safe for concurrent callers
//   - Reproducible – one canonical pairing order for every participant count
//   - Explicit byes – odd counts get a synthetic participant, and every round
//     reports who rests
//   - Checked – Validate proves a schedule is a 1-factorization of K_n
//
// Quick example (4 participants, 3 rounds):
//
//	round 1: (0,3) (1,2)
//	round 2: (1,3) (2,0)
//	round 3: (2,3) (0,1)
//
//	go get github.com/katalvlaran/roundrobin/schedule
package roundrobin
