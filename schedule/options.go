// SPDX-License-Identifier: MIT
// Package: roundrobin/schedule
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Options apply in order; later ones override earlier ones.
//   • Defaults: one leg, no participant limit.

package schedule

// Option customizes Generate by mutating a config before generation.
type Option func(*config)

// config holds the resolved knobs for one Generate call.
type config struct {
	legs            int
	maxParticipants int // 0 means unlimited
}

// newConfig resolves opts over deterministic defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		legs:            DefaultLegs,
		maxParticipants: 0,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLegs sets how many times every pair meets. Leg 0 is the canonical
// schedule; odd-numbered legs repeat it with Home and Away swapped, even
// ones repeat it unchanged. Panics if legs < 1.
func WithLegs(legs int) Option {
	if legs < 1 {
		panic("schedule: WithLegs(legs<1)")
	}
	return func(c *config) {
		c.legs = legs
	}
}

// WithMaxParticipants rejects participant counts above limit with
// ErrTooManyParticipants. A limit of 0 disables the check.
// Panics if limit < 0.
func WithMaxParticipants(limit int) Option {
	if limit < 0 {
		panic("schedule: WithMaxParticipants(limit<0)")
	}
	return func(c *config) {
		c.maxParticipants = limit
	}
}
