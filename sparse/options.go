// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for text ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts Parse and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Duplicate coordinates in one input: the default is last-write-wins,
//     mirroring Set semantics. FirstWins and Sum are available for sources
//     that were produced under a different convention.
//   - A zero value never creates an entry. Under DuplicateLastWins a later
//     zero removes an earlier value for the same coordinate; under
//     DuplicateSum entries cancelling to zero are dropped.
package sparse

import "fmt"

// DuplicatePolicy selects how repeated (row, col) pairs in one input are merged.
type DuplicatePolicy int

const (
	// DuplicateLastWins keeps the value of the latest occurrence.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateFirstWins keeps the value of the earliest occurrence.
	DuplicateFirstWins
	// DuplicateSum accumulates all occurrences.
	DuplicateSum
)

// String returns the configuration spelling of the policy (last|first|sum).
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateLastWins:
		return "last"
	case DuplicateFirstWins:
		return "first"
	case DuplicateSum:
		return "sum"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "last", "first" or "sum" to a DuplicatePolicy.
// The empty string selects DefaultDuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "":
		return DefaultDuplicatePolicy, nil
	case "last":
		return DuplicateLastWins, nil
	case "first":
		return DuplicateFirstWins, nil
	case "sum":
		return DuplicateSum, nil
	default:
		return 0, fmt.Errorf("sparse: unknown duplicate policy %q", s)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDuplicatePolicy resolves repeated coordinates by last-write-wins.
	DefaultDuplicatePolicy = DuplicateLastWins

	// DefaultSkipOutOfRange keeps parsing strict: an out-of-bounds entry
	// fails with ErrOutOfRange.
	DefaultSkipOutOfRange = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDuplicatePolicyInvalid = "sparse: WithDuplicatePolicy: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective parse configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	duplicates     DuplicatePolicy         // DefaultDuplicatePolicy
	skipOutOfRange bool                    // DefaultSkipOutOfRange
	onSkip         func(line int, e Entry) // optional hook, nil means no-op
}

// WithDuplicatePolicy sets the merge policy for repeated coordinates.
// Panics on an unknown policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p < DuplicateLastWins || p > DuplicateSum {
		panic(panicDuplicatePolicyInvalid)
	}

	return func(o *Options) { o.duplicates = p }
}

// WithSkipOutOfRange toggles lenient ingestion: when enabled, entries whose
// coordinates fall outside the declared shape are skipped (and reported to
// the OnSkip hook) instead of failing with ErrOutOfRange.
func WithSkipOutOfRange(skip bool) Option {
	return func(o *Options) { o.skipOutOfRange = skip }
}

// WithOnSkip registers a hook invoked for every entry skipped under
// WithSkipOutOfRange(true). line is 1-based.
func WithOnSkip(fn func(line int, e Entry)) Option {
	return func(o *Options) { o.onSkip = fn }
}

// NewOptions resolves opts against the defaults. Exposed for collaborators
// that want to inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// DuplicatePolicy reports the effective duplicate policy.
func (o Options) DuplicatePolicy() DuplicatePolicy { return o.duplicates }

// SkipOutOfRange reports whether out-of-range entries are skipped.
func (o Options) SkipOutOfRange() bool { return o.skipOutOfRange }

// gatherOptions applies user options over the documented defaults in order
// (last setter wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		duplicates:     DefaultDuplicatePolicy,
		skipOutOfRange: DefaultSkipOutOfRange,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
