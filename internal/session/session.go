// Package session binds a calculator's validation and computation into a
// reusable validate-then-compute unit.
//
// A Spec pairs one calculator's Normalize and Compute functions; a Session
// wraps a Spec with the current input state and re-evaluates on every
// change. The session is the only stateful component: the calculators stay
// pure and the tariff table stays read-only, so re-evaluation is always
// safe to re-run or discard.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/tariff"
)

// Clock supplies the current time for end-date defaulting. Injectable so
// evaluations are reproducible in tests.
type Clock func() time.Time

// Spec pairs one calculator's validation with its computation.
type Spec[I, R any] struct {
	Name       string
	Disclaimer calculators.DisclaimerCategory
	Normalize  func(I, time.Time) (I, []calculators.FieldError)
	Compute    func(I, *tariff.Table) R
}

// Evaluate runs validation and, on success, the computation. The result is
// nil exactly when the error list is non-empty.
func (s Spec[I, R]) Evaluate(in I, table *tariff.Table, now time.Time) (*R, []calculators.FieldError) {
	normalized, errs := s.Normalize(in, now)
	if len(errs) > 0 {
		return nil, errs
	}
	result := s.Compute(normalized, table)
	return &result, nil
}

type options struct {
	logger *zap.Logger
	clock  Clock
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source used for end-date defaulting.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Session holds the current input for one calculator and keeps the derived
// result and error list synchronized with it.
type Session[I, R any] struct {
	spec   Spec[I, R]
	table  *tariff.Table
	logger *zap.Logger
	clock  Clock

	input  I
	result *R
	errors []calculators.FieldError
}

// New creates a session seeded with the given input and evaluates it once.
func New[I, R any](spec Spec[I, R], table *tariff.Table, input I, opts ...Option) *Session[I, R] {
	o := options{logger: zap.NewNop(), clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session[I, R]{
		spec:   spec,
		table:  table,
		logger: o.logger,
		clock:  o.clock,
		input:  input,
	}
	s.recompute()
	return s
}

// Input returns the current input.
func (s *Session[I, R]) Input() I {
	return s.input
}

// Result returns the last computed result, or nil while the input is
// invalid.
func (s *Session[I, R]) Result() *R {
	return s.result
}

// Errors returns the field errors from the last evaluation.
func (s *Session[I, R]) Errors() []calculators.FieldError {
	return s.errors
}

// Valid reports whether the current input passed validation.
func (s *Session[I, R]) Valid() bool {
	return s.result != nil
}

// Set replaces the input wholesale and re-evaluates.
func (s *Session[I, R]) Set(input I) {
	s.input = input
	s.recompute()
}

// Update applies a mutation to a copy of the current input and swaps the
// copy in. The previous input value is never modified.
func (s *Session[I, R]) Update(mutate func(*I)) {
	next := s.input
	mutate(&next)
	s.Set(next)
}

// Reset clears the session back to the zero input.
func (s *Session[I, R]) Reset() {
	var zero I
	s.Set(zero)
}

func (s *Session[I, R]) recompute() {
	result, errs := s.spec.Evaluate(s.input, s.table, s.clock())
	s.result = result
	s.errors = errs
	if len(errs) > 0 {
		s.logger.Debug("input failed validation",
			zap.String("op", "session.recompute"),
			zap.String("calculator", s.spec.Name),
			zap.Int("errors", len(errs)),
		)
	}
}
