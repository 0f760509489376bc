package validation

import "sync/atomic"

type StubValidator struct {
	ValidateStructFunc func(any) map[string]string

	calls atomic.Int32
}

var _ Validator = (*StubValidator)(nil)

// ValidateStruct accepts every struct when ValidateStructFunc is not set.
func (s *StubValidator) ValidateStruct(st any) map[string]string {
	s.calls.Add(1)
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}

func (s *StubValidator) Calls() int {
	return int(s.calls.Load())
}
