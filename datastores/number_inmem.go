package datastores

import (
	"context"
	"fmt"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NumberInmem implements [NumberStore].
type NumberInmem struct {
	mu     sync.Mutex
	number string
}

var _ NumberStore = (*NumberInmem)(nil)

func NewNumberInmem(number string) *NumberInmem {
	return &NumberInmem{number: number}
}

func (s *NumberInmem) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.number, nil
}

// Set overwrites the number. Blank numbers are rejected with [ErrValidation],
// the same as contact numbers.
func (s *NumberInmem) Set(_ context.Context, number string) error {
	err := validation.Validate(number, validation.Required, notBlank)
	if err != nil {
		return fmt.Errorf("%w: number: %w", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.number = number
	return nil
}
