package list

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a Store was not built with New.
	ErrNotInitialized = errors.New("list: store not initialized")
	// ErrNoStore is returned when a context carries no Store.
	ErrNoStore = errors.New("list: no store in scope")
)

// ContractError marks a programming mistake by the caller, as opposed to the
// data conditions the store silently ignores.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// IsContractViolation reports whether err is a store contract violation.
func IsContractViolation(err error) bool {
	var ce *ContractError
	if errors.As(err, &ce) {
		return true
	}
	return errors.Is(err, ErrNotInitialized) || errors.Is(err, ErrNoStore)
}

func contractErr(op string, err error) error {
	return &ContractError{Op: op, Err: err}
}
