package errors

import (
	"fmt"

	kdb "github.com/ragamarkely/todo-app/pkg/db"
)

// requested data is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// requested data is found too much.
type TooMuch struct {
	Table    string
	Identity string
	Expected int
}

var _ error = TooMuch{}

func (t TooMuch) Error() string {
	return fmt.Sprintf(
		"%s is found in %s more than %d times",
		t.Identity, t.Table, t.Expected,
	)
}

func (t TooMuch) Unwrap() error {
	return kdb.ErrTooMuch
}

// AffectedOne checks a command touched exactly one row.
//
// # Returns
//
// - error: Missing when no rows affected, TooMuch when more than one.
func AffectedOne(table string, identity any, affected int64) error {
	switch {
	case affected == 0:
		return Missing{Table: table, Identity: fmt.Sprint(identity)}
	case 1 < affected:
		return TooMuch{Table: table, Identity: fmt.Sprint(identity), Expected: 1}
	}
	return nil
}
