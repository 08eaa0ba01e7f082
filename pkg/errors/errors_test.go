package errors_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	xe "github.com/ragamarkely/todo-app/pkg/errors"
)

type MyErr struct{}

func (MyErr) Error() string {
	return "error type for test"
}

func createError(message string) error {
	return xe.New(message)
}

func TestNewError(t *testing.T) {
	t.Run("it knows location where it is created.", func(t *testing.T) {
		testee := createError("test error")
		errMessage := testee.Error()

		_, thisFile, _, _ := runtime.Caller(0)

		if !strings.Contains(errMessage, "createError") {
			t.Errorf("it does not know function name: %s", errMessage)
		}

		if !strings.Contains(errMessage, thisFile) {
			t.Errorf("it does not know file (%s): %s", thisFile, errMessage)
		}
	})

	t.Run("it tells the location via accessors", func(t *testing.T) {
		_, thisFile, line, _ := runtime.Caller(0)
		err := xe.Wrap(MyErr{})

		var ewc *xe.ErrWithCaller
		if !errors.As(err, &ewc) {
			t.Fatalf("it is not ErrWithCaller: %#v", err)
		}
		if ewc.File() != thisFile {
			t.Errorf("file: want %s, got %s", thisFile, ewc.File())
		}
		if ewc.Line() != line+1 {
			t.Errorf("line: want %d, got %d", line+1, ewc.Line())
		}
		if !strings.HasSuffix(ewc.Func(), "TestNewError.func2") {
			t.Errorf("unexpected func: %s", ewc.Func())
		}
	})

	t.Run("it supports errors protocol", func(t *testing.T) {
		rootError := MyErr{}

		err := xe.Wrap(
			fmt.Errorf(
				"%w",
				fmt.Errorf("%w", rootError),
			),
		)

		if !errors.Is(err, rootError) {
			t.Error("it does not support unwrapping.")
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil is kept nil", func(t *testing.T) {
		if err := xe.Wrap(nil); err != nil {
			t.Errorf("expected nil, but got %v", err)
		}
		if err := xe.WrapWithNote("note", nil); err != nil {
			t.Errorf("expected nil, but got %v", err)
		}
	})

	t.Run("note is shown in the message", func(t *testing.T) {
		err := xe.WrapWithNote("while inserting a todo", MyErr{})
		if !strings.Contains(err.Error(), "(while inserting a todo)") {
			t.Errorf("note is missing: %s", err)
		}
		if !errors.Is(err, MyErr{}) {
			t.Error("it does not support unwrapping.")
		}
	})
}
