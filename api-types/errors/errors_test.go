package errors_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apierr "github.com/ragamarkely/todo-app/api-types/errors"
)

func TestErrorMessage_UnmarshalJSON(t *testing.T) {
	t.Run("reason and advice are read", func(t *testing.T) {
		var got apierr.ErrorMessage
		if err := json.Unmarshal(
			[]byte(`{"reason": "bad request", "advice": "send json"}`), &got,
		); err != nil {
			t.Fatal(err)
		}
		if got.Reason != "bad request" || got.Advice != "send json" {
			t.Errorf("unexpected: %+v", got)
		}
	})

	t.Run("reason is required", func(t *testing.T) {
		var got apierr.ErrorMessage
		if err := json.Unmarshal([]byte(`{"advice": "send json"}`), &got); err == nil {
			t.Error("error is expected")
		}
	})
}

func TestErrorMessage_Error(t *testing.T) {
	cause := errors.New("root cause")
	em := apierr.ErrorMessage{Reason: "not found", Advice: "check id", Cause: cause}

	msg := em.Error()
	for _, want := range []string{"not found", "check id", "root cause"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q is not in message: %s", want, msg)
		}
	}
	if !errors.Is(em, cause) {
		t.Error("cause is not unwrapped")
	}

	b, err := json.Marshal(em)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"reason":"not found","advice":"check id"}` {
		t.Errorf("unexpected json: %s", b)
	}
}
