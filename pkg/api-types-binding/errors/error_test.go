package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	apierr "github.com/ragamarkely/todo-app/api-types/errors"
	binderr "github.com/ragamarkely/todo-app/pkg/api-types-binding/errors"
)

func TestErrors(t *testing.T) {
	cause := errors.New("fake error")

	for name, testcase := range map[string]struct {
		err    error
		code   int
		reason string
		advice string
	}{
		"BadRequest": {
			err: binderr.BadRequest("send json", cause), code: http.StatusBadRequest,
			reason: "bad request", advice: "send json",
		},
		"NotFound": {
			err: binderr.NotFound("check id", cause), code: http.StatusNotFound,
			reason: "not found", advice: "check id",
		},
		"ServiceUnavailable": {
			err: binderr.ServiceUnavailable("retry later", cause), code: http.StatusServiceUnavailable,
			reason: "service unavailable temporaly", advice: "retry later",
		},
		"InternalServerError": {
			err: binderr.InternalServerError(cause), code: http.StatusInternalServerError,
			reason: "unexpected error",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var herr *echo.HTTPError
			if !errors.As(testcase.err, &herr) {
				t.Fatalf("not a HTTPError: %#v", testcase.err)
			}
			if herr.Code != testcase.code {
				t.Errorf("code: want %d, got %d", testcase.code, herr.Code)
			}
			msg, ok := herr.Message.(apierr.ErrorMessage)
			if !ok {
				t.Fatalf("message is not ErrorMessage: %#v", herr.Message)
			}
			if msg.Reason != testcase.reason || msg.Advice != testcase.advice {
				t.Errorf("unexpected message: %+v", msg)
			}
			if !errors.Is(msg.Cause, cause) {
				t.Errorf("cause is lost: %v", msg.Cause)
			}
		})
	}
}
