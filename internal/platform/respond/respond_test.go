package respond_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/domain/session"
	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/platform/respond"
)

func TestClassify(t *testing.T) {
	var verrs validation.Errors
	verrs.Add("title", "title is required")

	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", verrs.Err(), 422, "validation failed: title is required"},
		{"auth", &session.AuthenticationError{Status: 401, Detail: "Invalid credentials"}, 401, "Invalid credentials"},
		{"auth over api", &session.AuthenticationError{Status: 400, Detail: "Inactive user", Err: &httpclient.APIError{Status: 400}}, 401, "Inactive user"},
		{"auth bad reply", &session.AuthenticationError{Err: errors.New("empty token")}, 401, "login failed"},
		{"api", fmt.Errorf("wrapped: %w", &httpclient.APIError{Status: 404, Detail: "event not found"}), 404, "event not found"},
		{"api generic", &httpclient.APIError{Status: 500}, 500, "request failed"},
		{"network", &httpclient.NetworkError{Method: "GET", URL: "x", Err: errors.New("refused")}, 502, "backend unreachable"},
		{"missing id", resources.ErrMissingID, 400, "resource id is required"},
		{"other", errors.New("kaboom"), 500, "internal error"},
	}

	for _, tc := range cases {
		status, body := respond.Classify(tc.err)
		if status != tc.status || body.Detail != tc.detail {
			t.Fatalf("%s: got %d %q, want %d %q", tc.name, status, body.Detail, tc.status, tc.detail)
		}
	}
}

func TestClassify_ValidationKeepsFields(t *testing.T) {
	var verrs validation.Errors
	verrs.Add("first_name", "first and last name are required")

	_, body := respond.Classify(verrs.Err())
	if len(body.Fields) != 1 || body.Fields[0].Field != "first_name" {
		t.Fatalf("unexpected fields %+v", body.Fields)
	}
}

func TestJSON_DropsResultOfCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	if respond.JSON(rr, r, http.StatusOK, map[string]string{"a": "b"}) {
		t.Fatalf("expected stale result to be discarded")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", rr.Body.String())
	}
}
