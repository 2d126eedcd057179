package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorStrings(t *testing.T) {
	transport := &TransportError{Endpoint: EndpointResults, Err: errors.New("connection refused")}
	if got := transport.Error(); !strings.Contains(got, "results") || !strings.Contains(got, "connection refused") {
		t.Fatalf("unexpected transport error string %q", got)
	}

	status := &StatusError{Endpoint: EndpointTyres, StatusCode: 500, Body: "Tyre Data Error"}
	if got := status.Error(); !strings.Contains(got, "500") || !strings.Contains(got, "Tyre Data Error") {
		t.Fatalf("unexpected status error string %q", got)
	}
	if got := (&StatusError{Endpoint: EndpointTyres, StatusCode: 404}).Error(); strings.HasSuffix(got, ": ") {
		t.Fatalf("expected no trailing separator without body, got %q", got)
	}

	shape := &ShapeError{Endpoint: EndpointRaces, Err: errors.New("unexpected EOF")}
	if got := shape.Error(); !strings.Contains(got, "malformed") {
		t.Fatalf("unexpected shape error string %q", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"transport", &TransportError{Endpoint: "x", Err: errors.New("dial")}, KindTransport},
		{"wrapped status", fmt.Errorf("load: %w", &StatusError{Endpoint: "x", StatusCode: 502}), KindStatus},
		{"shape", &ShapeError{Endpoint: "x", Err: errors.New("bad json")}, KindShape},
		{"deadline", context.DeadlineExceeded, KindTransport},
		{"canceled inside transport", &TransportError{Endpoint: "x", Err: context.Canceled}, KindCanceled},
		{"other", errors.New("boom"), KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("root")
	if !errors.Is(&TransportError{Err: cause}, cause) {
		t.Fatal("expected transport error to unwrap")
	}
	if !errors.Is(&ShapeError{Err: cause}, cause) {
		t.Fatal("expected shape error to unwrap")
	}
}
