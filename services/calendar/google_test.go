package calendar

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"clearslot/services/availability"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

func TestClassifyFetchError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want availability.Kind
	}{
		{"unauthorized means expired access token", &googleapi.Error{Code: http.StatusUnauthorized}, availability.KindCredentialExpired},
		{"forbidden is a provider fault", &googleapi.Error{Code: http.StatusForbidden}, availability.KindProvider},
		{"rate limited is a provider fault", &googleapi.Error{Code: http.StatusTooManyRequests}, availability.KindProvider},
		{"server error is a provider fault", &googleapi.Error{Code: http.StatusInternalServerError}, availability.KindProvider},
		{"deadline exceeded is unreachable, never expiry", context.DeadlineExceeded, availability.KindUnreachable},
		{"canceled is unreachable", context.Canceled, availability.KindUnreachable},
		{"plain transport failure is unreachable", errors.New("connection reset by peer"), availability.KindUnreachable},
	}

	for _, tc := range cases {
		got := availability.KindOf(classifyFetchError(tc.err))
		if got != tc.want {
			t.Errorf("%s: kind = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassifyFetchError_ProviderCarriesStatus(t *testing.T) {
	err := classifyFetchError(&googleapi.Error{Code: http.StatusForbidden})

	var typed *availability.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected a typed error, got %T", err)
	}
	if typed.Status != http.StatusForbidden {
		t.Errorf("status = %d, want %d", typed.Status, http.StatusForbidden)
	}
}

func TestClassifyExchangeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want availability.Kind
	}{
		{"invalid_grant means revoked refresh token",
			&oauth2.RetrieveError{ErrorCode: "invalid_grant"},
			availability.KindCredentialRevoked},
		{"unauthorized exchange means revoked refresh token",
			&oauth2.RetrieveError{Response: &http.Response{StatusCode: http.StatusUnauthorized}},
			availability.KindCredentialRevoked},
		{"server error exchange is a provider fault",
			&oauth2.RetrieveError{Response: &http.Response{StatusCode: http.StatusInternalServerError}},
			availability.KindProvider},
		{"deadline exceeded is unreachable",
			context.DeadlineExceeded,
			availability.KindUnreachable},
		{"plain transport failure is unreachable",
			errors.New("unexpected EOF"),
			availability.KindUnreachable},
	}

	for _, tc := range cases {
		got := availability.KindOf(classifyExchangeError(tc.err))
		if got != tc.want {
			t.Errorf("%s: kind = %q, want %q", tc.name, got, tc.want)
		}
	}
}
