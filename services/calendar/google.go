// Package calendar implements the upstream busy-interval provider on the
// Google Calendar API.
package calendar

import (
	"context"
	"errors"
	"net/http"
	"time"

	"clearslot/models"
	"clearslot/services/availability"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleBusyProvider implements availability.BusyProvider against the Google
// Calendar free/busy endpoint. Each call builds a one-shot client around the
// access token it was handed; no client state survives between calls.
type GoogleBusyProvider struct {
	OAuth           *oauth2.Config
	FreeBusyTimeout time.Duration
	ExchangeTimeout time.Duration
}

// NewGoogleBusyProvider builds a provider for the given OAuth client.
func NewGoogleBusyProvider(clientID, clientSecret string, freeBusyTimeout, exchangeTimeout time.Duration) *GoogleBusyProvider {
	return &GoogleBusyProvider{
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarReadonlyScope},
		},
		FreeBusyTimeout: freeBusyTimeout,
		ExchangeTimeout: exchangeTimeout,
	}
}

// FetchBusy queries free/busy for the given calendars in [timeMin, timeMax).
func (p *GoogleBusyProvider) FetchBusy(ctx context.Context, accessToken string, calendarIDs []string,
	timeMin, timeMax time.Time) ([]models.BusyInterval, error) {

	ctx, cancel := context.WithTimeout(ctx, p.FreeBusyTimeout)
	defer cancel()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, availability.WrapError(availability.KindUnreachable, err, "failed to build calendar client")
	}

	items := make([]*gcal.FreeBusyRequestItem, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		items = append(items, &gcal.FreeBusyRequestItem{Id: id})
	}

	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyFetchError(err)
	}

	var busy []models.BusyInterval
	for calID, cal := range resp.Calendars {
		for _, calErr := range cal.Errors {
			return nil, availability.NewError(availability.KindProvider,
				"calendar %s rejected: %s", calID, calErr.Reason)
		}
		for _, period := range cal.Busy {
			start, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				return nil, availability.WrapError(availability.KindProvider, err,
					"calendar %s returned malformed period start %q", calID, period.Start)
			}
			end, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				return nil, availability.WrapError(availability.KindProvider, err,
					"calendar %s returned malformed period end %q", calID, period.End)
			}
			busy = append(busy, models.BusyInterval{Start: start.UTC(), End: end.UTC()})
		}
	}
	return busy, nil
}

// ExchangeRefresh trades a refresh token for a new access token. Google only
// rotates the refresh token in rare cases; the fetcher keeps the old one when
// the response omits it.
func (p *GoogleBusyProvider) ExchangeRefresh(ctx context.Context, refreshToken string) (*models.CredentialPair, error) {
	ctx, cancel := context.WithTimeout(ctx, p.ExchangeTimeout)
	defer cancel()

	ts := p.OAuth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := ts.Token()
	if err != nil {
		return nil, classifyExchangeError(err)
	}

	pair := &models.CredentialPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	return pair, nil
}

// classifyFetchError maps a free/busy failure into the typed taxonomy. A
// timeout is deliberately not an expiry signal; refreshing would not help.
func classifyFetchError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return availability.WrapError(availability.KindUnreachable, err, "free/busy call timed out")
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusUnauthorized {
			return availability.WrapError(availability.KindCredentialExpired, err, "access credential rejected")
		}
		e := availability.WrapError(availability.KindProvider, err, "free/busy call failed")
		e.Status = gerr.Code
		return e
	}

	return availability.WrapError(availability.KindUnreachable, err, "free/busy call failed")
}

// classifyExchangeError maps a refresh-exchange failure. invalid_grant means
// the refresh token itself was revoked and the person must re-authenticate.
func classifyExchangeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return availability.WrapError(availability.KindUnreachable, err, "token exchange timed out")
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		if rerr.ErrorCode == "invalid_grant" ||
			(rerr.Response != nil && rerr.Response.StatusCode == http.StatusUnauthorized) {
			return availability.WrapError(availability.KindCredentialRevoked, err, "refresh credential rejected")
		}
		return availability.WrapError(availability.KindProvider, err, "token exchange failed")
	}

	return availability.WrapError(availability.KindUnreachable, err, "token exchange failed")
}
