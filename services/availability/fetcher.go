package availability

import (
	"context"
	"errors"
	"time"

	credentialsRepo "clearslot/database/repository/credentials"
	"clearslot/models"
	"clearslot/utils"

	"go.uber.org/zap"
)

// BusyProvider is the upstream calendar surface the fetcher talks to.
// Implementations classify failures into the Kind taxonomy: an expired access
// token surfaces as KindCredentialExpired, a rejected refresh token as
// KindCredentialRevoked, timeouts and transport failures as KindUnreachable.
type BusyProvider interface {
	// FetchBusy returns busy intervals for the calendars in [timeMin, timeMax).
	FetchBusy(ctx context.Context, accessToken string, calendarIDs []string, timeMin, timeMax time.Time) ([]models.BusyInterval, error)
	// ExchangeRefresh trades a refresh token for a fresh credential pair.
	ExchangeRefresh(ctx context.Context, refreshToken string) (*models.CredentialPair, error)
}

// Fetcher executes one upstream busy-interval fetch per call, transparently
// refreshing an expired access credential at most once.
type Fetcher struct {
	Provider    BusyProvider
	Credentials credentialsRepo.CredentialsRepository
}

// attemptFetch performs a single upstream call with the pair given as a value
// and reports whether a refresh would help. Keeping this stateless makes the
// one-refresh bound visible in FetchBusy's control flow.
func (f *Fetcher) attemptFetch(ctx context.Context, pair models.CredentialPair,
	calendarIDs []string, timeMin, timeMax time.Time) ([]models.BusyInterval, bool, error) {

	busy, err := f.Provider.FetchBusy(ctx, pair.AccessToken, calendarIDs, timeMin, timeMax)
	if err != nil {
		return nil, IsKind(err, KindCredentialExpired), err
	}
	return busy, false, nil
}

// FetchBusy fetches busy intervals for a person's calendars.
//
// Protocol: read the stored pair, call upstream; on an expired-credential
// failure, exchange the refresh token, persist the new pair, and retry exactly
// once. A second failure of any kind terminates. A missing pair fails fast
// before any upstream call.
func (f *Fetcher) FetchBusy(ctx context.Context, personID string, calendarIDs []string,
	timeMin, timeMax time.Time) ([]models.BusyInterval, error) {

	logger := utils.GetLogger()

	pair, err := f.Credentials.Get(ctx, personID)
	if err != nil {
		if errors.Is(err, credentialsRepo.ErrNotFound) {
			return nil, NewError(KindCredentialNotFound, "no stored credentials for person %s", personID)
		}
		return nil, WrapError(KindUnreachable, err, "failed to read credentials for person %s", personID)
	}

	busy, needsRefresh, err := f.attemptFetch(ctx, *pair, calendarIDs, timeMin, timeMax)
	if err == nil {
		return busy, nil
	}
	if !needsRefresh {
		return nil, err
	}

	logger.Info("Access credential expired, refreshing",
		zap.String("personId", personID))

	newPair, err := f.Provider.ExchangeRefresh(ctx, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if newPair.RefreshToken == "" {
		// Upstream did not rotate the refresh token; keep the old one.
		newPair.RefreshToken = pair.RefreshToken
	}

	// Persist before retrying so a concurrent caller for the same person
	// observes the refreshed pair.
	if err := f.Credentials.Put(ctx, personID, *newPair); err != nil {
		return nil, WrapError(KindUnreachable, err, "failed to persist refreshed credentials for person %s", personID)
	}

	busy, _, err = f.attemptFetch(ctx, *newPair, calendarIDs, timeMin, timeMax)
	if err != nil {
		return nil, err
	}
	return busy, nil
}
