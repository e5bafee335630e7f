package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
	"github.com/erplite/backoffice-client/internal/metrics"
)

// SessionAuthority is the single source of truth for "who is logged in"
// and "what can they do". It owns the bearer token and the current user
// profile, and answers capability questions from the static table in the
// domain package.
//
// The capability answers only gate client-side affordances; the server
// re-validates every call. One instance exists per running client and is
// passed explicitly to whatever front-end consumes it. It holds no lock:
// the client is a single logical actor and the caller must not run
// Login/Restore/Logout concurrently.
type SessionAuthority struct {
	api   ports.AuthAPI
	store ports.TokenStore
	log   zerolog.Logger

	token string
	user  *domain.User
}

func NewSessionAuthority(api ports.AuthAPI, store ports.TokenStore, log zerolog.Logger) *SessionAuthority {
	return &SessionAuthority{api: api, store: store, log: log}
}

// Restore attempts to resume a session from a persisted token. Any
// failure fails closed: the persisted token is discarded and the
// authority stays logged out. It never retries — token expiry is only
// ever discovered through a failed request.
func (a *SessionAuthority) Restore(ctx context.Context) error {
	token, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("session store unreadable, starting logged out")
		_ = a.store.Clear(ctx)
		return nil
	}
	if token == "" {
		return nil
	}

	a.logExpiryHint(token)

	user, err := a.api.Me(ctx, token)
	if err != nil {
		_ = a.store.Clear(ctx)
		metrics.SessionEventsTotal.WithLabelValues("restore_failed").Inc()
		a.log.Debug().Err(err).Msg("persisted token rejected, cleared")
		return fmt.Errorf("restore session: %w", err)
	}

	a.token = token
	a.user = user
	metrics.SessionEventsTotal.WithLabelValues("restore").Inc()
	a.log.Info().Str("username", user.Username).Msg("session restored")
	return nil
}

// Login exchanges credentials for a token and loads the owner's profile.
// On any failure the authority is left exactly as it was: a profile
// fetch that fails after a successful token exchange rolls the token
// back out of memory and the store, so a token is never persisted
// without a matching user.
func (a *SessionAuthority) Login(ctx context.Context, username, password string) error {
	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return fmt.Errorf("login: %w", err)
	}

	if err := a.store.Save(ctx, token); err != nil {
		// The in-memory session still works; only persistence is degraded.
		a.log.Warn().Err(err).Msg("token not persisted, session will not survive restart")
	}

	user, err := a.api.Me(ctx, token)
	if err != nil {
		_ = a.store.Clear(ctx)
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return fmt.Errorf("login: fetch profile: %w", err)
	}

	a.token = token
	a.user = user
	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	a.log.Info().Str("username", user.Username).Msg("logged in")
	return nil
}

// Logout notifies the server best-effort, then unconditionally clears
// the token, the current user and the persisted state. Calling it while
// already logged out is a no-op. It never fails: logout is a client-side
// guarantee, not contingent on server acknowledgment.
func (a *SessionAuthority) Logout(ctx context.Context) {
	if a.token != "" {
		if err := a.api.Logout(ctx, a.token); err != nil {
			a.log.Debug().Err(err).Msg("server logout failed, proceeding with local cleanup")
		}
		metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	}

	a.token = ""
	a.user = nil
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn().Err(err).Msg("failed to clear persisted token")
	}
}

// Can reports whether the current actor may perform the action. Pure and
// side-effect free, safe to call at arbitrarily high frequency. Unknown
// actions and the logged-out state both resolve to false.
func (a *SessionAuthority) Can(action domain.Action) bool {
	if a.user == nil {
		return false
	}
	return a.user.HasAnyProfile(domain.AllowedRoles(action))
}

// ProfileSummary returns the human-readable labels of the capabilities
// the current actor holds, in a fixed priority order independent of the
// profile set's internal ordering. Display only, not a security boundary.
func (a *SessionAuthority) ProfileSummary() []string {
	var labels []string
	for _, action := range domain.SummaryActions() {
		if a.Can(action) {
			labels = append(labels, action.Label())
		}
	}
	return labels
}

// Authenticated reports whether a session is active.
func (a *SessionAuthority) Authenticated() bool {
	return a.user != nil
}

// CurrentUser returns a copy of the logged-in user, or nil when logged
// out. Callers get a snapshot; mutating it does not affect the session.
func (a *SessionAuthority) CurrentUser() *domain.User {
	if a.user == nil {
		return nil
	}
	u := *a.user
	u.Profiles = append([]domain.Role(nil), a.user.Profiles...)
	return &u
}

// Token returns the active bearer token, or "" when logged out. Resource
// clients use it as their token source.
func (a *SessionAuthority) Token() string {
	return a.token
}

// logExpiryHint decodes the persisted token's claims without verifying
// the signature, purely to log when it is already past its exp. The
// server remains the only validator; the fetch proceeds regardless.
func (a *SessionAuthority) logExpiryHint(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		a.log.Debug().Time("expired_at", exp.Time).Msg("persisted token looks expired")
	}
}
