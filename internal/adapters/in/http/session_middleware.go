package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DefaultSessionCookieName is the cookie carrying the opaque session token.
const DefaultSessionCookieName = "delivery_session"

// sessionCookieMaxAge bounds how long a browser keeps the cookie.
const sessionCookieMaxAge = 30 * 24 * time.Hour

// sessionContextKey is the echo context key holding the resolved session id.
const sessionContextKey = "session_id"

// SessionUoW groups the transaction with the session repository.
type SessionUoW interface {
	commands.TxManager
	commands.SessionRepoFactory
}

// SessionUoWFactory creates new session unit of work instances.
type SessionUoWFactory interface {
	Create() SessionUoW
}

// SessionMiddleware resolves the caller's session before package routes run.
// A request carrying a known token reuses its session row and refreshes its
// last-activity timestamp; a missing or unknown token gets a fresh session
// and a new cookie. Every package request therefore always runs with a
// persisted session id.
type SessionMiddleware struct {
	uowFactory SessionUoWFactory
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware creates the middleware. cookieName is usually
// DefaultSessionCookieName; it is configurable so environments sharing a
// domain can keep their cookies apart.
func NewSessionMiddleware(
	uowFactory SessionUoWFactory,
	cookieName string,
	logger *slog.Logger,
) *SessionMiddleware {
	return &SessionMiddleware{
		uowFactory: uowFactory,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Resolve is the echo middleware function.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		resolved, issued, err := m.resolveSession(ctx)
		if err != nil {
			m.logger.ErrorContext(ctx.Request().Context(), "failed to resolve session",
				slog.Any("error", err))
			return respondError(ctx, http.StatusInternalServerError, "failed to resolve session")
		}

		if issued {
			ctx.SetCookie(&http.Cookie{
				Name:     m.cookieName,
				Value:    resolved.Token(),
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx.Set(sessionContextKey, resolved.ID())
		return next(ctx)
	}
}

// resolveSession loads the session for the request's cookie token, creating
// one when the token is absent or unknown. The second return value reports
// whether a new cookie must be issued.
func (m *SessionMiddleware) resolveSession(ctx echo.Context) (*session.UserSession, bool, error) {
	reqCtx := ctx.Request().Context()

	uow := m.uowFactory.Create()
	if err := uow.Begin(reqCtx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(reqCtx)
	}()

	sessionRepo := uow.SessionRepository()

	if cookie, err := ctx.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		existing, getErr := sessionRepo.GetByToken(reqCtx, cookie.Value)
		switch {
		case getErr == nil:
			if err = sessionRepo.Touch(reqCtx, existing.ID(), time.Now()); err != nil {
				return nil, false, err
			}
			if err = uow.Commit(reqCtx); err != nil {
				return nil, false, err
			}
			return existing, false, nil

		case !errors.Is(getErr, errs.ErrObjectNotFound):
			return nil, false, getErr
		}
		// An unknown token gets a fresh session below.
	}

	fresh, err := session.NewUserSession(kernel.NewUUID(), uuid.NewString())
	if err != nil {
		return nil, false, err
	}

	if err = sessionRepo.Add(reqCtx, fresh); err != nil {
		return nil, false, err
	}
	if err = uow.Commit(reqCtx); err != nil {
		return nil, false, err
	}

	return fresh, true, nil
}

// currentSessionID returns the session id stored by the middleware.
func currentSessionID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(sessionContextKey).(kernel.UUID)
	return id, ok
}
