package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "parcels/internal/adapters/in/http"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Add(ctx context.Context, aggregate *session.UserSession) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.UserSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.UserSession), args.Error(1)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*session.UserSession, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.UserSession), args.Error(1)
}

func (m *MockSessionRepository) Touch(ctx context.Context, id kernel.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockSessionUoW struct {
	mock.Mock
}

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct {
	mock.Mock
}

func (m *MockSessionUoWFactory) Create() httpadapter.SessionUoW {
	args := m.Called()
	return args.Get(0).(httpadapter.SessionUoW)
}

// sessionMocks bundles the middleware dependencies for one test.
type sessionMocks struct {
	factory *MockSessionUoWFactory
	uow     *MockSessionUoW
	repo    *MockSessionRepository
}

func newSessionMocks() sessionMocks {
	m := sessionMocks{
		factory: new(MockSessionUoWFactory),
		uow:     new(MockSessionUoW),
		repo:    new(MockSessionRepository),
	}

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", mock.Anything).Return(nil)
	m.uow.On("Rollback", mock.Anything).Return(nil)
	m.uow.On("SessionRepository").Return(m.repo)

	return m
}

// expectExistingSession arranges the cookie token to resolve to a stored
// session whose last activity is refreshed.
func (m sessionMocks) expectExistingSession(t *testing.T, token string) *session.UserSession {
	t.Helper()

	existing, err := session.RestoreUserSession(
		kernel.NewUUID(), token, time.Now().Add(-time.Hour), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	m.repo.On("GetByToken", mock.Anything, token).Return(existing, nil).Once()
	m.repo.On("Touch", mock.Anything, existing.ID(), mock.AnythingOfType("time.Time")).Return(nil).Once()
	m.uow.On("Commit", mock.Anything).Return(nil).Once()

	return existing
}

// expectFreshSession arranges a new session to be persisted and returns a
// pointer that receives it once the middleware stores it.
func (m sessionMocks) expectFreshSession() *session.UserSession {
	created := new(session.UserSession)

	m.repo.On("Add", mock.Anything, mock.AnythingOfType("*session.UserSession")).
		Run(func(args mock.Arguments) {
			*created = *args.Get(1).(*session.UserSession)
		}).
		Return(nil).Once()
	m.uow.On("Commit", mock.Anything).Return(nil).Once()

	return created
}

// newProbe mounts a route behind the middleware that echoes the resolved
// session id.
func newProbe(m sessionMocks) *echo.Echo {
	middleware := httpadapter.NewSessionMiddleware(
		m.factory, httpadapter.DefaultSessionCookieName, slog.New(slog.DiscardHandler))

	e := echo.New()
	e.GET("/probe", func(ctx echo.Context) error {
		id, ok := ctx.Get("session_id").(kernel.UUID)
		if !ok {
			return ctx.NoContent(http.StatusInternalServerError)
		}
		return ctx.String(http.StatusOK, id.String())
	}, middleware.Resolve)

	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == httpadapter.DefaultSessionCookieName {
			return c
		}
	}
	return nil
}

func TestSessionMiddleware_MissingCookie_CreatesSession(t *testing.T) {
	mocks := newSessionMocks()
	created := mocks.expectFreshSession()
	e := newProbe(mocks)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID().String(), rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, created.Token(), cookie.Value)
	assert.True(t, cookie.HttpOnly)

	mocks.repo.AssertExpectations(t)
}

func TestSessionMiddleware_KnownCookie_ReusesSession(t *testing.T) {
	mocks := newSessionMocks()
	existing := mocks.expectExistingSession(t, "known-token")
	e := newProbe(mocks)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: httpadapter.DefaultSessionCookieName, Value: "known-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, existing.ID().String(), rec.Body.String())

	// No new cookie is issued for a recognized token.
	assert.Nil(t, sessionCookie(rec))

	mocks.repo.AssertExpectations(t)
	mocks.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSessionMiddleware_UnknownCookie_IssuesFreshSession(t *testing.T) {
	mocks := newSessionMocks()
	mocks.repo.On("GetByToken", mock.Anything, "stale-token").
		Return(nil, errs.NewObjectNotFoundError("session", "stale-token")).Once()
	created := mocks.expectFreshSession()
	e := newProbe(mocks)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: httpadapter.DefaultSessionCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID().String(), rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, created.Token(), cookie.Value)

	mocks.repo.AssertExpectations(t)
}

func TestSessionMiddleware_RepositoryFailure_Returns500(t *testing.T) {
	mocks := newSessionMocks()
	mocks.repo.On("Add", mock.Anything, mock.Anything).Return(assert.AnError).Once()
	e := newProbe(mocks)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	mocks.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
