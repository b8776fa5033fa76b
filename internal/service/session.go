package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
	obserrors "github.com/eduportal/eduportal-mobile/internal/observability/errors"
	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	API    ports.AuthAPI
	Tokens ports.TokenStore
	Logger *slog.Logger
}

// SessionManager owns the credential lifecycle: the persisted token, the
// resolved identity and role, and the bootstrap/sign-in/sign-out transitions.
// All mutations are serialized through its methods; subscribers always observe
// complete snapshots, never a token with a stale role.
type SessionManager struct {
	api    ports.AuthAPI
	tokens ports.TokenStore
	logger *slog.Logger

	mu      sync.Mutex
	sess    domainauth.Session
	subs    map[int]func(domainauth.Session)
	nextSub int
}

// NewSessionManager constructs a SessionManager in the pre-bootstrap state.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sess := domainauth.Empty()
	sess.IsBootstrapping = true
	return &SessionManager{
		api:    opts.API,
		tokens: opts.Tokens,
		logger: logger,
		sess:   sess,
		subs:   make(map[int]func(domainauth.Session)),
	}
}

// Snapshot returns the current session state.
func (m *SessionManager) Snapshot() domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess
}

// Subscribe registers fn to run with the full snapshot after every session
// change. Callbacks run synchronously under the manager's lock and must not
// call back into mutators. The returned function deregisters fn; after it
// returns no further snapshots are delivered.
func (m *SessionManager) Subscribe(fn func(domainauth.Session)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// publish applies the complete snapshot and notifies subscribers with it.
func (m *SessionManager) publish(sess domainauth.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = sess
	for _, fn := range m.subs {
		fn(sess)
	}
}

// identityProbe is one ordered step of the bootstrap resolution pipeline.
// A nil error short-circuits the pipeline with the returned session.
type identityProbe struct {
	name string
	run  func(ctx context.Context, token string) (domainauth.Session, error)
}

// probes returns the resolution pipeline in policy order: professor first,
// student second. The ordering is fixed; nothing guarantees a token cannot
// resolve in both identity spaces, so the first success wins.
func (m *SessionManager) probes() []identityProbe {
	return []identityProbe{
		{
			name: "professor",
			run: func(ctx context.Context, token string) (domainauth.Session, error) {
				p, err := m.api.ProbeProfessor(ctx)
				if err != nil {
					return domainauth.Session{}, err
				}
				return domainauth.ForProfessor(token, p), nil
			},
		},
		{
			name: "aluno",
			run: func(ctx context.Context, token string) (domainauth.Session, error) {
				st, err := m.api.ProbeStudent(ctx)
				if err != nil {
					return domainauth.Session{}, err
				}
				return domainauth.ForStudent(token, st), nil
			},
		},
	}
}

// Bootstrap restores the persisted session. With no persisted token it
// settles into the logged-out state without any network call; with one it
// resolves the identity through the probe pipeline and logs out when every
// probe fails. Failures are recovered locally; Bootstrap never returns them.
func (m *SessionManager) Bootstrap(ctx context.Context) {
	m.beginBootstrap()

	settled := false
	defer func() {
		if !settled {
			m.clearBootstrapping()
		}
	}()

	token, err := m.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoToken) {
			m.logger.Warn("token store read failed, treating as signed out",
				"error", err, "error_class", obserrors.Classify(err))
		}
		m.api.ApplyToken("")
		settled = true
		m.publish(domainauth.Empty())
		return
	}

	m.api.ApplyToken(token)

	for _, probe := range m.probes() {
		sess, probeErr := probe.run(ctx, token)
		if probeErr == nil {
			settled = true
			m.publish(sess)
			return
		}
		if ctx.Err() != nil {
			// Torn down mid-bootstrap: apply nothing, and keep the persisted
			// token so a transient teardown cannot destroy a valid session.
			settled = true
			m.clearBootstrapping()
			return
		}
		m.logger.Info("identity probe failed",
			"probe", probe.name,
			"error", probeErr,
			"error_class", obserrors.Classify(probeErr))
	}

	// No probe recognized the token; the session is invalid.
	settled = true
	m.logoutAndClear(ctx)
}

// Refresh re-runs bootstrap to re-validate the session on demand.
func (m *SessionManager) Refresh(ctx context.Context) {
	m.Bootstrap(ctx)
}

// SignInProfessor authenticates against the professor login endpoint. The
// resolved role is admin when the backend marks the professor as one. Any
// previously held student identity is cleared.
func (m *SessionManager) SignInProfessor(ctx context.Context, email, password string) error {
	res, err := m.api.LoginProfessor(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.tokens.Save(ctx, res.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	m.api.ApplyToken(res.Token)

	identity := res.Professor
	if identity == nil {
		p, probeErr := m.api.ProbeProfessor(ctx)
		if probeErr != nil {
			// The login landed but the identity never resolved; roll the
			// credential back so no token-without-identity state survives.
			m.rollbackToken(ctx)
			return probeErr
		}
		identity = &p
	}

	m.publish(domainauth.ForProfessor(res.Token, *identity))
	return nil
}

// SignInAluno authenticates against the student login endpoint. The role is
// always student; any previously held professor identity is cleared.
func (m *SessionManager) SignInAluno(ctx context.Context, email, password string) error {
	res, err := m.api.LoginStudent(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.tokens.Save(ctx, res.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	m.api.ApplyToken(res.Token)

	identity := res.Student
	if identity == nil {
		st, probeErr := m.api.ProbeStudent(ctx)
		if probeErr != nil {
			m.rollbackToken(ctx)
			return probeErr
		}
		identity = &st
	}

	m.publish(domainauth.ForStudent(res.Token, *identity))
	return nil
}

// SignOut clears the persisted token and resets the session. It is
// idempotent; signing out of an empty session is a no-op that still
// republishes the empty state.
func (m *SessionManager) SignOut(ctx context.Context) error {
	err := m.tokens.Clear(ctx)
	m.api.ApplyToken("")
	m.publish(domainauth.Empty())
	if err != nil {
		return fmt.Errorf("clear persisted token: %w", err)
	}
	return nil
}

// logoutAndClear drops the persisted token and publishes the empty state.
func (m *SessionManager) logoutAndClear(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.Warn("clear persisted token failed",
			"error", err, "error_class", obserrors.Classify(err))
	}
	m.api.ApplyToken("")
	m.publish(domainauth.Empty())
}

// rollbackToken undoes a persisted login token after a failed identity
// resolution, leaving the session state untouched.
func (m *SessionManager) rollbackToken(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.Warn("rollback persisted token failed",
			"error", err, "error_class", obserrors.Classify(err))
	}
	m.api.ApplyToken("")
}

func (m *SessionManager) beginBootstrap() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess.IsBootstrapping = true
	for _, fn := range m.subs {
		fn(m.sess)
	}
}

func (m *SessionManager) clearBootstrapping() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.sess.IsBootstrapping {
		return
	}
	m.sess.IsBootstrapping = false
	for _, fn := range m.subs {
		fn(m.sess)
	}
}
