package service

//go:generate mockgen -destination=../../mocks/mock_auth_repository.go -package=mocks github.com/taskforge/todo-service/internal/auth/domain AuthRepository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/taskforge/todo-service/config"
	"github.com/taskforge/todo-service/internal/audit"
	"github.com/taskforge/todo-service/internal/auth/domain"
	"github.com/taskforge/todo-service/internal/auth/dto"
	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/pkg/constant"
)

type AuthService struct {
	repo     domain.AuthRepository
	tokens   TokenGenerator
	hasher   PasswordHasher
	recorder *audit.Recorder
	cfg      *config.Config
}

func NewAuthService(repo domain.AuthRepository, tokens TokenGenerator, hasher PasswordHasher,
	recorder *audit.Recorder, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		recorder: recorder,
		cfg:      cfg,
	}
}

// Login authenticates the credentials and opens a new session with a fresh
// refresh chain. Every precondition failure is collapsed into
// ErrInvalidCredentials so callers cannot probe which check failed.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	count, err := s.repo.CountRecentFailedAttempts(ctx, input.Email, input.IPAddress, s.cfg.LoginWindowMinutes)
	if err != nil {
		return nil, err
	}
	if count >= s.cfg.LoginMaxAttempts {
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Burn a bcrypt comparison so unknown emails cost the same as known ones.
		s.hasher.Verify(input.Password, dummyPasswordHash)
		s.recordFailedAttempt(ctx, nil, input, "unknown_email")

		return nil, autherror.ErrInvalidCredentials
	}

	switch {
	case !s.hasher.Verify(input.Password, user.PasswordHash):
		s.recordFailedAttempt(ctx, user, input, "bad_password")
		return nil, autherror.ErrInvalidCredentials
	case user.Status != constant.UserStatusActive:
		s.recordFailedAttempt(ctx, user, input, "inactive_account")
		return nil, autherror.ErrInvalidCredentials
	case !user.EmailVerified:
		s.recordFailedAttempt(ctx, user, input, "email_unverified")
		return nil, autherror.ErrInvalidCredentials
	case user.RoleName == "":
		s.recordFailedAttempt(ctx, user, input, "no_role_grant")
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	sessionID := uuid.NewString()

	pair, err := s.tokens.Generate(user.ID, user.RoleName, sessionID, input.StayLoggedIn)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		UserAgent: optionalString(input.UserAgent),
		IssuedAt:  now,
		ExpiresAt: pair.RefreshExpiresAt,
	}
	root := &domain.RefreshToken{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		TokenHash: HashRefreshToken(pair.RefreshToken),
		IssuedAt:  now,
		ExpiresAt: pair.RefreshExpiresAt,
	}

	if err := s.repo.CreateSessionWithRootToken(ctx, session, root); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("warn: failed to update last login for user %s: %v", user.ID, err)
	}

	if err := s.repo.RecordLoginAttempt(ctx, &domain.LoginAttempt{
		ID:          uuid.NewString(),
		UserID:      &user.ID,
		Email:       input.Email,
		IPAddress:   input.IPAddress,
		UserAgent:   optionalString(input.UserAgent),
		Successful:  true,
		AttemptTime: now,
	}); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &user.ID,
		ActorType:  constant.RevokedByUser,
		Action:     "login",
		EntityType: "session",
		EntityID:   sessionID,
		IPAddress:  input.IPAddress,
	})

	return &dto.LoginOutput{
		SubjectID: user.ID,
		Token: dto.TokenOutput{
			AccessToken:      pair.AccessToken,
			RefreshToken:     pair.RefreshToken,
			AccessExpiresAt:  pair.AccessExpiresAt,
			RefreshExpiresAt: pair.RefreshExpiresAt,
		},
	}, nil
}

// Refresh rotates the presented refresh token. Presenting any token that is
// not the single current one of its chain is treated as a replay: the whole
// session and chain are revoked before the call fails.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.LoginOutput, error) {
	token, err := s.repo.GetRefreshTokenByHash(ctx, HashRefreshToken(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	now := time.Now()

	if !token.Active() {
		s.revokeChainForReuse(ctx, token.SessionID, input.IPAddress)
		return nil, autherror.ErrTokenReuseDetected
	}

	if token.Expired(now) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	session, err := s.repo.GetSessionByID(ctx, token.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active(now) {
		return nil, autherror.ErrSessionNotFound
	}

	user, err := s.repo.GetByIDWithRole(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RoleName == "" {
		return nil, autherror.ErrInvalidCredentials
	}

	pair, err := s.tokens.Generate(user.ID, user.RoleName, session.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	next := &domain.RefreshToken{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		ParentID:  &token.ID,
		TokenHash: HashRefreshToken(pair.RefreshToken),
		IssuedAt:  now,
		ExpiresAt: pair.RefreshExpiresAt,
	}

	if err := s.repo.RotateRefreshToken(ctx, token.ID, now, next); err != nil {
		if errors.Is(err, autherror.ErrTokenNoLongerActive) {
			// Lost the race against another rotation of the same token.
			s.revokeChainForReuse(ctx, token.SessionID, input.IPAddress)
			return nil, autherror.ErrTokenReuseDetected
		}
		return nil, err
	}

	return &dto.LoginOutput{
		SubjectID: user.ID,
		Token: dto.TokenOutput{
			AccessToken:      pair.AccessToken,
			RefreshToken:     pair.RefreshToken,
			AccessExpiresAt:  pair.AccessExpiresAt,
			RefreshExpiresAt: pair.RefreshExpiresAt,
		},
	}, nil
}

// Logout revokes the caller's most recent active session. With no active
// session it still succeeds, returning the most recent revocation summary so
// a repeated logout reports the same session both times.
func (s *AuthService) Logout(ctx context.Context, userID string, input dto.LogoutInput) (*dto.LogoutOutput, error) {
	now := time.Now()

	session, err := s.repo.GetLatestActiveSessionByUserID(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if session == nil {
		prior, err := s.repo.GetLatestRevocationByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}

		out := &dto.LogoutOutput{}
		if prior != nil {
			out = revocationSummary(prior)
		}

		s.recorder.Record(ctx, audit.Entry{
			ActorID:    &userID,
			ActorType:  constant.RevokedByUser,
			Action:     "logout_noop",
			EntityType: "session",
			EntityID:   out.SessionID,
		})

		return out, nil
	}

	reason := input.Reason
	if reason == "" {
		reason = constant.ReasonLogout
	}

	rev := &domain.SessionRevocation{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		RevokedAt: now,
		RevokedBy: constant.RevokedByUser,
		Reason:    &reason,
	}
	if err := s.repo.RevokeSessionCascade(ctx, rev); err != nil {
		return nil, err
	}

	// The upsert keeps any earlier record; read back the authoritative row.
	if stored, err := s.repo.GetSessionRevocation(ctx, session.ID); err == nil && stored != nil {
		rev = stored
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &userID,
		ActorType:  constant.RevokedByUser,
		Action:     "logout",
		EntityType: "session",
		EntityID:   session.ID,
	})

	return revocationSummary(rev), nil
}

// RevokeOtherSessions revokes every active session of the user except,
// unless asked otherwise, the one the caller is on. No other sessions is a
// no-op, not an error.
func (s *AuthService) RevokeOtherSessions(ctx context.Context, userID, currentSessionID string,
	input dto.RevokeOthersInput) error {
	exclude := currentSessionID
	if input.IncludeCurrent {
		exclude = ""
	}

	now := time.Now()

	sessions, err := s.repo.ListActiveSessionsByUserID(ctx, userID, exclude, now)
	if err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = constant.ReasonUserRequest
	}

	for i := range sessions {
		rev := &domain.SessionRevocation{
			ID:        uuid.NewString(),
			SessionID: sessions[i].ID,
			RevokedAt: now,
			RevokedBy: constant.RevokedByUser,
			Reason:    &reason,
		}
		if err := s.repo.RevokeSessionCascade(ctx, rev); err != nil {
			return err
		}
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &userID,
		ActorType:  constant.RevokedByUser,
		Action:     "revoke_other_sessions",
		EntityType: "session",
		Metadata:   fmt.Sprintf(`{"revoked":%d}`, len(sessions)),
	})

	return nil
}

// ChangePassword verifies the current password and stores a new hash,
// optionally revoking every other session afterwards.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentSessionID string,
	input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByIDWithRole(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return autherror.ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, newHash, time.Now()); err != nil {
		return err
	}

	if input.RevokeOtherSessions {
		if err := s.RevokeOtherSessions(ctx, userID, currentSessionID, dto.RevokeOthersInput{
			Reason: constant.ReasonPasswordChanged,
		}); err != nil {
			return err
		}
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &userID,
		ActorType:  constant.RevokedByUser,
		Action:     "password_changed",
		EntityType: "user",
		EntityID:   userID,
	})

	return nil
}

// ForceLogout revokes every active session of the target user. Admin only.
func (s *AuthService) ForceLogout(ctx context.Context, targetUserID string) error {
	now := time.Now()

	sessions, err := s.repo.ListActiveSessionsByUserID(ctx, targetUserID, "", now)
	if err != nil {
		return err
	}

	reason := constant.ReasonAdminForce

	for i := range sessions {
		rev := &domain.SessionRevocation{
			ID:        uuid.NewString(),
			SessionID: sessions[i].ID,
			RevokedAt: now,
			RevokedBy: constant.RevokedBySystem,
			Reason:    &reason,
		}
		if err := s.repo.RevokeSessionCascade(ctx, rev); err != nil {
			return err
		}
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorType:  constant.RevokedBySystem,
		Action:     "force_logout",
		EntityType: "user",
		EntityID:   targetUserID,
		Metadata:   fmt.Sprintf(`{"revoked":%d}`, len(sessions)),
	})

	return nil
}

// ListSessions returns a thin projection of the user's sessions, newest first.
func (s *AuthService) ListSessions(ctx context.Context, userID string) ([]dto.SessionOutput, error) {
	sessions, err := s.repo.ListSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]dto.SessionOutput, 0, len(sessions))
	for i := range sessions {
		out = append(out, sessionOutput(&sessions[i], now))
	}

	return out, nil
}

// GetSession returns one session with its refresh chain. Non-owners get the
// same not-found as nonexistent ids; existence never leaks across owners.
func (s *AuthService) GetSession(ctx context.Context, requesterID, sessionID string, isAdmin bool) (*dto.SessionDetailOutput, error) {
	session, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || (!isAdmin && session.UserID != requesterID) {
		return nil, autherror.ErrSessionNotFound
	}

	chain, err := s.repo.ListRefreshTokensBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	detail := &dto.SessionDetailOutput{
		SessionOutput: sessionOutput(session, time.Now()),
		RefreshChain:  make([]dto.RefreshTokenOutput, 0, len(chain)),
	}
	for i := range chain {
		rt := &chain[i]
		link := dto.RefreshTokenOutput{
			ID:        rt.ID,
			IssuedAt:  rt.IssuedAt,
			ExpiresAt: rt.ExpiresAt,
			Status:    rt.Status(),
		}
		if rt.ParentID != nil {
			link.ParentID = *rt.ParentID
		}
		detail.RefreshChain = append(detail.RefreshChain, link)
	}

	return detail, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, user *domain.User, input dto.LoginInput, reason string) {
	attempt := &domain.LoginAttempt{
		ID:            uuid.NewString(),
		Email:         input.Email,
		IPAddress:     input.IPAddress,
		UserAgent:     optionalString(input.UserAgent),
		Successful:    false,
		FailureReason: &reason,
		AttemptTime:   time.Now(),
	}
	if user != nil {
		attempt.UserID = &user.ID
	}

	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", input.Email, err)
	}
}

// revokeChainForReuse is the compensating action for a replayed token: the
// entire owning session goes down, not just the presented token.
func (s *AuthService) revokeChainForReuse(ctx context.Context, sessionID, ip string) {
	reason := constant.ReasonTokenReuse
	rev := &domain.SessionRevocation{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		RevokedAt: time.Now(),
		RevokedBy: constant.RevokedBySystem,
		Reason:    &reason,
	}

	if err := s.repo.RevokeSessionCascade(ctx, rev); err != nil {
		log.Printf("warn: failed to revoke session %s after token reuse: %v", sessionID, err)
		return
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorType:  constant.RevokedBySystem,
		Action:     "refresh_token_reuse_detected",
		EntityType: "session",
		EntityID:   sessionID,
		IPAddress:  ip,
	})
}

func revocationSummary(rev *domain.SessionRevocation) *dto.LogoutOutput {
	out := &dto.LogoutOutput{
		SessionID: rev.SessionID,
		RevokedBy: rev.RevokedBy,
	}
	revokedAt := rev.RevokedAt
	out.RevokedAt = &revokedAt
	if rev.Reason != nil {
		out.Reason = *rev.Reason
	}

	return out
}

func sessionOutput(s *domain.Session, now time.Time) dto.SessionOutput {
	out := dto.SessionOutput{
		ID:        s.ID,
		IPAddress: s.IPAddress,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
		Active:    s.Active(now),
	}
	if s.UserAgent != nil {
		out.UserAgent = *s.UserAgent
	}

	return out
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
