package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskforge/todo-service/internal/audit"
	"github.com/taskforge/todo-service/internal/auth/domain"
	autherror "github.com/taskforge/todo-service/internal/errors"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Soft-deleted rows are invisible to every query; active sessions additionally
// require no revocation and a future expiry.
const (
	sessionActiveCond = `revoked_at IS NULL AND deleted_at IS NULL AND expires_at > $%d`
)

type AuthRepository struct {
	db DB
}

func NewAuthRepository(db DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.status, u.email_verified,
		       COALESCE(g.role, ''), u.last_login_at, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_role_grants g
		  ON g.user_id = u.id AND g.revoked_at IS NULL AND g.deleted_at IS NULL
		WHERE u.email = $1 AND u.deleted_at IS NULL
		ORDER BY g.granted_at DESC
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *AuthRepository) GetByIDWithRole(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.status, u.email_verified,
		       COALESCE(g.role, ''), u.last_login_at, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_role_grants g
		  ON g.user_id = u.id AND g.revoked_at IS NULL AND g.deleted_at IS NULL
		WHERE u.id = $1 AND u.deleted_at IS NULL
		ORDER BY g.granted_at DESC
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *AuthRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Status, &user.EmailVerified,
		&user.RoleName, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, userID, at)

	return err
}

func (r *AuthRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`, userID, passwordHash, at)

	return err
}

func (r *AuthRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, user_id, email, ip_address, user_agent, successful, failure_reason, attempt_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, attempt.ID, attempt.UserID, attempt.Email, attempt.IPAddress, attempt.UserAgent,
		attempt.Successful, attempt.FailureReason, attempt.AttemptTime)

	return err
}

func (r *AuthRepository) CountRecentFailedAttempts(ctx context.Context, email, ip string, windowMinutes int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(id) FROM login_attempts
		WHERE email = $1 AND ip_address = $2 AND successful = FALSE
		  AND attempt_time > now() - make_interval(mins => $3)
	`, email, ip, windowMinutes).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateSessionWithRootToken inserts the session and its chain root together;
// a session must never exist without a current refresh token.
func (r *AuthRepository) CreateSessionWithRootToken(ctx context.Context, session *domain.Session, root *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO sessions (id, user_id, ip_address, user_agent, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, session.ID, session.UserID, session.IPAddress, session.UserAgent, session.IssuedAt, session.ExpiresAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, session_id, parent_id, token_hash, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, root.ID, root.SessionID, root.ParentID, root.TokenHash, root.IssuedAt, root.ExpiresAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AuthRepository) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, ip_address, user_agent, issued_at, expires_at, revoked_at, revoked_reason, deleted_at
		FROM sessions
		WHERE id = $1 AND deleted_at IS NULL
		LIMIT 1;
	`

	return r.scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *AuthRepository) GetLatestActiveSessionByUserID(ctx context.Context, userID string, now time.Time) (*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, ip_address, user_agent, issued_at, expires_at, revoked_at, revoked_reason, deleted_at
		FROM sessions
		WHERE user_id = $1 AND `+sessionActiveCond+`
		ORDER BY issued_at DESC
		LIMIT 1;
	`, 2)

	return r.scanSession(r.db.QueryRow(ctx, query, userID, now))
}

func (r *AuthRepository) ListActiveSessionsByUserID(ctx context.Context, userID, excludeSessionID string, now time.Time) ([]domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, ip_address, user_agent, issued_at, expires_at, revoked_at, revoked_reason, deleted_at
		FROM sessions
		WHERE user_id = $1 AND ($2 = '' OR id::text <> $2) AND `+sessionActiveCond+`
		ORDER BY issued_at DESC;
	`, 3)

	rows, err := r.db.Query(ctx, query, userID, excludeSessionID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *AuthRepository) ListSessionsByUserID(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, ip_address, user_agent, issued_at, expires_at, revoked_at, revoked_reason, deleted_at
		FROM sessions
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY issued_at DESC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *AuthRepository) scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.IssuedAt, &s.ExpiresAt,
		&s.RevokedAt, &s.RevokedReason, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

func scanSessions(rows pgx.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.IssuedAt, &s.ExpiresAt,
			&s.RevokedAt, &s.RevokedReason, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *AuthRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, session_id, parent_id, token_hash, issued_at, expires_at, rotated_at, revoked_at, revoked_reason, deleted_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND deleted_at IS NULL
		LIMIT 1;
	`, tokenHash)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.SessionID, &rt.ParentID, &rt.TokenHash, &rt.IssuedAt, &rt.ExpiresAt,
		&rt.RotatedAt, &rt.RevokedAt, &rt.RevokedReason, &rt.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rt, nil
}

// RotateRefreshToken supersedes the old token and inserts its successor in
// one transaction. The rotated_at flip is conditional on the token still
// being current, so two racing rotations cannot both succeed: the loser gets
// ErrTokenNoLongerActive.
func (r *AuthRepository) RotateRefreshToken(ctx context.Context, oldTokenID string, rotatedAt time.Time, next *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE refresh_tokens SET rotated_at = $2
		WHERE id = $1 AND rotated_at IS NULL AND revoked_at IS NULL AND deleted_at IS NULL
	`, oldTokenID, rotatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrTokenNoLongerActive
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, session_id, parent_id, token_hash, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, next.ID, next.SessionID, next.ParentID, next.TokenHash, next.IssuedAt, next.ExpiresAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AuthRepository) ListRefreshTokensBySessionID(ctx context.Context, sessionID string) ([]domain.RefreshToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, parent_id, token_hash, issued_at, expires_at, rotated_at, revoked_at, revoked_reason, deleted_at
		FROM refresh_tokens
		WHERE session_id = $1 AND deleted_at IS NULL
		ORDER BY issued_at ASC;
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.RefreshToken
	for rows.Next() {
		var rt domain.RefreshToken
		if err := rows.Scan(&rt.ID, &rt.SessionID, &rt.ParentID, &rt.TokenHash, &rt.IssuedAt, &rt.ExpiresAt,
			&rt.RotatedAt, &rt.RevokedAt, &rt.RevokedReason, &rt.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan refresh token row: %w", err)
		}
		tokens = append(tokens, rt)
	}

	return tokens, rows.Err()
}

// RevokeSessionCascade closes a session and everything under it. All three
// statements are conditional on not-yet-revoked rows, and the revocation
// record insert swallows conflicts on its unique session id, so replays and
// concurrent revokes collapse into the first outcome.
func (r *AuthRepository) RevokeSessionCascade(ctx context.Context, rev *domain.SessionRevocation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE sessions SET revoked_at = $2, revoked_reason = $3
		WHERE id = $1 AND revoked_at IS NULL AND deleted_at IS NULL
	`, rev.SessionID, rev.RevokedAt, rev.Reason)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO session_revocations (id, session_id, revoked_at, revoked_by, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $3, $3)
		ON CONFLICT (session_id) DO NOTHING
	`, rev.ID, rev.SessionID, rev.RevokedAt, rev.RevokedBy, rev.Reason)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = $2, revoked_reason = $3
		WHERE session_id = $1 AND revoked_at IS NULL AND deleted_at IS NULL
	`, rev.SessionID, rev.RevokedAt, rev.Reason)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AuthRepository) GetSessionRevocation(ctx context.Context, sessionID string) (*domain.SessionRevocation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, session_id, revoked_at, revoked_by, reason, created_at, updated_at
		FROM session_revocations
		WHERE session_id = $1
		LIMIT 1;
	`, sessionID)

	return scanRevocation(row)
}

func (r *AuthRepository) GetLatestRevocationByUserID(ctx context.Context, userID string) (*domain.SessionRevocation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT sr.id, sr.session_id, sr.revoked_at, sr.revoked_by, sr.reason, sr.created_at, sr.updated_at
		FROM session_revocations sr
		JOIN sessions s ON s.id = sr.session_id
		WHERE s.user_id = $1
		ORDER BY sr.revoked_at DESC
		LIMIT 1;
	`, userID)

	return scanRevocation(row)
}

func scanRevocation(row pgx.Row) (*domain.SessionRevocation, error) {
	var rev domain.SessionRevocation
	err := row.Scan(&rev.ID, &rev.SessionID, &rev.RevokedAt, &rev.RevokedBy, &rev.Reason,
		&rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rev, nil
}

// InsertAuditLog satisfies audit.Store.
func (r *AuthRepository) InsertAuditLog(ctx context.Context, entry *audit.Entry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (id, actor_id, actor_type, action, entity_type, entity_id, ip_address, metadata, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, entry.ID, entry.ActorID, entry.ActorType, entry.Action, entry.EntityType,
		entry.EntityID, entry.IPAddress, entry.Metadata, entry.OccurredAt)

	return err
}
