// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/pkg/models"
)

// SessionService manages conversation sessions.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a session together with its empty main branch.
// The main branch always exists — every cursor operation may assume it.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.ConversationSession, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ConversationSession.Create().
		SetID(req.SessionID).
		SetActiveBranch(models.MainBranch).
		SetCreatedAt(time.Now())
	if req.Author != "" {
		builder = builder.SetAuthor(req.Author)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	_, err = s.client.Branch.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetName(models.MainBranch).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create main branch: %w", err)
	}

	return session, nil
}

// GetSession returns a session by ID. Soft-deleted sessions are treated as
// not found unless includeDeleted is set.
func (s *SessionService) GetSession(httpCtx context.Context, sessionID string, includeDeleted bool) (*ent.ConversationSession, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	session, err := s.client.ConversationSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session.DeletedAt != nil && !includeDeleted {
		return nil, ErrNotFound
	}
	return session, nil
}

// ListSessions returns sessions newest-first with pagination.
func (s *SessionService) ListSessions(httpCtx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	query := s.client.ConversationSession.Query()
	if !filters.IncludeDeleted {
		query = query.Where(conversationsession.DeletedAtIsNil())
	}
	if filters.Author != "" {
		query = query.Where(conversationsession.AuthorEQ(filters.Author))
	}
	if filters.Search != "" {
		// Full-text match on title or any message body, backed by the GIN
		// indexes created at migration time.
		term := filters.Search
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.P(func(b *sql.Builder) {
					b.WriteString("to_tsvector('english', COALESCE(").
						Ident(sel.C(conversationsession.FieldTitle)).
						WriteString(", '')) @@ plainto_tsquery('english', ").
						Arg(term).
						WriteString(")")
				}),
				sql.P(func(b *sql.Builder) {
					b.WriteString("EXISTS (SELECT 1 FROM chat_messages m WHERE m.session_id = ").
						Ident(sel.C(conversationsession.FieldID)).
						WriteString(" AND to_tsvector('english', m.content) @@ plainto_tsquery('english', ").
						Arg(term).
						WriteString("))")
				}),
			))
		})
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := query.
		Order(ent.Desc(conversationsession.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// SetTitle stores the generated session title.
func (s *SessionService) SetTitle(httpCtx context.Context, sessionID, title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.ConversationSession.UpdateOneID(sessionID).
		SetTitle(title).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetActiveBranch moves the session's server-side write cursor.
func (s *SessionService) SetActiveBranch(httpCtx context.Context, sessionID, branchName string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.ConversationSession.UpdateOneID(sessionID).
		SetActiveBranch(branchName).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// TouchLastTurn records that a turn just completed for the session.
func (s *SessionService) TouchLastTurn(httpCtx context.Context, sessionID string, podID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ConversationSession.UpdateOneID(sessionID).
		SetLastTurnAt(time.Now())
	if podID != "" {
		builder = builder.SetPodID(podID)
	}
	err := builder.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SoftDeleteOldSessions tombstones sessions whose last turn is older than
// retentionDays. Already-deleted sessions are skipped, so the sweep is
// idempotent and safe to run from every pod.
func (s *SessionService) SoftDeleteOldSessions(httpCtx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, NewValidationError("retention_days", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.client.ConversationSession.Update().
		Where(
			conversationsession.DeletedAtIsNil(),
			conversationsession.Or(
				conversationsession.LastTurnAtLT(cutoff),
				conversationsession.And(
					conversationsession.LastTurnAtIsNil(),
					conversationsession.CreatedAtLT(cutoff),
				),
			),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old sessions: %w", err)
	}
	return count, nil
}

// SoftDeleteSession tombstones a session for the retention policy.
// The row and all its history remain readable for audit.
func (s *SessionService) SoftDeleteSession(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.ConversationSession.UpdateOneID(sessionID).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
