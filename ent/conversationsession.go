// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomhq/loom/ent/conversationsession"
)

// ConversationSession is the model entity for the ConversationSession schema.
type ConversationSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Generated after the first completed turn
	Title *string `json:"title,omitempty"`
	// Branch the server-side write cursor currently appends to
	ActiveBranch string `json:"active_branch,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the most recent turn completed
	LastTurnAt *time.Time `json:"last_turn_at,omitempty"`
	// For multi-replica coordination and orphan recovery
	PodID *string `json:"pod_id,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationSessionQuery when eager-loading is set.
	Edges        ConversationSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationSessionEdges holds the relations/edges for other nodes in the graph.
type ConversationSessionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// Branches holds the value of the branches edge.
	Branches []*Branch `json:"branches,omitempty"`
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*UISnapshot `json:"snapshots,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationSessionEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// BranchesOrErr returns the Branches value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationSessionEdges) BranchesOrErr() ([]*Branch, error) {
	if e.loadedTypes[1] {
		return e.Branches, nil
	}
	return nil, &NotLoadedError{edge: "branches"}
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationSessionEdges) SnapshotsOrErr() ([]*UISnapshot, error) {
	if e.loadedTypes[2] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationSessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationsession.FieldID, conversationsession.FieldTitle, conversationsession.FieldActiveBranch, conversationsession.FieldAuthor, conversationsession.FieldPodID:
			values[i] = new(sql.NullString)
		case conversationsession.FieldCreatedAt, conversationsession.FieldLastTurnAt, conversationsession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationSession fields.
func (_m *ConversationSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationsession.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case conversationsession.FieldActiveBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_branch", values[i])
			} else if value.Valid {
				_m.ActiveBranch = value.String
			}
		case conversationsession.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case conversationsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversationsession.FieldLastTurnAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_turn_at", values[i])
			} else if value.Valid {
				_m.LastTurnAt = new(time.Time)
				*_m.LastTurnAt = value.Time
			}
		case conversationsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case conversationsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationSession.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the ConversationSession entity.
func (_m *ConversationSession) QueryMessages() *ChatMessageQuery {
	return NewConversationSessionClient(_m.config).QueryMessages(_m)
}

// QueryBranches queries the "branches" edge of the ConversationSession entity.
func (_m *ConversationSession) QueryBranches() *BranchQuery {
	return NewConversationSessionClient(_m.config).QueryBranches(_m)
}

// QuerySnapshots queries the "snapshots" edge of the ConversationSession entity.
func (_m *ConversationSession) QuerySnapshots() *UISnapshotQuery {
	return NewConversationSessionClient(_m.config).QuerySnapshots(_m)
}

// QueryEvents queries the "events" edge of the ConversationSession entity.
func (_m *ConversationSession) QueryEvents() *EventQuery {
	return NewConversationSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ConversationSession.
// Note that you need to call ConversationSession.Unwrap() before calling this method if this ConversationSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationSession) Update() *ConversationSessionUpdateOne {
	return NewConversationSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationSession) Unwrap() *ConversationSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationSession) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("active_branch=")
	builder.WriteString(_m.ActiveBranch)
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastTurnAt; v != nil {
		builder.WriteString("last_turn_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConversationSessions is a parsable slice of ConversationSession.
type ConversationSessions []*ConversationSession
