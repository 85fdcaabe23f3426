// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// UISnapshot is the model entity for the UISnapshot schema.
type UISnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// User turn this snapshot answers
	MessageID string `json:"message_id,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName string `json:"branch_name,omitempty"`
	// Previous snapshot on the same lineage (nil for branch root)
	ParentID *string `json:"parent_id,omitempty"`
	// Serialized UI document as flushed in ui_complete
	Content string `json:"content,omitempty"`
	// LayoutIntent holds the value of the "layout_intent" field.
	LayoutIntent uisnapshot.LayoutIntent `json:"layout_intent,omitempty"`
	// Zero-based, contiguous per branch
	SnapshotIndex int `json:"snapshot_index,omitempty"`
	// Merge action applied, summary text, tool calls used
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// False once a fork supersedes this snapshot
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UISnapshotQuery when eager-loading is set.
	Edges        UISnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UISnapshotEdges holds the relations/edges for other nodes in the graph.
type UISnapshotEdges struct {
	// Session holds the value of the session edge.
	Session *ConversationSession `json:"session,omitempty"`
	// Message holds the value of the message edge.
	Message *ChatMessage `json:"message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UISnapshotEdges) SessionOrErr() (*ConversationSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversationsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UISnapshotEdges) MessageOrErr() (*ChatMessage, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: chatmessage.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UISnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uisnapshot.FieldMetadata:
			values[i] = new([]byte)
		case uisnapshot.FieldIsActive:
			values[i] = new(sql.NullBool)
		case uisnapshot.FieldSnapshotIndex:
			values[i] = new(sql.NullInt64)
		case uisnapshot.FieldID, uisnapshot.FieldSessionID, uisnapshot.FieldMessageID, uisnapshot.FieldBranchName, uisnapshot.FieldParentID, uisnapshot.FieldContent, uisnapshot.FieldLayoutIntent:
			values[i] = new(sql.NullString)
		case uisnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UISnapshot fields.
func (_m *UISnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uisnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case uisnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case uisnapshot.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case uisnapshot.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = value.String
			}
		case uisnapshot.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case uisnapshot.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case uisnapshot.FieldLayoutIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout_intent", values[i])
			} else if value.Valid {
				_m.LayoutIntent = uisnapshot.LayoutIntent(value.String)
			}
		case uisnapshot.FieldSnapshotIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_index", values[i])
			} else if value.Valid {
				_m.SnapshotIndex = int(value.Int64)
			}
		case uisnapshot.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case uisnapshot.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case uisnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UISnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *UISnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the UISnapshot entity.
func (_m *UISnapshot) QuerySession() *ConversationSessionQuery {
	return NewUISnapshotClient(_m.config).QuerySession(_m)
}

// QueryMessage queries the "message" edge of the UISnapshot entity.
func (_m *UISnapshot) QueryMessage() *ChatMessageQuery {
	return NewUISnapshotClient(_m.config).QueryMessage(_m)
}

// Update returns a builder for updating this UISnapshot.
// Note that you need to call UISnapshot.Unwrap() before calling this method if this UISnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UISnapshot) Update() *UISnapshotUpdateOne {
	return NewUISnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UISnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UISnapshot) Unwrap() *UISnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UISnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UISnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("UISnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("branch_name=")
	builder.WriteString(_m.BranchName)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("layout_intent=")
	builder.WriteString(fmt.Sprintf("%v", _m.LayoutIntent))
	builder.WriteString(", ")
	builder.WriteString("snapshot_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnapshotIndex))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UISnapshots is a parsable slice of UISnapshot.
type UISnapshots []*UISnapshot
