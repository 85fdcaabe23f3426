// Code generated by ent, DO NOT EDIT.

package uisnapshot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the uisnapshot type in the database.
	Label = "ui_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "snapshot_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldLayoutIntent holds the string denoting the layout_intent field in the database.
	FieldLayoutIntent = "layout_intent"
	// FieldSnapshotIndex holds the string denoting the snapshot_index field in the database.
	FieldSnapshotIndex = "snapshot_index"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeMessage holds the string denoting the message edge name in mutations.
	EdgeMessage = "message"
	// ConversationSessionFieldID holds the string denoting the ID field of the ConversationSession.
	ConversationSessionFieldID = "session_id"
	// ChatMessageFieldID holds the string denoting the ID field of the ChatMessage.
	ChatMessageFieldID = "message_id"
	// Table holds the table name of the uisnapshot in the database.
	Table = "ui_snapshots"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "ui_snapshots"
	// SessionInverseTable is the table name for the ConversationSession entity.
	// It exists in this package in order to avoid circular dependency with the "conversationsession" package.
	SessionInverseTable = "conversation_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// MessageTable is the table that holds the message relation/edge.
	MessageTable = "ui_snapshots"
	// MessageInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessageInverseTable = "chat_messages"
	// MessageColumn is the table column denoting the message relation/edge.
	MessageColumn = "message_id"
)

// Columns holds all SQL columns for uisnapshot fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldMessageID,
	FieldBranchName,
	FieldParentID,
	FieldContent,
	FieldLayoutIntent,
	FieldSnapshotIndex,
	FieldMetadata,
	FieldIsActive,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LayoutIntent defines the type for the "layout_intent" enum field.
type LayoutIntent string

// LayoutIntentPreview is the default value of the LayoutIntent enum.
const DefaultLayoutIntent = LayoutIntentPreview

// LayoutIntent values.
const (
	LayoutIntentFull     LayoutIntent = "full"
	LayoutIntentExtended LayoutIntent = "extended"
	LayoutIntentPreview  LayoutIntent = "preview"
	LayoutIntentHidden   LayoutIntent = "hidden"
)

func (li LayoutIntent) String() string {
	return string(li)
}

// LayoutIntentValidator is a validator for the "layout_intent" field enum values. It is called by the builders before save.
func LayoutIntentValidator(li LayoutIntent) error {
	switch li {
	case LayoutIntentFull, LayoutIntentExtended, LayoutIntentPreview, LayoutIntentHidden:
		return nil
	default:
		return fmt.Errorf("uisnapshot: invalid enum value for layout_intent field: %q", li)
	}
}

// OrderOption defines the ordering options for the UISnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByLayoutIntent orders the results by the layout_intent field.
func ByLayoutIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayoutIntent, opts...).ToFunc()
}

// BySnapshotIndex orders the results by the snapshot_index field.
func BySnapshotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotIndex, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessageField orders the results by message field.
func ByMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ConversationSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageInverseTable, ChatMessageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
	)
}
