// Code generated by ent, DO NOT EDIT.

package branch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the branch type in the database.
	Label = "branch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "branch_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldParentBranch holds the string denoting the parent_branch field in the database.
	FieldParentBranch = "parent_branch"
	// FieldForkedFromIndex holds the string denoting the forked_from_index field in the database.
	FieldForkedFromIndex = "forked_from_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ConversationSessionFieldID holds the string denoting the ID field of the ConversationSession.
	ConversationSessionFieldID = "session_id"
	// Table holds the table name of the branch in the database.
	Table = "branches"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "branches"
	// SessionInverseTable is the table name for the ConversationSession entity.
	// It exists in this package in order to avoid circular dependency with the "conversationsession" package.
	SessionInverseTable = "conversation_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for branch fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldName,
	FieldParentBranch,
	FieldForkedFromIndex,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Branch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByParentBranch orders the results by the parent_branch field.
func ByParentBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentBranch, opts...).ToFunc()
}

// ByForkedFromIndex orders the results by the forked_from_index field.
func ByForkedFromIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForkedFromIndex, opts...).ToFunc()
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
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ConversationSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
