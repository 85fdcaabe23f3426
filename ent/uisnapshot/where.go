// Code generated by ent, DO NOT EDIT.

package uisnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomhq/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldSessionID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldMessageID, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldBranchName, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldParentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldContent, v))
}

// SnapshotIndex applies equality check predicate on the "snapshot_index" field. It's identical to SnapshotIndexEQ.
func SnapshotIndex(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldSnapshotIndex, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldMessageID, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldBranchName, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldParentID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldContainsFold(FieldContent, v))
}

// LayoutIntentEQ applies the EQ predicate on the "layout_intent" field.
func LayoutIntentEQ(v LayoutIntent) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldLayoutIntent, v))
}

// LayoutIntentNEQ applies the NEQ predicate on the "layout_intent" field.
func LayoutIntentNEQ(v LayoutIntent) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldLayoutIntent, v))
}

// LayoutIntentIn applies the In predicate on the "layout_intent" field.
func LayoutIntentIn(vs ...LayoutIntent) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldLayoutIntent, vs...))
}

// LayoutIntentNotIn applies the NotIn predicate on the "layout_intent" field.
func LayoutIntentNotIn(vs ...LayoutIntent) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldLayoutIntent, vs...))
}

// SnapshotIndexEQ applies the EQ predicate on the "snapshot_index" field.
func SnapshotIndexEQ(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldSnapshotIndex, v))
}

// SnapshotIndexNEQ applies the NEQ predicate on the "snapshot_index" field.
func SnapshotIndexNEQ(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldSnapshotIndex, v))
}

// SnapshotIndexIn applies the In predicate on the "snapshot_index" field.
func SnapshotIndexIn(vs ...int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldSnapshotIndex, vs...))
}

// SnapshotIndexNotIn applies the NotIn predicate on the "snapshot_index" field.
func SnapshotIndexNotIn(vs ...int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldSnapshotIndex, vs...))
}

// SnapshotIndexGT applies the GT predicate on the "snapshot_index" field.
func SnapshotIndexGT(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldSnapshotIndex, v))
}

// SnapshotIndexGTE applies the GTE predicate on the "snapshot_index" field.
func SnapshotIndexGTE(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldSnapshotIndex, v))
}

// SnapshotIndexLT applies the LT predicate on the "snapshot_index" field.
func SnapshotIndexLT(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldSnapshotIndex, v))
}

// SnapshotIndexLTE applies the LTE predicate on the "snapshot_index" field.
func SnapshotIndexLTE(v int) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldSnapshotIndex, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotNull(FieldMetadata))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UISnapshot {
	return predicate.UISnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.UISnapshot {
	return predicate.UISnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ConversationSession) predicate.UISnapshot {
	return predicate.UISnapshot(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.UISnapshot {
	return predicate.UISnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.ChatMessage) predicate.UISnapshot {
	return predicate.UISnapshot(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UISnapshot) predicate.UISnapshot {
	return predicate.UISnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UISnapshot) predicate.UISnapshot {
	return predicate.UISnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UISnapshot) predicate.UISnapshot {
	return predicate.UISnapshot(sql.NotPredicates(p))
}
