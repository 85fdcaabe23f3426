// Code generated by ent, DO NOT EDIT.

package conversationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomhq/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldTitle, v))
}

// ActiveBranch applies equality check predicate on the "active_branch" field. It's identical to ActiveBranchEQ.
func ActiveBranch(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldActiveBranch, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldAuthor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// LastTurnAt applies equality check predicate on the "last_turn_at" field. It's identical to LastTurnAtEQ.
func LastTurnAt(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldLastTurnAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldPodID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldDeletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContainsFold(FieldTitle, v))
}

// ActiveBranchEQ applies the EQ predicate on the "active_branch" field.
func ActiveBranchEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldActiveBranch, v))
}

// ActiveBranchNEQ applies the NEQ predicate on the "active_branch" field.
func ActiveBranchNEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldActiveBranch, v))
}

// ActiveBranchIn applies the In predicate on the "active_branch" field.
func ActiveBranchIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldActiveBranch, vs...))
}

// ActiveBranchNotIn applies the NotIn predicate on the "active_branch" field.
func ActiveBranchNotIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldActiveBranch, vs...))
}

// ActiveBranchGT applies the GT predicate on the "active_branch" field.
func ActiveBranchGT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldActiveBranch, v))
}

// ActiveBranchGTE applies the GTE predicate on the "active_branch" field.
func ActiveBranchGTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldActiveBranch, v))
}

// ActiveBranchLT applies the LT predicate on the "active_branch" field.
func ActiveBranchLT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldActiveBranch, v))
}

// ActiveBranchLTE applies the LTE predicate on the "active_branch" field.
func ActiveBranchLTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldActiveBranch, v))
}

// ActiveBranchContains applies the Contains predicate on the "active_branch" field.
func ActiveBranchContains(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContains(FieldActiveBranch, v))
}

// ActiveBranchHasPrefix applies the HasPrefix predicate on the "active_branch" field.
func ActiveBranchHasPrefix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasPrefix(FieldActiveBranch, v))
}

// ActiveBranchHasSuffix applies the HasSuffix predicate on the "active_branch" field.
func ActiveBranchHasSuffix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasSuffix(FieldActiveBranch, v))
}

// ActiveBranchEqualFold applies the EqualFold predicate on the "active_branch" field.
func ActiveBranchEqualFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEqualFold(FieldActiveBranch, v))
}

// ActiveBranchContainsFold applies the ContainsFold predicate on the "active_branch" field.
func ActiveBranchContainsFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContainsFold(FieldActiveBranch, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContainsFold(FieldAuthor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldCreatedAt, v))
}

// LastTurnAtEQ applies the EQ predicate on the "last_turn_at" field.
func LastTurnAtEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldLastTurnAt, v))
}

// LastTurnAtNEQ applies the NEQ predicate on the "last_turn_at" field.
func LastTurnAtNEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldLastTurnAt, v))
}

// LastTurnAtIn applies the In predicate on the "last_turn_at" field.
func LastTurnAtIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldLastTurnAt, vs...))
}

// LastTurnAtNotIn applies the NotIn predicate on the "last_turn_at" field.
func LastTurnAtNotIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldLastTurnAt, vs...))
}

// LastTurnAtGT applies the GT predicate on the "last_turn_at" field.
func LastTurnAtGT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldLastTurnAt, v))
}

// LastTurnAtGTE applies the GTE predicate on the "last_turn_at" field.
func LastTurnAtGTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldLastTurnAt, v))
}

// LastTurnAtLT applies the LT predicate on the "last_turn_at" field.
func LastTurnAtLT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldLastTurnAt, v))
}

// LastTurnAtLTE applies the LTE predicate on the "last_turn_at" field.
func LastTurnAtLTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldLastTurnAt, v))
}

// LastTurnAtIsNil applies the IsNil predicate on the "last_turn_at" field.
func LastTurnAtIsNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIsNull(FieldLastTurnAt))
}

// LastTurnAtNotNil applies the NotNil predicate on the "last_turn_at" field.
func LastTurnAtNotNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotNull(FieldLastTurnAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldContainsFold(FieldPodID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ConversationSession {
	return predicate.ConversationSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBranches applies the HasEdge predicate on the "branches" edge.
func HasBranches() predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BranchesTable, BranchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchesWith applies the HasEdge predicate on the "branches" edge with a given conditions (other predicates).
func HasBranchesWith(preds ...predicate.Branch) predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := newBranchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.UISnapshot) predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.ConversationSession {
	return predicate.ConversationSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationSession) predicate.ConversationSession {
	return predicate.ConversationSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationSession) predicate.ConversationSession {
	return predicate.ConversationSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationSession) predicate.ConversationSession {
	return predicate.ConversationSession(sql.NotPredicates(p))
}
