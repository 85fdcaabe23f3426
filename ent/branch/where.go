// Code generated by ent, DO NOT EDIT.

package branch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomhq/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Branch {
	return predicate.Branch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Branch {
	return predicate.Branch(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldSessionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldName, v))
}

// ParentBranch applies equality check predicate on the "parent_branch" field. It's identical to ParentBranchEQ.
func ParentBranch(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldParentBranch, v))
}

// ForkedFromIndex applies equality check predicate on the "forked_from_index" field. It's identical to ForkedFromIndexEQ.
func ForkedFromIndex(v int) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldForkedFromIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContainsFold(FieldSessionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContainsFold(FieldName, v))
}

// ParentBranchEQ applies the EQ predicate on the "parent_branch" field.
func ParentBranchEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldParentBranch, v))
}

// ParentBranchNEQ applies the NEQ predicate on the "parent_branch" field.
func ParentBranchNEQ(v string) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldParentBranch, v))
}

// ParentBranchIn applies the In predicate on the "parent_branch" field.
func ParentBranchIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldParentBranch, vs...))
}

// ParentBranchNotIn applies the NotIn predicate on the "parent_branch" field.
func ParentBranchNotIn(vs ...string) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldParentBranch, vs...))
}

// ParentBranchGT applies the GT predicate on the "parent_branch" field.
func ParentBranchGT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldParentBranch, v))
}

// ParentBranchGTE applies the GTE predicate on the "parent_branch" field.
func ParentBranchGTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldParentBranch, v))
}

// ParentBranchLT applies the LT predicate on the "parent_branch" field.
func ParentBranchLT(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldParentBranch, v))
}

// ParentBranchLTE applies the LTE predicate on the "parent_branch" field.
func ParentBranchLTE(v string) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldParentBranch, v))
}

// ParentBranchContains applies the Contains predicate on the "parent_branch" field.
func ParentBranchContains(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContains(FieldParentBranch, v))
}

// ParentBranchHasPrefix applies the HasPrefix predicate on the "parent_branch" field.
func ParentBranchHasPrefix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasPrefix(FieldParentBranch, v))
}

// ParentBranchHasSuffix applies the HasSuffix predicate on the "parent_branch" field.
func ParentBranchHasSuffix(v string) predicate.Branch {
	return predicate.Branch(sql.FieldHasSuffix(FieldParentBranch, v))
}

// ParentBranchIsNil applies the IsNil predicate on the "parent_branch" field.
func ParentBranchIsNil() predicate.Branch {
	return predicate.Branch(sql.FieldIsNull(FieldParentBranch))
}

// ParentBranchNotNil applies the NotNil predicate on the "parent_branch" field.
func ParentBranchNotNil() predicate.Branch {
	return predicate.Branch(sql.FieldNotNull(FieldParentBranch))
}

// ParentBranchEqualFold applies the EqualFold predicate on the "parent_branch" field.
func ParentBranchEqualFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldEqualFold(FieldParentBranch, v))
}

// ParentBranchContainsFold applies the ContainsFold predicate on the "parent_branch" field.
func ParentBranchContainsFold(v string) predicate.Branch {
	return predicate.Branch(sql.FieldContainsFold(FieldParentBranch, v))
}

// ForkedFromIndexEQ applies the EQ predicate on the "forked_from_index" field.
func ForkedFromIndexEQ(v int) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldForkedFromIndex, v))
}

// ForkedFromIndexNEQ applies the NEQ predicate on the "forked_from_index" field.
func ForkedFromIndexNEQ(v int) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldForkedFromIndex, v))
}

// ForkedFromIndexIn applies the In predicate on the "forked_from_index" field.
func ForkedFromIndexIn(vs ...int) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldForkedFromIndex, vs...))
}

// ForkedFromIndexNotIn applies the NotIn predicate on the "forked_from_index" field.
func ForkedFromIndexNotIn(vs ...int) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldForkedFromIndex, vs...))
}

// ForkedFromIndexGT applies the GT predicate on the "forked_from_index" field.
func ForkedFromIndexGT(v int) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldForkedFromIndex, v))
}

// ForkedFromIndexGTE applies the GTE predicate on the "forked_from_index" field.
func ForkedFromIndexGTE(v int) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldForkedFromIndex, v))
}

// ForkedFromIndexLT applies the LT predicate on the "forked_from_index" field.
func ForkedFromIndexLT(v int) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldForkedFromIndex, v))
}

// ForkedFromIndexLTE applies the LTE predicate on the "forked_from_index" field.
func ForkedFromIndexLTE(v int) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldForkedFromIndex, v))
}

// ForkedFromIndexIsNil applies the IsNil predicate on the "forked_from_index" field.
func ForkedFromIndexIsNil() predicate.Branch {
	return predicate.Branch(sql.FieldIsNull(FieldForkedFromIndex))
}

// ForkedFromIndexNotNil applies the NotNil predicate on the "forked_from_index" field.
func ForkedFromIndexNotNil() predicate.Branch {
	return predicate.Branch(sql.FieldNotNull(FieldForkedFromIndex))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Branch {
	return predicate.Branch(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Branch {
	return predicate.Branch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ConversationSession) predicate.Branch {
	return predicate.Branch(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Branch) predicate.Branch {
	return predicate.Branch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Branch) predicate.Branch {
	return predicate.Branch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Branch) predicate.Branch {
	return predicate.Branch(sql.NotPredicates(p))
}
