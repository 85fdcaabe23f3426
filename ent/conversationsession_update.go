// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomhq/loom/ent/branch"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/event"
	"github.com/loomhq/loom/ent/predicate"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// ConversationSessionUpdate is the builder for updating ConversationSession entities.
type ConversationSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationSessionMutation
}

// Where appends a list predicates to the ConversationSessionUpdate builder.
func (_u *ConversationSessionUpdate) Where(ps ...predicate.ConversationSession) *ConversationSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConversationSessionUpdate) SetTitle(v string) *ConversationSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillableTitle(v *string) *ConversationSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationSessionUpdate) ClearTitle() *ConversationSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetActiveBranch sets the "active_branch" field.
func (_u *ConversationSessionUpdate) SetActiveBranch(v string) *ConversationSessionUpdate {
	_u.mutation.SetActiveBranch(v)
	return _u
}

// SetNillableActiveBranch sets the "active_branch" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillableActiveBranch(v *string) *ConversationSessionUpdate {
	if v != nil {
		_u.SetActiveBranch(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ConversationSessionUpdate) SetAuthor(v string) *ConversationSessionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillableAuthor(v *string) *ConversationSessionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ConversationSessionUpdate) ClearAuthor() *ConversationSessionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLastTurnAt sets the "last_turn_at" field.
func (_u *ConversationSessionUpdate) SetLastTurnAt(v time.Time) *ConversationSessionUpdate {
	_u.mutation.SetLastTurnAt(v)
	return _u
}

// SetNillableLastTurnAt sets the "last_turn_at" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillableLastTurnAt(v *time.Time) *ConversationSessionUpdate {
	if v != nil {
		_u.SetLastTurnAt(*v)
	}
	return _u
}

// ClearLastTurnAt clears the value of the "last_turn_at" field.
func (_u *ConversationSessionUpdate) ClearLastTurnAt() *ConversationSessionUpdate {
	_u.mutation.ClearLastTurnAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationSessionUpdate) SetPodID(v string) *ConversationSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillablePodID(v *string) *ConversationSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationSessionUpdate) ClearPodID() *ConversationSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ConversationSessionUpdate) SetDeletedAt(v time.Time) *ConversationSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ConversationSessionUpdate) SetNillableDeletedAt(v *time.Time) *ConversationSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ConversationSessionUpdate) ClearDeletedAt() *ConversationSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ConversationSessionUpdate) AddMessageIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ConversationSessionUpdate) AddMessages(v ...*ChatMessage) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the Branch entity by IDs.
func (_u *ConversationSessionUpdate) AddBranchIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the Branch entity.
func (_u *ConversationSessionUpdate) AddBranches(v ...*Branch) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the UISnapshot entity by IDs.
func (_u *ConversationSessionUpdate) AddSnapshotIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the UISnapshot entity.
func (_u *ConversationSessionUpdate) AddSnapshots(v ...*UISnapshot) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ConversationSessionUpdate) AddEventIDs(ids ...int64) *ConversationSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ConversationSessionUpdate) AddEvents(v ...*Event) *ConversationSessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ConversationSessionMutation object of the builder.
func (_u *ConversationSessionUpdate) Mutation() *ConversationSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ConversationSessionUpdate) ClearMessages() *ConversationSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ConversationSessionUpdate) RemoveMessageIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ConversationSessionUpdate) RemoveMessages(v ...*ChatMessage) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearBranches clears all "branches" edges to the Branch entity.
func (_u *ConversationSessionUpdate) ClearBranches() *ConversationSessionUpdate {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to Branch entities by IDs.
func (_u *ConversationSessionUpdate) RemoveBranchIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to Branch entities.
func (_u *ConversationSessionUpdate) RemoveBranches(v ...*Branch) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the UISnapshot entity.
func (_u *ConversationSessionUpdate) ClearSnapshots() *ConversationSessionUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to UISnapshot entities by IDs.
func (_u *ConversationSessionUpdate) RemoveSnapshotIDs(ids ...string) *ConversationSessionUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to UISnapshot entities.
func (_u *ConversationSessionUpdate) RemoveSnapshots(v ...*UISnapshot) *ConversationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ConversationSessionUpdate) ClearEvents() *ConversationSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ConversationSessionUpdate) RemoveEventIDs(ids ...int64) *ConversationSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ConversationSessionUpdate) RemoveEvents(v ...*Event) *ConversationSessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationsession.Table, conversationsession.Columns, sqlgraph.NewFieldSpec(conversationsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversationsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversationsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveBranch(); ok {
		_spec.SetField(conversationsession.FieldActiveBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(conversationsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(conversationsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LastTurnAt(); ok {
		_spec.SetField(conversationsession.FieldLastTurnAt, field.TypeTime, value)
	}
	if _u.mutation.LastTurnAtCleared() {
		_spec.ClearField(conversationsession.FieldLastTurnAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversationsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversationsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(conversationsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(conversationsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationSessionUpdateOne is the builder for updating a single ConversationSession entity.
type ConversationSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationSessionMutation
}

// SetTitle sets the "title" field.
func (_u *ConversationSessionUpdateOne) SetTitle(v string) *ConversationSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillableTitle(v *string) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationSessionUpdateOne) ClearTitle() *ConversationSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetActiveBranch sets the "active_branch" field.
func (_u *ConversationSessionUpdateOne) SetActiveBranch(v string) *ConversationSessionUpdateOne {
	_u.mutation.SetActiveBranch(v)
	return _u
}

// SetNillableActiveBranch sets the "active_branch" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillableActiveBranch(v *string) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetActiveBranch(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ConversationSessionUpdateOne) SetAuthor(v string) *ConversationSessionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillableAuthor(v *string) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ConversationSessionUpdateOne) ClearAuthor() *ConversationSessionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLastTurnAt sets the "last_turn_at" field.
func (_u *ConversationSessionUpdateOne) SetLastTurnAt(v time.Time) *ConversationSessionUpdateOne {
	_u.mutation.SetLastTurnAt(v)
	return _u
}

// SetNillableLastTurnAt sets the "last_turn_at" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillableLastTurnAt(v *time.Time) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetLastTurnAt(*v)
	}
	return _u
}

// ClearLastTurnAt clears the value of the "last_turn_at" field.
func (_u *ConversationSessionUpdateOne) ClearLastTurnAt() *ConversationSessionUpdateOne {
	_u.mutation.ClearLastTurnAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationSessionUpdateOne) SetPodID(v string) *ConversationSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillablePodID(v *string) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationSessionUpdateOne) ClearPodID() *ConversationSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ConversationSessionUpdateOne) SetDeletedAt(v time.Time) *ConversationSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ConversationSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *ConversationSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ConversationSessionUpdateOne) ClearDeletedAt() *ConversationSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ConversationSessionUpdateOne) AddMessageIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ConversationSessionUpdateOne) AddMessages(v ...*ChatMessage) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the Branch entity by IDs.
func (_u *ConversationSessionUpdateOne) AddBranchIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the Branch entity.
func (_u *ConversationSessionUpdateOne) AddBranches(v ...*Branch) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the UISnapshot entity by IDs.
func (_u *ConversationSessionUpdateOne) AddSnapshotIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the UISnapshot entity.
func (_u *ConversationSessionUpdateOne) AddSnapshots(v ...*UISnapshot) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ConversationSessionUpdateOne) AddEventIDs(ids ...int64) *ConversationSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ConversationSessionUpdateOne) AddEvents(v ...*Event) *ConversationSessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ConversationSessionMutation object of the builder.
func (_u *ConversationSessionUpdateOne) Mutation() *ConversationSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ConversationSessionUpdateOne) ClearMessages() *ConversationSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ConversationSessionUpdateOne) RemoveMessageIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ConversationSessionUpdateOne) RemoveMessages(v ...*ChatMessage) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearBranches clears all "branches" edges to the Branch entity.
func (_u *ConversationSessionUpdateOne) ClearBranches() *ConversationSessionUpdateOne {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to Branch entities by IDs.
func (_u *ConversationSessionUpdateOne) RemoveBranchIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to Branch entities.
func (_u *ConversationSessionUpdateOne) RemoveBranches(v ...*Branch) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the UISnapshot entity.
func (_u *ConversationSessionUpdateOne) ClearSnapshots() *ConversationSessionUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to UISnapshot entities by IDs.
func (_u *ConversationSessionUpdateOne) RemoveSnapshotIDs(ids ...string) *ConversationSessionUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to UISnapshot entities.
func (_u *ConversationSessionUpdateOne) RemoveSnapshots(v ...*UISnapshot) *ConversationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ConversationSessionUpdateOne) ClearEvents() *ConversationSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ConversationSessionUpdateOne) RemoveEventIDs(ids ...int64) *ConversationSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ConversationSessionUpdateOne) RemoveEvents(v ...*Event) *ConversationSessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ConversationSessionUpdate builder.
func (_u *ConversationSessionUpdateOne) Where(ps ...predicate.ConversationSession) *ConversationSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationSessionUpdateOne) Select(field string, fields ...string) *ConversationSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationSession entity.
func (_u *ConversationSessionUpdateOne) Save(ctx context.Context) (*ConversationSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationSessionUpdateOne) SaveX(ctx context.Context) *ConversationSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationSessionUpdateOne) sqlSave(ctx context.Context) (_node *ConversationSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationsession.Table, conversationsession.Columns, sqlgraph.NewFieldSpec(conversationsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationsession.FieldID)
		for _, f := range fields {
			if !conversationsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversationsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversationsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveBranch(); ok {
		_spec.SetField(conversationsession.FieldActiveBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(conversationsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(conversationsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LastTurnAt(); ok {
		_spec.SetField(conversationsession.FieldLastTurnAt, field.TypeTime, value)
	}
	if _u.mutation.LastTurnAtCleared() {
		_spec.ClearField(conversationsession.FieldLastTurnAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversationsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversationsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(conversationsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(conversationsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.MessagesTable,
			Columns: []string{conversationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.BranchesTable,
			Columns: []string{conversationsession.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.SnapshotsTable,
			Columns: []string{conversationsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationsession.EventsTable,
			Columns: []string{conversationsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConversationSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
