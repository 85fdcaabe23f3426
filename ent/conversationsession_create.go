// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomhq/loom/ent/branch"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/event"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// ConversationSessionCreate is the builder for creating a ConversationSession entity.
type ConversationSessionCreate struct {
	config
	mutation *ConversationSessionMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ConversationSessionCreate) SetTitle(v string) *ConversationSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableTitle(v *string) *ConversationSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetActiveBranch sets the "active_branch" field.
func (_c *ConversationSessionCreate) SetActiveBranch(v string) *ConversationSessionCreate {
	_c.mutation.SetActiveBranch(v)
	return _c
}

// SetNillableActiveBranch sets the "active_branch" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableActiveBranch(v *string) *ConversationSessionCreate {
	if v != nil {
		_c.SetActiveBranch(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ConversationSessionCreate) SetAuthor(v string) *ConversationSessionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableAuthor(v *string) *ConversationSessionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationSessionCreate) SetCreatedAt(v time.Time) *ConversationSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableCreatedAt(v *time.Time) *ConversationSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastTurnAt sets the "last_turn_at" field.
func (_c *ConversationSessionCreate) SetLastTurnAt(v time.Time) *ConversationSessionCreate {
	_c.mutation.SetLastTurnAt(v)
	return _c
}

// SetNillableLastTurnAt sets the "last_turn_at" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableLastTurnAt(v *time.Time) *ConversationSessionCreate {
	if v != nil {
		_c.SetLastTurnAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ConversationSessionCreate) SetPodID(v string) *ConversationSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillablePodID(v *string) *ConversationSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ConversationSessionCreate) SetDeletedAt(v time.Time) *ConversationSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ConversationSessionCreate) SetNillableDeletedAt(v *time.Time) *ConversationSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationSessionCreate) SetID(v string) *ConversationSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_c *ConversationSessionCreate) AddMessageIDs(ids ...string) *ConversationSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_c *ConversationSessionCreate) AddMessages(v ...*ChatMessage) *ConversationSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the Branch entity by IDs.
func (_c *ConversationSessionCreate) AddBranchIDs(ids ...string) *ConversationSessionCreate {
	_c.mutation.AddBranchIDs(ids...)
	return _c
}

// AddBranches adds the "branches" edges to the Branch entity.
func (_c *ConversationSessionCreate) AddBranches(v ...*Branch) *ConversationSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBranchIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the UISnapshot entity by IDs.
func (_c *ConversationSessionCreate) AddSnapshotIDs(ids ...string) *ConversationSessionCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the UISnapshot entity.
func (_c *ConversationSessionCreate) AddSnapshots(v ...*UISnapshot) *ConversationSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ConversationSessionCreate) AddEventIDs(ids ...int64) *ConversationSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ConversationSessionCreate) AddEvents(v ...*Event) *ConversationSessionCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ConversationSessionMutation object of the builder.
func (_c *ConversationSessionCreate) Mutation() *ConversationSessionMutation {
	return _c.mutation
}

// Save creates the ConversationSession in the database.
func (_c *ConversationSessionCreate) Save(ctx context.Context) (*ConversationSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationSessionCreate) SaveX(ctx context.Context) *ConversationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationSessionCreate) defaults() {
	if _, ok := _c.mutation.ActiveBranch(); !ok {
		v := conversationsession.DefaultActiveBranch
		_c.mutation.SetActiveBranch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationSessionCreate) check() error {
	if _, ok := _c.mutation.ActiveBranch(); !ok {
		return &ValidationError{Name: "active_branch", err: errors.New(`ent: missing required field "ConversationSession.active_branch"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationSession.created_at"`)}
	}
	return nil
}

func (_c *ConversationSessionCreate) sqlSave(ctx context.Context) (*ConversationSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ConversationSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationSessionCreate) createSpec() (*ConversationSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationsession.Table, sqlgraph.NewFieldSpec(conversationsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(conversationsession.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.ActiveBranch(); ok {
		_spec.SetField(conversationsession.FieldActiveBranch, field.TypeString, value)
		_node.ActiveBranch = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(conversationsession.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastTurnAt(); ok {
		_spec.SetField(conversationsession.FieldLastTurnAt, field.TypeTime, value)
		_node.LastTurnAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(conversationsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(conversationsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BranchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationSessionCreateBulk is the builder for creating many ConversationSession entities in bulk.
type ConversationSessionCreateBulk struct {
	config
	err      error
	builders []*ConversationSessionCreate
}

// Save creates the ConversationSession entities in the database.
func (_c *ConversationSessionCreateBulk) Save(ctx context.Context) ([]*ConversationSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConversationSessionCreateBulk) SaveX(ctx context.Context) []*ConversationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
