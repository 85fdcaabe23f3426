// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// UISnapshotCreate is the builder for creating a UISnapshot entity.
type UISnapshotCreate struct {
	config
	mutation *UISnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *UISnapshotCreate) SetSessionID(v string) *UISnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *UISnapshotCreate) SetMessageID(v string) *UISnapshotCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *UISnapshotCreate) SetBranchName(v string) *UISnapshotCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *UISnapshotCreate) SetParentID(v string) *UISnapshotCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *UISnapshotCreate) SetNillableParentID(v *string) *UISnapshotCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *UISnapshotCreate) SetContent(v string) *UISnapshotCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetLayoutIntent sets the "layout_intent" field.
func (_c *UISnapshotCreate) SetLayoutIntent(v uisnapshot.LayoutIntent) *UISnapshotCreate {
	_c.mutation.SetLayoutIntent(v)
	return _c
}

// SetNillableLayoutIntent sets the "layout_intent" field if the given value is not nil.
func (_c *UISnapshotCreate) SetNillableLayoutIntent(v *uisnapshot.LayoutIntent) *UISnapshotCreate {
	if v != nil {
		_c.SetLayoutIntent(*v)
	}
	return _c
}

// SetSnapshotIndex sets the "snapshot_index" field.
func (_c *UISnapshotCreate) SetSnapshotIndex(v int) *UISnapshotCreate {
	_c.mutation.SetSnapshotIndex(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *UISnapshotCreate) SetMetadata(v map[string]interface{}) *UISnapshotCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UISnapshotCreate) SetIsActive(v bool) *UISnapshotCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UISnapshotCreate) SetNillableIsActive(v *bool) *UISnapshotCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UISnapshotCreate) SetCreatedAt(v time.Time) *UISnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UISnapshotCreate) SetNillableCreatedAt(v *time.Time) *UISnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UISnapshotCreate) SetID(v string) *UISnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ConversationSession entity.
func (_c *UISnapshotCreate) SetSession(v *ConversationSession) *UISnapshotCreate {
	return _c.SetSessionID(v.ID)
}

// SetMessage sets the "message" edge to the ChatMessage entity.
func (_c *UISnapshotCreate) SetMessage(v *ChatMessage) *UISnapshotCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the UISnapshotMutation object of the builder.
func (_c *UISnapshotCreate) Mutation() *UISnapshotMutation {
	return _c.mutation
}

// Save creates the UISnapshot in the database.
func (_c *UISnapshotCreate) Save(ctx context.Context) (*UISnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UISnapshotCreate) SaveX(ctx context.Context) *UISnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UISnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UISnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UISnapshotCreate) defaults() {
	if _, ok := _c.mutation.LayoutIntent(); !ok {
		v := uisnapshot.DefaultLayoutIntent
		_c.mutation.SetLayoutIntent(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := uisnapshot.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uisnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UISnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "UISnapshot.session_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "UISnapshot.message_id"`)}
	}
	if _, ok := _c.mutation.BranchName(); !ok {
		return &ValidationError{Name: "branch_name", err: errors.New(`ent: missing required field "UISnapshot.branch_name"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "UISnapshot.content"`)}
	}
	if _, ok := _c.mutation.LayoutIntent(); !ok {
		return &ValidationError{Name: "layout_intent", err: errors.New(`ent: missing required field "UISnapshot.layout_intent"`)}
	}
	if v, ok := _c.mutation.LayoutIntent(); ok {
		if err := uisnapshot.LayoutIntentValidator(v); err != nil {
			return &ValidationError{Name: "layout_intent", err: fmt.Errorf(`ent: validator failed for field "UISnapshot.layout_intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SnapshotIndex(); !ok {
		return &ValidationError{Name: "snapshot_index", err: errors.New(`ent: missing required field "UISnapshot.snapshot_index"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "UISnapshot.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UISnapshot.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "UISnapshot.session"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "UISnapshot.message"`)}
	}
	return nil
}

func (_c *UISnapshotCreate) sqlSave(ctx context.Context) (*UISnapshot, error) {
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
			return nil, fmt.Errorf("unexpected UISnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UISnapshotCreate) createSpec() (*UISnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &UISnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uisnapshot.Table, sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(uisnapshot.FieldBranchName, field.TypeString, value)
		_node.BranchName = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(uisnapshot.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(uisnapshot.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.LayoutIntent(); ok {
		_spec.SetField(uisnapshot.FieldLayoutIntent, field.TypeEnum, value)
		_node.LayoutIntent = value
	}
	if value, ok := _c.mutation.SnapshotIndex(); ok {
		_spec.SetField(uisnapshot.FieldSnapshotIndex, field.TypeInt, value)
		_node.SnapshotIndex = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(uisnapshot.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(uisnapshot.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uisnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uisnapshot.SessionTable,
			Columns: []string{uisnapshot.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uisnapshot.MessageTable,
			Columns: []string{uisnapshot.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UISnapshotCreateBulk is the builder for creating many UISnapshot entities in bulk.
type UISnapshotCreateBulk struct {
	config
	err      error
	builders []*UISnapshotCreate
}

// Save creates the UISnapshot entities in the database.
func (_c *UISnapshotCreateBulk) Save(ctx context.Context) ([]*UISnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UISnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UISnapshotMutation)
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
func (_c *UISnapshotCreateBulk) SaveX(ctx context.Context) []*UISnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UISnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UISnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
