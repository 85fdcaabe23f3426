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
	"github.com/loomhq/loom/ent/conversationsession"
)

// BranchCreate is the builder for creating a Branch entity.
type BranchCreate struct {
	config
	mutation *BranchMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *BranchCreate) SetSessionID(v string) *BranchCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BranchCreate) SetName(v string) *BranchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParentBranch sets the "parent_branch" field.
func (_c *BranchCreate) SetParentBranch(v string) *BranchCreate {
	_c.mutation.SetParentBranch(v)
	return _c
}

// SetNillableParentBranch sets the "parent_branch" field if the given value is not nil.
func (_c *BranchCreate) SetNillableParentBranch(v *string) *BranchCreate {
	if v != nil {
		_c.SetParentBranch(*v)
	}
	return _c
}

// SetForkedFromIndex sets the "forked_from_index" field.
func (_c *BranchCreate) SetForkedFromIndex(v int) *BranchCreate {
	_c.mutation.SetForkedFromIndex(v)
	return _c
}

// SetNillableForkedFromIndex sets the "forked_from_index" field if the given value is not nil.
func (_c *BranchCreate) SetNillableForkedFromIndex(v *int) *BranchCreate {
	if v != nil {
		_c.SetForkedFromIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BranchCreate) SetCreatedAt(v time.Time) *BranchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BranchCreate) SetNillableCreatedAt(v *time.Time) *BranchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BranchCreate) SetID(v string) *BranchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ConversationSession entity.
func (_c *BranchCreate) SetSession(v *ConversationSession) *BranchCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the BranchMutation object of the builder.
func (_c *BranchCreate) Mutation() *BranchMutation {
	return _c.mutation
}

// Save creates the Branch in the database.
func (_c *BranchCreate) Save(ctx context.Context) (*Branch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BranchCreate) SaveX(ctx context.Context) *Branch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BranchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BranchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BranchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := branch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BranchCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Branch.session_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Branch.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Branch.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Branch.session"`)}
	}
	return nil
}

func (_c *BranchCreate) sqlSave(ctx context.Context) (*Branch, error) {
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
			return nil, fmt.Errorf("unexpected Branch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BranchCreate) createSpec() (*Branch, *sqlgraph.CreateSpec) {
	var (
		_node = &Branch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(branch.Table, sqlgraph.NewFieldSpec(branch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(branch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ParentBranch(); ok {
		_spec.SetField(branch.FieldParentBranch, field.TypeString, value)
		_node.ParentBranch = &value
	}
	if value, ok := _c.mutation.ForkedFromIndex(); ok {
		_spec.SetField(branch.FieldForkedFromIndex, field.TypeInt, value)
		_node.ForkedFromIndex = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(branch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branch.SessionTable,
			Columns: []string{branch.SessionColumn},
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
	return _node, _spec
}

// BranchCreateBulk is the builder for creating many Branch entities in bulk.
type BranchCreateBulk struct {
	config
	err      error
	builders []*BranchCreate
}

// Save creates the Branch entities in the database.
func (_c *BranchCreateBulk) Save(ctx context.Context) ([]*Branch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Branch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BranchMutation)
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
func (_c *BranchCreateBulk) SaveX(ctx context.Context) []*Branch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BranchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BranchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
