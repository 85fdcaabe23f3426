// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomhq/loom/ent/predicate"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// UISnapshotUpdate is the builder for updating UISnapshot entities.
type UISnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *UISnapshotMutation
}

// Where appends a list predicates to the UISnapshotUpdate builder.
func (_u *UISnapshotUpdate) Where(ps ...predicate.UISnapshot) *UISnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *UISnapshotUpdate) SetContent(v string) *UISnapshotUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *UISnapshotUpdate) SetNillableContent(v *string) *UISnapshotUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLayoutIntent sets the "layout_intent" field.
func (_u *UISnapshotUpdate) SetLayoutIntent(v uisnapshot.LayoutIntent) *UISnapshotUpdate {
	_u.mutation.SetLayoutIntent(v)
	return _u
}

// SetNillableLayoutIntent sets the "layout_intent" field if the given value is not nil.
func (_u *UISnapshotUpdate) SetNillableLayoutIntent(v *uisnapshot.LayoutIntent) *UISnapshotUpdate {
	if v != nil {
		_u.SetLayoutIntent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UISnapshotUpdate) SetMetadata(v map[string]interface{}) *UISnapshotUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UISnapshotUpdate) ClearMetadata() *UISnapshotUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UISnapshotUpdate) SetIsActive(v bool) *UISnapshotUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UISnapshotUpdate) SetNillableIsActive(v *bool) *UISnapshotUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UISnapshotMutation object of the builder.
func (_u *UISnapshotUpdate) Mutation() *UISnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UISnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UISnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UISnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UISnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UISnapshotUpdate) check() error {
	if v, ok := _u.mutation.LayoutIntent(); ok {
		if err := uisnapshot.LayoutIntentValidator(v); err != nil {
			return &ValidationError{Name: "layout_intent", err: fmt.Errorf(`ent: validator failed for field "UISnapshot.layout_intent": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UISnapshot.session"`)
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UISnapshot.message"`)
	}
	return nil
}

func (_u *UISnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uisnapshot.Table, uisnapshot.Columns, sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(uisnapshot.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(uisnapshot.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.LayoutIntent(); ok {
		_spec.SetField(uisnapshot.FieldLayoutIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(uisnapshot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(uisnapshot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(uisnapshot.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uisnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UISnapshotUpdateOne is the builder for updating a single UISnapshot entity.
type UISnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UISnapshotMutation
}

// SetContent sets the "content" field.
func (_u *UISnapshotUpdateOne) SetContent(v string) *UISnapshotUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *UISnapshotUpdateOne) SetNillableContent(v *string) *UISnapshotUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLayoutIntent sets the "layout_intent" field.
func (_u *UISnapshotUpdateOne) SetLayoutIntent(v uisnapshot.LayoutIntent) *UISnapshotUpdateOne {
	_u.mutation.SetLayoutIntent(v)
	return _u
}

// SetNillableLayoutIntent sets the "layout_intent" field if the given value is not nil.
func (_u *UISnapshotUpdateOne) SetNillableLayoutIntent(v *uisnapshot.LayoutIntent) *UISnapshotUpdateOne {
	if v != nil {
		_u.SetLayoutIntent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UISnapshotUpdateOne) SetMetadata(v map[string]interface{}) *UISnapshotUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UISnapshotUpdateOne) ClearMetadata() *UISnapshotUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UISnapshotUpdateOne) SetIsActive(v bool) *UISnapshotUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UISnapshotUpdateOne) SetNillableIsActive(v *bool) *UISnapshotUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UISnapshotMutation object of the builder.
func (_u *UISnapshotUpdateOne) Mutation() *UISnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the UISnapshotUpdate builder.
func (_u *UISnapshotUpdateOne) Where(ps ...predicate.UISnapshot) *UISnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UISnapshotUpdateOne) Select(field string, fields ...string) *UISnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UISnapshot entity.
func (_u *UISnapshotUpdateOne) Save(ctx context.Context) (*UISnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UISnapshotUpdateOne) SaveX(ctx context.Context) *UISnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UISnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UISnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UISnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.LayoutIntent(); ok {
		if err := uisnapshot.LayoutIntentValidator(v); err != nil {
			return &ValidationError{Name: "layout_intent", err: fmt.Errorf(`ent: validator failed for field "UISnapshot.layout_intent": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UISnapshot.session"`)
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UISnapshot.message"`)
	}
	return nil
}

func (_u *UISnapshotUpdateOne) sqlSave(ctx context.Context) (_node *UISnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uisnapshot.Table, uisnapshot.Columns, sqlgraph.NewFieldSpec(uisnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UISnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uisnapshot.FieldID)
		for _, f := range fields {
			if !uisnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uisnapshot.FieldID {
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
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(uisnapshot.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(uisnapshot.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.LayoutIntent(); ok {
		_spec.SetField(uisnapshot.FieldLayoutIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(uisnapshot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(uisnapshot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(uisnapshot.FieldIsActive, field.TypeBool, value)
	}
	_node = &UISnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uisnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
