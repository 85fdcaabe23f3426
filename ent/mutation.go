// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomhq/loom/ent/branch"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/event"
	"github.com/loomhq/loom/ent/predicate"
	"github.com/loomhq/loom/ent/uisnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBranch              = "Branch"
	TypeChatMessage         = "ChatMessage"
	TypeConversationSession = "ConversationSession"
	TypeEvent               = "Event"
	TypeUISnapshot          = "UISnapshot"
)

// BranchMutation represents an operation that mutates the Branch nodes in the graph.
type BranchMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	parent_branch        *string
	forked_from_index    *int
	addforked_from_index *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	done                 bool
	oldValue             func(context.Context) (*Branch, error)
	predicates           []predicate.Branch
}

var _ ent.Mutation = (*BranchMutation)(nil)

// branchOption allows management of the mutation configuration using functional options.
type branchOption func(*BranchMutation)

// newBranchMutation creates new mutation for the Branch entity.
func newBranchMutation(c config, op Op, opts ...branchOption) *BranchMutation {
	m := &BranchMutation{
		config:        c,
		op:            op,
		typ:           TypeBranch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBranchID sets the ID field of the mutation.
func withBranchID(id string) branchOption {
	return func(m *BranchMutation) {
		var (
			err   error
			once  sync.Once
			value *Branch
		)
		m.oldValue = func(ctx context.Context) (*Branch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Branch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBranch sets the old Branch of the mutation.
func withBranch(node *Branch) branchOption {
	return func(m *BranchMutation) {
		m.oldValue = func(context.Context) (*Branch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BranchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BranchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Branch entities.
func (m *BranchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BranchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BranchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Branch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *BranchMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BranchMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BranchMutation) ResetSessionID() {
	m.session = nil
}

// SetName sets the "name" field.
func (m *BranchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BranchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BranchMutation) ResetName() {
	m.name = nil
}

// SetParentBranch sets the "parent_branch" field.
func (m *BranchMutation) SetParentBranch(s string) {
	m.parent_branch = &s
}

// ParentBranch returns the value of the "parent_branch" field in the mutation.
func (m *BranchMutation) ParentBranch() (r string, exists bool) {
	v := m.parent_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldParentBranch returns the old "parent_branch" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldParentBranch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentBranch: %w", err)
	}
	return oldValue.ParentBranch, nil
}

// ClearParentBranch clears the value of the "parent_branch" field.
func (m *BranchMutation) ClearParentBranch() {
	m.parent_branch = nil
	m.clearedFields[branch.FieldParentBranch] = struct{}{}
}

// ParentBranchCleared returns if the "parent_branch" field was cleared in this mutation.
func (m *BranchMutation) ParentBranchCleared() bool {
	_, ok := m.clearedFields[branch.FieldParentBranch]
	return ok
}

// ResetParentBranch resets all changes to the "parent_branch" field.
func (m *BranchMutation) ResetParentBranch() {
	m.parent_branch = nil
	delete(m.clearedFields, branch.FieldParentBranch)
}

// SetForkedFromIndex sets the "forked_from_index" field.
func (m *BranchMutation) SetForkedFromIndex(i int) {
	m.forked_from_index = &i
	m.addforked_from_index = nil
}

// ForkedFromIndex returns the value of the "forked_from_index" field in the mutation.
func (m *BranchMutation) ForkedFromIndex() (r int, exists bool) {
	v := m.forked_from_index
	if v == nil {
		return
	}
	return *v, true
}

// OldForkedFromIndex returns the old "forked_from_index" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldForkedFromIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForkedFromIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForkedFromIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForkedFromIndex: %w", err)
	}
	return oldValue.ForkedFromIndex, nil
}

// AddForkedFromIndex adds i to the "forked_from_index" field.
func (m *BranchMutation) AddForkedFromIndex(i int) {
	if m.addforked_from_index != nil {
		*m.addforked_from_index += i
	} else {
		m.addforked_from_index = &i
	}
}

// AddedForkedFromIndex returns the value that was added to the "forked_from_index" field in this mutation.
func (m *BranchMutation) AddedForkedFromIndex() (r int, exists bool) {
	v := m.addforked_from_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearForkedFromIndex clears the value of the "forked_from_index" field.
func (m *BranchMutation) ClearForkedFromIndex() {
	m.forked_from_index = nil
	m.addforked_from_index = nil
	m.clearedFields[branch.FieldForkedFromIndex] = struct{}{}
}

// ForkedFromIndexCleared returns if the "forked_from_index" field was cleared in this mutation.
func (m *BranchMutation) ForkedFromIndexCleared() bool {
	_, ok := m.clearedFields[branch.FieldForkedFromIndex]
	return ok
}

// ResetForkedFromIndex resets all changes to the "forked_from_index" field.
func (m *BranchMutation) ResetForkedFromIndex() {
	m.forked_from_index = nil
	m.addforked_from_index = nil
	delete(m.clearedFields, branch.FieldForkedFromIndex)
}

// SetCreatedAt sets the "created_at" field.
func (m *BranchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BranchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Branch entity.
// If the Branch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BranchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ConversationSession entity.
func (m *BranchMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[branch.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ConversationSession entity was cleared.
func (m *BranchMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *BranchMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *BranchMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the BranchMutation builder.
func (m *BranchMutation) Where(ps ...predicate.Branch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BranchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BranchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Branch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BranchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BranchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Branch).
func (m *BranchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BranchMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, branch.FieldSessionID)
	}
	if m.name != nil {
		fields = append(fields, branch.FieldName)
	}
	if m.parent_branch != nil {
		fields = append(fields, branch.FieldParentBranch)
	}
	if m.forked_from_index != nil {
		fields = append(fields, branch.FieldForkedFromIndex)
	}
	if m.created_at != nil {
		fields = append(fields, branch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BranchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case branch.FieldSessionID:
		return m.SessionID()
	case branch.FieldName:
		return m.Name()
	case branch.FieldParentBranch:
		return m.ParentBranch()
	case branch.FieldForkedFromIndex:
		return m.ForkedFromIndex()
	case branch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BranchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case branch.FieldSessionID:
		return m.OldSessionID(ctx)
	case branch.FieldName:
		return m.OldName(ctx)
	case branch.FieldParentBranch:
		return m.OldParentBranch(ctx)
	case branch.FieldForkedFromIndex:
		return m.OldForkedFromIndex(ctx)
	case branch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Branch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case branch.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case branch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case branch.FieldParentBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentBranch(v)
		return nil
	case branch.FieldForkedFromIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForkedFromIndex(v)
		return nil
	case branch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Branch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BranchMutation) AddedFields() []string {
	var fields []string
	if m.addforked_from_index != nil {
		fields = append(fields, branch.FieldForkedFromIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BranchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case branch.FieldForkedFromIndex:
		return m.AddedForkedFromIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case branch.FieldForkedFromIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddForkedFromIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Branch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BranchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(branch.FieldParentBranch) {
		fields = append(fields, branch.FieldParentBranch)
	}
	if m.FieldCleared(branch.FieldForkedFromIndex) {
		fields = append(fields, branch.FieldForkedFromIndex)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BranchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BranchMutation) ClearField(name string) error {
	switch name {
	case branch.FieldParentBranch:
		m.ClearParentBranch()
		return nil
	case branch.FieldForkedFromIndex:
		m.ClearForkedFromIndex()
		return nil
	}
	return fmt.Errorf("unknown Branch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BranchMutation) ResetField(name string) error {
	switch name {
	case branch.FieldSessionID:
		m.ResetSessionID()
		return nil
	case branch.FieldName:
		m.ResetName()
		return nil
	case branch.FieldParentBranch:
		m.ResetParentBranch()
		return nil
	case branch.FieldForkedFromIndex:
		m.ResetForkedFromIndex()
		return nil
	case branch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Branch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BranchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, branch.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BranchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case branch.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BranchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BranchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BranchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, branch.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BranchMutation) EdgeCleared(name string) bool {
	switch name {
	case branch.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BranchMutation) ClearEdge(name string) error {
	switch name {
	case branch.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Branch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BranchMutation) ResetEdge(name string) error {
	switch name {
	case branch.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Branch edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	content          *string
	author           *string
	edited_from_id   *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	snapshots        map[string]struct{}
	removedsnapshots map[string]struct{}
	clearedsnapshots bool
	done             bool
	oldValue         func(context.Context) (*ChatMessage, error)
	predicates       []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetAuthor sets the "author" field.
func (m *ChatMessageMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ChatMessageMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ChatMessageMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[chatmessage.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ChatMessageMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ChatMessageMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, chatmessage.FieldAuthor)
}

// SetEditedFromID sets the "edited_from_id" field.
func (m *ChatMessageMutation) SetEditedFromID(s string) {
	m.edited_from_id = &s
}

// EditedFromID returns the value of the "edited_from_id" field in the mutation.
func (m *ChatMessageMutation) EditedFromID() (r string, exists bool) {
	v := m.edited_from_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEditedFromID returns the old "edited_from_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldEditedFromID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditedFromID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditedFromID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditedFromID: %w", err)
	}
	return oldValue.EditedFromID, nil
}

// ClearEditedFromID clears the value of the "edited_from_id" field.
func (m *ChatMessageMutation) ClearEditedFromID() {
	m.edited_from_id = nil
	m.clearedFields[chatmessage.FieldEditedFromID] = struct{}{}
}

// EditedFromIDCleared returns if the "edited_from_id" field was cleared in this mutation.
func (m *ChatMessageMutation) EditedFromIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldEditedFromID]
	return ok
}

// ResetEditedFromID resets all changes to the "edited_from_id" field.
func (m *ChatMessageMutation) ResetEditedFromID() {
	m.edited_from_id = nil
	delete(m.clearedFields, chatmessage.FieldEditedFromID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ConversationSession entity.
func (m *ChatMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chatmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ConversationSession entity was cleared.
func (m *ChatMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddSnapshotIDs adds the "snapshots" edge to the UISnapshot entity by ids.
func (m *ChatMessageMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the UISnapshot entity.
func (m *ChatMessageMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the UISnapshot entity was cleared.
func (m *ChatMessageMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the UISnapshot entity by IDs.
func (m *ChatMessageMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the UISnapshot entity.
func (m *ChatMessageMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *ChatMessageMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *ChatMessageMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.author != nil {
		fields = append(fields, chatmessage.FieldAuthor)
	}
	if m.edited_from_id != nil {
		fields = append(fields, chatmessage.FieldEditedFromID)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldAuthor:
		return m.Author()
	case chatmessage.FieldEditedFromID:
		return m.EditedFromID()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldAuthor:
		return m.OldAuthor(ctx)
	case chatmessage.FieldEditedFromID:
		return m.OldEditedFromID(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case chatmessage.FieldEditedFromID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditedFromID(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldAuthor) {
		fields = append(fields, chatmessage.FieldAuthor)
	}
	if m.FieldCleared(chatmessage.FieldEditedFromID) {
		fields = append(fields, chatmessage.FieldEditedFromID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldAuthor:
		m.ClearAuthor()
		return nil
	case chatmessage.FieldEditedFromID:
		m.ClearEditedFromID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldAuthor:
		m.ResetAuthor()
		return nil
	case chatmessage.FieldEditedFromID:
		m.ResetEditedFromID()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, chatmessage.EdgeSession)
	}
	if m.snapshots != nil {
		edges = append(edges, chatmessage.EdgeSnapshots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case chatmessage.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsnapshots != nil {
		edges = append(edges, chatmessage.EdgeSnapshots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, chatmessage.EdgeSession)
	}
	if m.clearedsnapshots {
		edges = append(edges, chatmessage.EdgeSnapshots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeSession:
		return m.clearedsession
	case chatmessage.EdgeSnapshots:
		return m.clearedsnapshots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ResetSession()
		return nil
	case chatmessage.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ConversationSessionMutation represents an operation that mutates the ConversationSession nodes in the graph.
type ConversationSessionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	active_branch    *string
	author           *string
	created_at       *time.Time
	last_turn_at     *time.Time
	pod_id           *string
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	messages         map[string]struct{}
	removedmessages  map[string]struct{}
	clearedmessages  bool
	branches         map[string]struct{}
	removedbranches  map[string]struct{}
	clearedbranches  bool
	snapshots        map[string]struct{}
	removedsnapshots map[string]struct{}
	clearedsnapshots bool
	events           map[int64]struct{}
	removedevents    map[int64]struct{}
	clearedevents    bool
	done             bool
	oldValue         func(context.Context) (*ConversationSession, error)
	predicates       []predicate.ConversationSession
}

var _ ent.Mutation = (*ConversationSessionMutation)(nil)

// conversationsessionOption allows management of the mutation configuration using functional options.
type conversationsessionOption func(*ConversationSessionMutation)

// newConversationSessionMutation creates new mutation for the ConversationSession entity.
func newConversationSessionMutation(c config, op Op, opts ...conversationsessionOption) *ConversationSessionMutation {
	m := &ConversationSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationSessionID sets the ID field of the mutation.
func withConversationSessionID(id string) conversationsessionOption {
	return func(m *ConversationSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationSession
		)
		m.oldValue = func(ctx context.Context) (*ConversationSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationSession sets the old ConversationSession of the mutation.
func withConversationSession(node *ConversationSession) conversationsessionOption {
	return func(m *ConversationSessionMutation) {
		m.oldValue = func(context.Context) (*ConversationSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationSession entities.
func (m *ConversationSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ConversationSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ConversationSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversationsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversationsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversationsession.FieldTitle)
}

// SetActiveBranch sets the "active_branch" field.
func (m *ConversationSessionMutation) SetActiveBranch(s string) {
	m.active_branch = &s
}

// ActiveBranch returns the value of the "active_branch" field in the mutation.
func (m *ConversationSessionMutation) ActiveBranch() (r string, exists bool) {
	v := m.active_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveBranch returns the old "active_branch" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldActiveBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveBranch: %w", err)
	}
	return oldValue.ActiveBranch, nil
}

// ResetActiveBranch resets all changes to the "active_branch" field.
func (m *ConversationSessionMutation) ResetActiveBranch() {
	m.active_branch = nil
}

// SetAuthor sets the "author" field.
func (m *ConversationSessionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ConversationSessionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ConversationSessionMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[conversationsession.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ConversationSessionMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[conversationsession.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ConversationSessionMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, conversationsession.FieldAuthor)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastTurnAt sets the "last_turn_at" field.
func (m *ConversationSessionMutation) SetLastTurnAt(t time.Time) {
	m.last_turn_at = &t
}

// LastTurnAt returns the value of the "last_turn_at" field in the mutation.
func (m *ConversationSessionMutation) LastTurnAt() (r time.Time, exists bool) {
	v := m.last_turn_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTurnAt returns the old "last_turn_at" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldLastTurnAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTurnAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTurnAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTurnAt: %w", err)
	}
	return oldValue.LastTurnAt, nil
}

// ClearLastTurnAt clears the value of the "last_turn_at" field.
func (m *ConversationSessionMutation) ClearLastTurnAt() {
	m.last_turn_at = nil
	m.clearedFields[conversationsession.FieldLastTurnAt] = struct{}{}
}

// LastTurnAtCleared returns if the "last_turn_at" field was cleared in this mutation.
func (m *ConversationSessionMutation) LastTurnAtCleared() bool {
	_, ok := m.clearedFields[conversationsession.FieldLastTurnAt]
	return ok
}

// ResetLastTurnAt resets all changes to the "last_turn_at" field.
func (m *ConversationSessionMutation) ResetLastTurnAt() {
	m.last_turn_at = nil
	delete(m.clearedFields, conversationsession.FieldLastTurnAt)
}

// SetPodID sets the "pod_id" field.
func (m *ConversationSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ConversationSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ConversationSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[conversationsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ConversationSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[conversationsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ConversationSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, conversationsession.FieldPodID)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ConversationSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ConversationSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ConversationSession entity.
// If the ConversationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ConversationSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[conversationsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ConversationSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[conversationsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ConversationSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, conversationsession.FieldDeletedAt)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ConversationSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ConversationSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ConversationSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ConversationSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ConversationSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddBranchIDs adds the "branches" edge to the Branch entity by ids.
func (m *ConversationSessionMutation) AddBranchIDs(ids ...string) {
	if m.branches == nil {
		m.branches = make(map[string]struct{})
	}
	for i := range ids {
		m.branches[ids[i]] = struct{}{}
	}
}

// ClearBranches clears the "branches" edge to the Branch entity.
func (m *ConversationSessionMutation) ClearBranches() {
	m.clearedbranches = true
}

// BranchesCleared reports if the "branches" edge to the Branch entity was cleared.
func (m *ConversationSessionMutation) BranchesCleared() bool {
	return m.clearedbranches
}

// RemoveBranchIDs removes the "branches" edge to the Branch entity by IDs.
func (m *ConversationSessionMutation) RemoveBranchIDs(ids ...string) {
	if m.removedbranches == nil {
		m.removedbranches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.branches, ids[i])
		m.removedbranches[ids[i]] = struct{}{}
	}
}

// RemovedBranches returns the removed IDs of the "branches" edge to the Branch entity.
func (m *ConversationSessionMutation) RemovedBranchesIDs() (ids []string) {
	for id := range m.removedbranches {
		ids = append(ids, id)
	}
	return
}

// BranchesIDs returns the "branches" edge IDs in the mutation.
func (m *ConversationSessionMutation) BranchesIDs() (ids []string) {
	for id := range m.branches {
		ids = append(ids, id)
	}
	return
}

// ResetBranches resets all changes to the "branches" edge.
func (m *ConversationSessionMutation) ResetBranches() {
	m.branches = nil
	m.clearedbranches = false
	m.removedbranches = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the UISnapshot entity by ids.
func (m *ConversationSessionMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the UISnapshot entity.
func (m *ConversationSessionMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the UISnapshot entity was cleared.
func (m *ConversationSessionMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the UISnapshot entity by IDs.
func (m *ConversationSessionMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the UISnapshot entity.
func (m *ConversationSessionMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *ConversationSessionMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *ConversationSessionMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ConversationSessionMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ConversationSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ConversationSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ConversationSessionMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ConversationSessionMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ConversationSessionMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ConversationSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ConversationSessionMutation builder.
func (m *ConversationSessionMutation) Where(ps ...predicate.ConversationSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationSession).
func (m *ConversationSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, conversationsession.FieldTitle)
	}
	if m.active_branch != nil {
		fields = append(fields, conversationsession.FieldActiveBranch)
	}
	if m.author != nil {
		fields = append(fields, conversationsession.FieldAuthor)
	}
	if m.created_at != nil {
		fields = append(fields, conversationsession.FieldCreatedAt)
	}
	if m.last_turn_at != nil {
		fields = append(fields, conversationsession.FieldLastTurnAt)
	}
	if m.pod_id != nil {
		fields = append(fields, conversationsession.FieldPodID)
	}
	if m.deleted_at != nil {
		fields = append(fields, conversationsession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationsession.FieldTitle:
		return m.Title()
	case conversationsession.FieldActiveBranch:
		return m.ActiveBranch()
	case conversationsession.FieldAuthor:
		return m.Author()
	case conversationsession.FieldCreatedAt:
		return m.CreatedAt()
	case conversationsession.FieldLastTurnAt:
		return m.LastTurnAt()
	case conversationsession.FieldPodID:
		return m.PodID()
	case conversationsession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationsession.FieldTitle:
		return m.OldTitle(ctx)
	case conversationsession.FieldActiveBranch:
		return m.OldActiveBranch(ctx)
	case conversationsession.FieldAuthor:
		return m.OldAuthor(ctx)
	case conversationsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversationsession.FieldLastTurnAt:
		return m.OldLastTurnAt(ctx)
	case conversationsession.FieldPodID:
		return m.OldPodID(ctx)
	case conversationsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversationsession.FieldActiveBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveBranch(v)
		return nil
	case conversationsession.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case conversationsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversationsession.FieldLastTurnAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTurnAt(v)
		return nil
	case conversationsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case conversationsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationsession.FieldTitle) {
		fields = append(fields, conversationsession.FieldTitle)
	}
	if m.FieldCleared(conversationsession.FieldAuthor) {
		fields = append(fields, conversationsession.FieldAuthor)
	}
	if m.FieldCleared(conversationsession.FieldLastTurnAt) {
		fields = append(fields, conversationsession.FieldLastTurnAt)
	}
	if m.FieldCleared(conversationsession.FieldPodID) {
		fields = append(fields, conversationsession.FieldPodID)
	}
	if m.FieldCleared(conversationsession.FieldDeletedAt) {
		fields = append(fields, conversationsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationSessionMutation) ClearField(name string) error {
	switch name {
	case conversationsession.FieldTitle:
		m.ClearTitle()
		return nil
	case conversationsession.FieldAuthor:
		m.ClearAuthor()
		return nil
	case conversationsession.FieldLastTurnAt:
		m.ClearLastTurnAt()
		return nil
	case conversationsession.FieldPodID:
		m.ClearPodID()
		return nil
	case conversationsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationSessionMutation) ResetField(name string) error {
	switch name {
	case conversationsession.FieldTitle:
		m.ResetTitle()
		return nil
	case conversationsession.FieldActiveBranch:
		m.ResetActiveBranch()
		return nil
	case conversationsession.FieldAuthor:
		m.ResetAuthor()
		return nil
	case conversationsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversationsession.FieldLastTurnAt:
		m.ResetLastTurnAt()
		return nil
	case conversationsession.FieldPodID:
		m.ResetPodID()
		return nil
	case conversationsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.messages != nil {
		edges = append(edges, conversationsession.EdgeMessages)
	}
	if m.branches != nil {
		edges = append(edges, conversationsession.EdgeBranches)
	}
	if m.snapshots != nil {
		edges = append(edges, conversationsession.EdgeSnapshots)
	}
	if m.events != nil {
		edges = append(edges, conversationsession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.branches))
		for id := range m.branches {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, conversationsession.EdgeMessages)
	}
	if m.removedbranches != nil {
		edges = append(edges, conversationsession.EdgeBranches)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, conversationsession.EdgeSnapshots)
	}
	if m.removedevents != nil {
		edges = append(edges, conversationsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversationsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.removedbranches))
		for id := range m.removedbranches {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case conversationsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmessages {
		edges = append(edges, conversationsession.EdgeMessages)
	}
	if m.clearedbranches {
		edges = append(edges, conversationsession.EdgeBranches)
	}
	if m.clearedsnapshots {
		edges = append(edges, conversationsession.EdgeSnapshots)
	}
	if m.clearedevents {
		edges = append(edges, conversationsession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationsession.EdgeMessages:
		return m.clearedmessages
	case conversationsession.EdgeBranches:
		return m.clearedbranches
	case conversationsession.EdgeSnapshots:
		return m.clearedsnapshots
	case conversationsession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationSessionMutation) ResetEdge(name string) error {
	switch name {
	case conversationsession.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversationsession.EdgeBranches:
		m.ResetBranches()
		return nil
	case conversationsession.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case conversationsession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ConversationSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int64
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ConversationSession entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ConversationSession entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// UISnapshotMutation represents an operation that mutates the UISnapshot nodes in the graph.
type UISnapshotMutation struct {
	config
	op                Op
	typ               string
	id                *string
	branch_name       *string
	parent_id         *string
	content           *string
	layout_intent     *uisnapshot.LayoutIntent
	snapshot_index    *int
	addsnapshot_index *int
	metadata          *map[string]interface{}
	is_active         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	message           *string
	clearedmessage    bool
	done              bool
	oldValue          func(context.Context) (*UISnapshot, error)
	predicates        []predicate.UISnapshot
}

var _ ent.Mutation = (*UISnapshotMutation)(nil)

// uisnapshotOption allows management of the mutation configuration using functional options.
type uisnapshotOption func(*UISnapshotMutation)

// newUISnapshotMutation creates new mutation for the UISnapshot entity.
func newUISnapshotMutation(c config, op Op, opts ...uisnapshotOption) *UISnapshotMutation {
	m := &UISnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeUISnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUISnapshotID sets the ID field of the mutation.
func withUISnapshotID(id string) uisnapshotOption {
	return func(m *UISnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *UISnapshot
		)
		m.oldValue = func(ctx context.Context) (*UISnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UISnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUISnapshot sets the old UISnapshot of the mutation.
func withUISnapshot(node *UISnapshot) uisnapshotOption {
	return func(m *UISnapshotMutation) {
		m.oldValue = func(context.Context) (*UISnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UISnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UISnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UISnapshot entities.
func (m *UISnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UISnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UISnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UISnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *UISnapshotMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UISnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UISnapshotMutation) ResetSessionID() {
	m.session = nil
}

// SetMessageID sets the "message_id" field.
func (m *UISnapshotMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *UISnapshotMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *UISnapshotMutation) ResetMessageID() {
	m.message = nil
}

// SetBranchName sets the "branch_name" field.
func (m *UISnapshotMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *UISnapshotMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *UISnapshotMutation) ResetBranchName() {
	m.branch_name = nil
}

// SetParentID sets the "parent_id" field.
func (m *UISnapshotMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *UISnapshotMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *UISnapshotMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[uisnapshot.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *UISnapshotMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[uisnapshot.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *UISnapshotMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, uisnapshot.FieldParentID)
}

// SetContent sets the "content" field.
func (m *UISnapshotMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *UISnapshotMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *UISnapshotMutation) ResetContent() {
	m.content = nil
}

// SetLayoutIntent sets the "layout_intent" field.
func (m *UISnapshotMutation) SetLayoutIntent(ui uisnapshot.LayoutIntent) {
	m.layout_intent = &ui
}

// LayoutIntent returns the value of the "layout_intent" field in the mutation.
func (m *UISnapshotMutation) LayoutIntent() (r uisnapshot.LayoutIntent, exists bool) {
	v := m.layout_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldLayoutIntent returns the old "layout_intent" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldLayoutIntent(ctx context.Context) (v uisnapshot.LayoutIntent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayoutIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayoutIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayoutIntent: %w", err)
	}
	return oldValue.LayoutIntent, nil
}

// ResetLayoutIntent resets all changes to the "layout_intent" field.
func (m *UISnapshotMutation) ResetLayoutIntent() {
	m.layout_intent = nil
}

// SetSnapshotIndex sets the "snapshot_index" field.
func (m *UISnapshotMutation) SetSnapshotIndex(i int) {
	m.snapshot_index = &i
	m.addsnapshot_index = nil
}

// SnapshotIndex returns the value of the "snapshot_index" field in the mutation.
func (m *UISnapshotMutation) SnapshotIndex() (r int, exists bool) {
	v := m.snapshot_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotIndex returns the old "snapshot_index" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldSnapshotIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotIndex: %w", err)
	}
	return oldValue.SnapshotIndex, nil
}

// AddSnapshotIndex adds i to the "snapshot_index" field.
func (m *UISnapshotMutation) AddSnapshotIndex(i int) {
	if m.addsnapshot_index != nil {
		*m.addsnapshot_index += i
	} else {
		m.addsnapshot_index = &i
	}
}

// AddedSnapshotIndex returns the value that was added to the "snapshot_index" field in this mutation.
func (m *UISnapshotMutation) AddedSnapshotIndex() (r int, exists bool) {
	v := m.addsnapshot_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSnapshotIndex resets all changes to the "snapshot_index" field.
func (m *UISnapshotMutation) ResetSnapshotIndex() {
	m.snapshot_index = nil
	m.addsnapshot_index = nil
}

// SetMetadata sets the "metadata" field.
func (m *UISnapshotMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UISnapshotMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UISnapshotMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[uisnapshot.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UISnapshotMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[uisnapshot.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UISnapshotMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, uisnapshot.FieldMetadata)
}

// SetIsActive sets the "is_active" field.
func (m *UISnapshotMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UISnapshotMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UISnapshotMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UISnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UISnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UISnapshot entity.
// If the UISnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UISnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UISnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ConversationSession entity.
func (m *UISnapshotMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[uisnapshot.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ConversationSession entity was cleared.
func (m *UISnapshotMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *UISnapshotMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *UISnapshotMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearMessage clears the "message" edge to the ChatMessage entity.
func (m *UISnapshotMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[uisnapshot.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the ChatMessage entity was cleared.
func (m *UISnapshotMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *UISnapshotMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *UISnapshotMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the UISnapshotMutation builder.
func (m *UISnapshotMutation) Where(ps ...predicate.UISnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UISnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UISnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UISnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UISnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UISnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UISnapshot).
func (m *UISnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UISnapshotMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, uisnapshot.FieldSessionID)
	}
	if m.message != nil {
		fields = append(fields, uisnapshot.FieldMessageID)
	}
	if m.branch_name != nil {
		fields = append(fields, uisnapshot.FieldBranchName)
	}
	if m.parent_id != nil {
		fields = append(fields, uisnapshot.FieldParentID)
	}
	if m.content != nil {
		fields = append(fields, uisnapshot.FieldContent)
	}
	if m.layout_intent != nil {
		fields = append(fields, uisnapshot.FieldLayoutIntent)
	}
	if m.snapshot_index != nil {
		fields = append(fields, uisnapshot.FieldSnapshotIndex)
	}
	if m.metadata != nil {
		fields = append(fields, uisnapshot.FieldMetadata)
	}
	if m.is_active != nil {
		fields = append(fields, uisnapshot.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, uisnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UISnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uisnapshot.FieldSessionID:
		return m.SessionID()
	case uisnapshot.FieldMessageID:
		return m.MessageID()
	case uisnapshot.FieldBranchName:
		return m.BranchName()
	case uisnapshot.FieldParentID:
		return m.ParentID()
	case uisnapshot.FieldContent:
		return m.Content()
	case uisnapshot.FieldLayoutIntent:
		return m.LayoutIntent()
	case uisnapshot.FieldSnapshotIndex:
		return m.SnapshotIndex()
	case uisnapshot.FieldMetadata:
		return m.Metadata()
	case uisnapshot.FieldIsActive:
		return m.IsActive()
	case uisnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UISnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uisnapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case uisnapshot.FieldMessageID:
		return m.OldMessageID(ctx)
	case uisnapshot.FieldBranchName:
		return m.OldBranchName(ctx)
	case uisnapshot.FieldParentID:
		return m.OldParentID(ctx)
	case uisnapshot.FieldContent:
		return m.OldContent(ctx)
	case uisnapshot.FieldLayoutIntent:
		return m.OldLayoutIntent(ctx)
	case uisnapshot.FieldSnapshotIndex:
		return m.OldSnapshotIndex(ctx)
	case uisnapshot.FieldMetadata:
		return m.OldMetadata(ctx)
	case uisnapshot.FieldIsActive:
		return m.OldIsActive(ctx)
	case uisnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UISnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UISnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uisnapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case uisnapshot.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case uisnapshot.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case uisnapshot.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case uisnapshot.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case uisnapshot.FieldLayoutIntent:
		v, ok := value.(uisnapshot.LayoutIntent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayoutIntent(v)
		return nil
	case uisnapshot.FieldSnapshotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotIndex(v)
		return nil
	case uisnapshot.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case uisnapshot.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case uisnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UISnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UISnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsnapshot_index != nil {
		fields = append(fields, uisnapshot.FieldSnapshotIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UISnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uisnapshot.FieldSnapshotIndex:
		return m.AddedSnapshotIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UISnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uisnapshot.FieldSnapshotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSnapshotIndex(v)
		return nil
	}
	return fmt.Errorf("unknown UISnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UISnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uisnapshot.FieldParentID) {
		fields = append(fields, uisnapshot.FieldParentID)
	}
	if m.FieldCleared(uisnapshot.FieldMetadata) {
		fields = append(fields, uisnapshot.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UISnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UISnapshotMutation) ClearField(name string) error {
	switch name {
	case uisnapshot.FieldParentID:
		m.ClearParentID()
		return nil
	case uisnapshot.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown UISnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UISnapshotMutation) ResetField(name string) error {
	switch name {
	case uisnapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case uisnapshot.FieldMessageID:
		m.ResetMessageID()
		return nil
	case uisnapshot.FieldBranchName:
		m.ResetBranchName()
		return nil
	case uisnapshot.FieldParentID:
		m.ResetParentID()
		return nil
	case uisnapshot.FieldContent:
		m.ResetContent()
		return nil
	case uisnapshot.FieldLayoutIntent:
		m.ResetLayoutIntent()
		return nil
	case uisnapshot.FieldSnapshotIndex:
		m.ResetSnapshotIndex()
		return nil
	case uisnapshot.FieldMetadata:
		m.ResetMetadata()
		return nil
	case uisnapshot.FieldIsActive:
		m.ResetIsActive()
		return nil
	case uisnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UISnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UISnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, uisnapshot.EdgeSession)
	}
	if m.message != nil {
		edges = append(edges, uisnapshot.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UISnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uisnapshot.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case uisnapshot.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UISnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UISnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UISnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, uisnapshot.EdgeSession)
	}
	if m.clearedmessage {
		edges = append(edges, uisnapshot.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UISnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case uisnapshot.EdgeSession:
		return m.clearedsession
	case uisnapshot.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UISnapshotMutation) ClearEdge(name string) error {
	switch name {
	case uisnapshot.EdgeSession:
		m.ClearSession()
		return nil
	case uisnapshot.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown UISnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UISnapshotMutation) ResetEdge(name string) error {
	switch name {
	case uisnapshot.EdgeSession:
		m.ResetSession()
		return nil
	case uisnapshot.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown UISnapshot edge %s", name)
}
