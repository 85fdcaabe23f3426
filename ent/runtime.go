// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loomhq/loom/ent/branch"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/ent/conversationsession"
	"github.com/loomhq/loom/ent/event"
	"github.com/loomhq/loom/ent/schema"
	"github.com/loomhq/loom/ent/uisnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	branchFields := schema.Branch{}.Fields()
	_ = branchFields
	// branchDescCreatedAt is the schema descriptor for created_at field.
	branchDescCreatedAt := branchFields[5].Descriptor()
	// branch.DefaultCreatedAt holds the default value on creation for the created_at field.
	branch.DefaultCreatedAt = branchDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	conversationsessionFields := schema.ConversationSession{}.Fields()
	_ = conversationsessionFields
	// conversationsessionDescActiveBranch is the schema descriptor for active_branch field.
	conversationsessionDescActiveBranch := conversationsessionFields[2].Descriptor()
	// conversationsession.DefaultActiveBranch holds the default value on creation for the active_branch field.
	conversationsession.DefaultActiveBranch = conversationsessionDescActiveBranch.Default.(string)
	// conversationsessionDescCreatedAt is the schema descriptor for created_at field.
	conversationsessionDescCreatedAt := conversationsessionFields[4].Descriptor()
	// conversationsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationsession.DefaultCreatedAt = conversationsessionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	uisnapshotFields := schema.UISnapshot{}.Fields()
	_ = uisnapshotFields
	// uisnapshotDescIsActive is the schema descriptor for is_active field.
	uisnapshotDescIsActive := uisnapshotFields[9].Descriptor()
	// uisnapshot.DefaultIsActive holds the default value on creation for the is_active field.
	uisnapshot.DefaultIsActive = uisnapshotDescIsActive.Default.(bool)
	// uisnapshotDescCreatedAt is the schema descriptor for created_at field.
	uisnapshotDescCreatedAt := uisnapshotFields[10].Descriptor()
	// uisnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	uisnapshot.DefaultCreatedAt = uisnapshotDescCreatedAt.Default.(func() time.Time)
}
