// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BranchesColumns holds the columns for the "branches" table.
	BranchesColumns = []*schema.Column{
		{Name: "branch_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "parent_branch", Type: field.TypeString, Nullable: true},
		{Name: "forked_from_index", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// BranchesTable holds the schema information for the "branches" table.
	BranchesTable = &schema.Table{
		Name:       "branches",
		Columns:    BranchesColumns,
		PrimaryKey: []*schema.Column{BranchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "branches_conversation_sessions_branches",
				Columns:    []*schema.Column{BranchesColumns[5]},
				RefColumns: []*schema.Column{ConversationSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "branch_session_id_name",
				Unique:  true,
				Columns: []*schema.Column{BranchesColumns[5], BranchesColumns[1]},
			},
			{
				Name:    "branch_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BranchesColumns[5], BranchesColumns[4]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "edited_from_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_conversation_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{ConversationSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[4]},
			},
			{
				Name:    "chatmessage_edited_from_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3]},
			},
		},
	}
	// ConversationSessionsColumns holds the columns for the "conversation_sessions" table.
	ConversationSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "active_branch", Type: field.TypeString, Default: "main"},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_turn_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ConversationSessionsTable holds the schema information for the "conversation_sessions" table.
	ConversationSessionsTable = &schema.Table{
		Name:       "conversation_sessions",
		Columns:    ConversationSessionsColumns,
		PrimaryKey: []*schema.Column{ConversationSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationSessionsColumns[4]},
			},
			{
				Name:    "conversationsession_last_turn_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationSessionsColumns[5]},
			},
			{
				Name:    "conversationsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationSessionsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_conversation_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ConversationSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// UISnapshotsColumns holds the columns for the "ui_snapshots" table.
	UISnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "branch_name", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "layout_intent", Type: field.TypeEnum, Enums: []string{"full", "extended", "preview", "hidden"}, Default: "preview"},
		{Name: "snapshot_index", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// UISnapshotsTable holds the schema information for the "ui_snapshots" table.
	UISnapshotsTable = &schema.Table{
		Name:       "ui_snapshots",
		Columns:    UISnapshotsColumns,
		PrimaryKey: []*schema.Column{UISnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ui_snapshots_chat_messages_snapshots",
				Columns:    []*schema.Column{UISnapshotsColumns[9]},
				RefColumns: []*schema.Column{ChatMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "ui_snapshots_conversation_sessions_snapshots",
				Columns:    []*schema.Column{UISnapshotsColumns[10]},
				RefColumns: []*schema.Column{ConversationSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uisnapshot_session_id_branch_name_snapshot_index",
				Unique:  true,
				Columns: []*schema.Column{UISnapshotsColumns[10], UISnapshotsColumns[1], UISnapshotsColumns[5]},
			},
			{
				Name:    "uisnapshot_message_id",
				Unique:  false,
				Columns: []*schema.Column{UISnapshotsColumns[9]},
			},
			{
				Name:    "uisnapshot_session_id_branch_name",
				Unique:  false,
				Columns: []*schema.Column{UISnapshotsColumns[10], UISnapshotsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
			{
				Name:    "uisnapshot_created_at",
				Unique:  false,
				Columns: []*schema.Column{UISnapshotsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BranchesTable,
		ChatMessagesTable,
		ConversationSessionsTable,
		EventsTable,
		UISnapshotsTable,
	}
)

func init() {
	BranchesTable.ForeignKeys[0].RefTable = ConversationSessionsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ConversationSessionsTable
	EventsTable.ForeignKeys[0].RefTable = ConversationSessionsTable
	UISnapshotsTable.ForeignKeys[0].RefTable = ChatMessagesTable
	UISnapshotsTable.ForeignKeys[1].RefTable = ConversationSessionsTable
}
