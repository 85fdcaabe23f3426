// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Branch is the predicate function for branch builders.
type Branch func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ConversationSession is the predicate function for conversationsession builders.
type ConversationSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// UISnapshot is the predicate function for uisnapshot builders.
type UISnapshot func(*sql.Selector)
