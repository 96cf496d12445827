// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// Trigger is the predicate function for trigger builders.
type Trigger func(*sql.Selector)

// TriggerEventLog is the predicate function for triggereventlog builders.
type TriggerEventLog func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
