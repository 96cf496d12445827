// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "stopped", "agent_terminated"}, Default: "pending"},
		{Name: "model", Type: field.TypeString},
		{Name: "processor_config", Type: field.TypeJSON, Nullable: true},
		{Name: "system_prompt_suffix", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "responses", Type: field.TypeJSON, Nullable: true},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "thread_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_threads_runs",
				Columns:    []*schema.Column{AgentRunsColumns[15]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[3]},
			},
			{
				Name:    "agentrun_thread_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[15]},
			},
			{
				Name:    "agentrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[3], AgentRunsColumns[8]},
			},
			{
				Name:    "agentrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[3], AgentRunsColumns[14]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_agent_runs_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
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
				Name:    "event_run_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON},
		{Name: "is_llm_message", Type: field.TypeBool, Default: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_version_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[7]},
			},
			{
				Name:    "message_thread_id_type",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "sandbox", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thread_project_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1]},
			},
		},
	}
	// TriggersColumns holds the columns for the "triggers" table.
	TriggersColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "provider_id", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"schedule", "webhook", "event"}},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TriggersTable holds the schema information for the "triggers" table.
	TriggersTable = &schema.Table{
		Name:       "triggers",
		Columns:    TriggersColumns,
		PrimaryKey: []*schema.Column{TriggersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trigger_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[1]},
			},
			{
				Name:    "trigger_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[3]},
			},
			{
				Name:    "trigger_is_active",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[6]},
			},
		},
	}
	// TriggerEventLogsColumns holds the columns for the "trigger_event_logs" table.
	TriggerEventLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "raw_data", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "should_execute_agent", Type: field.TypeBool, Default: false},
		{Name: "should_execute_workflow", Type: field.TypeBool, Default: false},
		{Name: "agent_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "trigger_id", Type: field.TypeString},
	}
	// TriggerEventLogsTable holds the schema information for the "trigger_event_logs" table.
	TriggerEventLogsTable = &schema.Table{
		Name:       "trigger_event_logs",
		Columns:    TriggerEventLogsColumns,
		PrimaryKey: []*schema.Column{TriggerEventLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trigger_event_logs_triggers_event_logs",
				Columns:    []*schema.Column{TriggerEventLogsColumns[11]},
				RefColumns: []*schema.Column{TriggersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triggereventlog_trigger_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerEventLogsColumns[11], TriggerEventLogsColumns[10]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "archived"}, Default: "draft"},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_agent_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1]},
			},
			{
				Name:    "workflow_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		EventsTable,
		MessagesTable,
		ProjectsTable,
		ThreadsTable,
		TriggersTable,
		TriggerEventLogsTable,
		WorkflowsTable,
	}
)

func init() {
	AgentRunsTable.ForeignKeys[0].RefTable = ThreadsTable
	EventsTable.ForeignKeys[0].RefTable = AgentRunsTable
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	TriggerEventLogsTable.ForeignKeys[0].RefTable = TriggersTable
}
