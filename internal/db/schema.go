package db

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL(); repository code referencing a column that is missing
// here fails immediately with "no such column" at test time.
//
// Table and column names are a durable contract: external tooling
// (export/import) reads this layout directly. guiding_questions, variables,
// tags, and context_doc_ids are JSON-encoded TEXT columns.
//
// When adding new columns or tables:
//  1. Add an additive migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Projects (workspace roots; everything project-scoped cascades from here)
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Conversations (AI transcript containers)
CREATE TABLE IF NOT EXISTS conversations (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	message_count INTEGER DEFAULT 0,
	token_count INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_conversations_project_id ON conversations(project_id);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('user', 'assistant', 'system')),
	content TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (conversation_id) REFERENCES conversations(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation_id ON messages(conversation_id);

-- Token usage ledger (recorded after the fact by callers)
CREATE TABLE IF NOT EXISTS token_usage (
	id TEXT PRIMARY KEY,
	project_id TEXT,
	conversation_id TEXT,
	model TEXT NOT NULL,
	input_tokens INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	cost REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_token_usage_created_at ON token_usage(created_at);

-- Settings (process-wide singleton row keyed 'default')
CREATE TABLE IF NOT EXISTS settings (
	id TEXT PRIMARY KEY,
	display_name TEXT,
	role TEXT,
	theme TEXT DEFAULT 'system',
	api_key_encrypted TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Folders (per-project tree; parent_id NULL means root)
CREATE TABLE IF NOT EXISTS folders (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	parent_id TEXT,
	name TEXT NOT NULL,
	color TEXT,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_folders_project_id ON folders(project_id);

-- Context documents (foldered item kind: context_doc)
CREATE TABLE IF NOT EXISTS context_documents (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	name TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	content TEXT,
	url TEXT,
	is_global INTEGER DEFAULT 0,
	size_bytes INTEGER DEFAULT 0,
	folder_id TEXT,
	tags TEXT DEFAULT '[]',
	is_favorite INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_context_documents_project_id ON context_documents(project_id);

-- Framework outputs (foldered item kind: framework_output)
CREATE TABLE IF NOT EXISTS framework_outputs (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	name TEXT NOT NULL,
	framework_id TEXT NOT NULL,
	category TEXT,
	user_prompt TEXT,
	context_doc_ids TEXT DEFAULT '[]',
	generated_content TEXT,
	format TEXT DEFAULT 'markdown',
	folder_id TEXT,
	tags TEXT DEFAULT '[]',
	is_favorite INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_framework_outputs_project_id ON framework_outputs(project_id);

-- Framework categories (overridable catalog; builtin rows come from seed)
CREATE TABLE IF NOT EXISTS framework_categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	icon TEXT,
	is_builtin INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Framework definitions (overridable catalog)
CREATE TABLE IF NOT EXISTS framework_defs (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	icon TEXT,
	example_output TEXT,
	system_prompt TEXT,
	guiding_questions TEXT DEFAULT '[]',
	supports_visuals INTEGER DEFAULT 0,
	visual_instructions TEXT,
	is_builtin INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (category) REFERENCES framework_categories(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_framework_defs_category ON framework_defs(category);

-- Saved prompts (overridable catalog)
CREATE TABLE IF NOT EXISTS saved_prompts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	category TEXT,
	prompt_text TEXT NOT NULL,
	variables TEXT DEFAULT '[]',
	framework_id TEXT,
	is_builtin INTEGER DEFAULT 0,
	is_favorite INTEGER DEFAULT 0,
	usage_count INTEGER DEFAULT 0,
	sort_order INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (framework_id) REFERENCES framework_defs(id) ON DELETE SET NULL
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
