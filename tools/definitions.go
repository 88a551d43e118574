package tools

// AllTools contains all tool specifications for the Wikibase MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// WIKI READ TOOLS
	// ==========================================================================
	{
		Name:     "wiki_get_page",
		Method:   "GetPage",
		Title:    "Get Page Content",
		Category: "read",
		Backend:  "wiki",
		Description: `Retrieve the full wikitext content of a wiki page.

USE WHEN: User says "show me the X page", "what's on the Main Page", "read the article about X".

NOT FOR: Page metadata like edit time or contributors (use wiki_get_page_info). Not for finding pages about a topic (use wiki_search).

PARAMETERS:
- title: Page name (required)

RETURNS: The page's raw wikitext content, byte for byte as stored.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_get_page_info",
		Method:   "GetPageInfo",
		Title:    "Get Page Info",
		Category: "read",
		Backend:  "wiki",
		Description: `Retrieve metadata about a wiki page without its content.

USE WHEN: User asks "when was X last edited", "who contributed to X", "does page X exist".

NOT FOR: Reading the page's text (use wiki_get_page).

PARAMETERS:
- title: Page name (required)

RETURNS: Page ID, last-touched timestamp, and contributor usernames.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_search",
		Method:   "Search",
		Title:    "Search Wiki",
		Category: "search",
		Backend:  "wiki",
		Description: `Full-text search across the entire wiki.

USE WHEN: User asks "find pages about X", "where is X documented", "search for X", or doesn't know which page contains information.

NOT FOR: Searching structured entities (use wikibase_search_entities).

PARAMETERS:
- query: Search text (required)
- limit: Max results (default 10)

RETURNS: Matching page titles in relevance order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WIKI WRITE TOOLS
	// ==========================================================================
	{
		Name:     "wiki_edit_page",
		Method:   "EditPage",
		Title:    "Edit Page",
		Category: "write",
		Backend:  "wiki",
		Description: `Replace the content of an existing wiki page.

USE WHEN: User says "update page X", "change the text of X", "fix the article about X".

NOT FOR: Creating a page that doesn't exist yet (use wiki_create_page). Requires bot credentials to be configured.

PARAMETERS:
- title: Page name (required)
- content: New wikitext content (required)
- summary: Edit summary (optional, recommended)

RETURNS: Success flag and a confirmation message.`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "wiki_create_page",
		Method:   "CreatePage",
		Title:    "Create Page",
		Category: "write",
		Backend:  "wiki",
		Description: `Create a new wiki page. Fails rather than overwriting if the page already exists.

USE WHEN: User says "create a page for X", "add a new article about X".

NOT FOR: Updating existing pages (use wiki_edit_page). Requires bot credentials to be configured.

PARAMETERS:
- title: Page name (required)
- content: Initial wikitext content (required)
- summary: Edit summary (optional, recommended)

RETURNS: Success flag and a confirmation message.`,
		OpenWorld: true,
	},
	{
		Name:     "wiki_delete_page",
		Method:   "DeletePage",
		Title:    "Delete Page",
		Category: "write",
		Backend:  "wiki",
		Description: `Delete a wiki page. Requires an account with delete rights.

USE WHEN: User explicitly asks to delete or remove a page.

NOT FOR: Blanking a page's content (use wiki_edit_page). Requires bot credentials to be configured.

PARAMETERS:
- title: Page name (required)
- reason: Deletion reason (optional, recommended)

RETURNS: Success flag and a confirmation message.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// WIKIBASE ENTITY TOOLS
	// ==========================================================================
	{
		Name:     "wikibase_get_entity",
		Method:   "GetEntity",
		Title:    "Get Entity",
		Category: "entity",
		Backend:  "wikibase",
		Description: `Fetch a Wikibase entity (item or property) by its ID.

USE WHEN: User gives a concrete entity ID like "Q42" or "P31" and wants its data.

NOT FOR: Finding an entity by name (use wikibase_search_entities first).

PARAMETERS:
- id: Entity ID such as Q42 or P31 (required)

RETURNS: Labels, descriptions, claim count, and the raw entity JSON.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikibase_search_entities",
		Method:   "SearchEntities",
		Title:    "Search Entities",
		Category: "entity",
		Backend:  "wikibase",
		Description: `Search Wikibase entities by label or alias.

USE WHEN: User asks "what is the entity for X", "find the item for X", or needs an entity ID before editing.

NOT FOR: Full-text search of wiki pages (use wiki_search).

PARAMETERS:
- query: Search text (required)
- type: "item" (default) or "property"
- limit: Max results (default 10)

RETURNS: Matching entity IDs with labels and descriptions.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikibase_edit_entity",
		Method:   "EditEntity",
		Title:    "Edit Entity",
		Category: "entity",
		Backend:  "wikibase",
		Description: `Create a new Wikibase entity or edit an existing one.

USE WHEN: User wants to create an item, or set labels/descriptions/claims on one in a single call.

NOT FOR: Adding one statement to an existing entity (use wikibase_add_statement). Requires bot credentials to be configured.

PARAMETERS:
- id: Entity ID to edit; omit to create a new entity
- data: Entity data as a JSON string (required)
- summary: Edit summary (optional)

RETURNS: Success flag and the entity ID (newly assigned on creation).`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "wikibase_add_statement",
		Method:   "AddStatement",
		Title:    "Add Statement",
		Category: "entity",
		Backend:  "wikibase",
		Description: `Add a single value statement (claim) to an existing entity.

USE WHEN: User says "add property P to entity Q with value V", "state that Q42 is an instance of Q5".

NOT FOR: Bulk entity edits or label changes (use wikibase_edit_entity). Requires bot credentials to be configured.

PARAMETERS:
- entity_id: Entity the statement is about, e.g. Q42 (required)
- property: Property ID, e.g. P31 (required)
- value: Statement value as a JSON string (required)

RETURNS: Success flag and the new statement's ID.`,
		OpenWorld: true,
	},
}
