package wikibase

// Constants for response limits
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// ========== Entity Fetch Types ==========

type GetEntityArgs struct {
	ID string `json:"id" jsonschema:"Entity ID (e.g. Q42 for items, P31 for properties)"`
}

type Entity struct {
	ID           string            `json:"id"`
	Labels       map[string]string `json:"labels,omitempty"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
	ClaimCount   int               `json:"claim_count"`
	Data         string            `json:"data"`
}

// ========== Entity Search Types ==========

type SearchEntitiesArgs struct {
	Query string `json:"query" jsonschema:"Search text for entity labels and aliases"`
	Type  string `json:"type,omitempty" jsonschema:"Entity type: 'item' (default) or 'property'"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 10)"`
}

type SearchEntitiesResult struct {
	Query   string      `json:"query"`
	Results []EntityHit `json:"results"`
	Count   int         `json:"count"`
}

type EntityHit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// ========== Entity Edit Types ==========

type EditEntityArgs struct {
	ID      string `json:"id,omitempty" jsonschema:"Entity ID to edit; omit to create a new entity"`
	Data    string `json:"data" jsonschema:"Entity data as a JSON string (labels, descriptions, claims)"`
	Summary string `json:"summary,omitempty" jsonschema:"Edit summary explaining the change"`
}

type EditEntityResult struct {
	Success  bool   `json:"success"`
	EntityID string `json:"entity_id,omitempty"`
	Message  string `json:"message"`
}

// ========== Statement Types ==========

type AddStatementArgs struct {
	EntityID string `json:"entity_id" jsonschema:"Entity the statement is about (e.g. Q42)"`
	Property string `json:"property" jsonschema:"Property ID of the statement (e.g. P31)"`
	Value    string `json:"value" jsonschema:"Statement value as a JSON string"`
}

type AddStatementResult struct {
	Success     bool   `json:"success"`
	StatementID string `json:"statement_id,omitempty"`
	Message     string `json:"message"`
}
