package wiki

// Constants for response limits
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 500
)

// ========== Page Content Types ==========

type GetPageArgs struct {
	Title string `json:"title" jsonschema:"Page title to retrieve"`
}

type PageContent struct {
	Title   string `json:"title"`
	PageID  int    `json:"page_id"`
	Content string `json:"content"`
}

// ========== Page Info Types ==========

type PageInfoArgs struct {
	Title string `json:"title" jsonschema:"Page title"`
}

type PageInfo struct {
	Title        string   `json:"title"`
	PageID       int      `json:"page_id"`
	Touched      string   `json:"touched"`
	Contributors []string `json:"contributors"`
}

// ========== Search Types ==========

type SearchArgs struct {
	Query string `json:"query" jsonschema:"Search query text"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 10)"`
}

type SearchResult struct {
	Query  string   `json:"query"`
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// ========== Edit Types ==========

type EditPageArgs struct {
	Title   string `json:"title" jsonschema:"Page title to edit"`
	Content string `json:"content" jsonschema:"New page content in wikitext format"`
	Summary string `json:"summary,omitempty" jsonschema:"Edit summary explaining the change"`
}

type CreatePageArgs struct {
	Title   string `json:"title" jsonschema:"Title of the page to create"`
	Content string `json:"content" jsonschema:"Page content in wikitext format"`
	Summary string `json:"summary,omitempty" jsonschema:"Edit summary for the creation"`
}

type EditResult struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ========== Delete Types ==========

type DeletePageArgs struct {
	Title  string `json:"title" jsonschema:"Page title to delete"`
	Reason string `json:"reason,omitempty" jsonschema:"Reason for the deletion"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
