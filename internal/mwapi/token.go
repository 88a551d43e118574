package mwapi

import (
	"context"
	"net/url"

	"github.com/olgasafonova/wikibase-mcp-server/metrics"
)

// TokenType names the anti-forgery token scope the upstream recognizes.
type TokenType string

const (
	// TokenLogin is the token type consumed by the login handshake.
	TokenLogin TokenType = "login"

	// TokenCSRF is the generic edit token consumed by every other
	// mutating action (edit, delete, entity edit, claim creation).
	TokenCSRF TokenType = "csrf"
)

// tokensResponse is the expected shape of a meta=tokens query.
type tokensResponse struct {
	Query struct {
		Tokens map[string]string `json:"tokens"`
	} `json:"query"`
}

// FetchToken retrieves a fresh anti-forgery token scoped to the given
// operation. Tokens are never cached: every mutating operation fetches its
// own token immediately before its write, even for back-to-back calls to the
// same action. The current session credential, if installed, rides along so
// the token is bound to the authenticated session.
func (c *Client) FetchToken(ctx context.Context, base string, typ TokenType, op string) (string, error) {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("meta", "tokens")
	query.Set("type", string(typ))

	resp, err := c.Get(ctx, base, op, query)
	if err != nil {
		metrics.TokenFetches.WithLabelValues(string(typ), "error").Inc()
		return "", &TokenFetchError{TokenType: typ, Op: op, Err: err}
	}
	if !resp.OK() {
		metrics.TokenFetches.WithLabelValues(string(typ), "error").Inc()
		return "", &TokenFetchError{
			TokenType: typ,
			Op:        op,
			Err:       &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: resp.Snippet()},
		}
	}

	var decoded tokensResponse
	if err := resp.Decode(&decoded); err != nil {
		metrics.TokenFetches.WithLabelValues(string(typ), "error").Inc()
		return "", &TokenFetchError{TokenType: typ, Op: op, Err: err}
	}

	token, ok := decoded.Query.Tokens[string(typ)+"token"]
	if !ok || token == "" {
		metrics.TokenFetches.WithLabelValues(string(typ), "missing").Inc()
		return "", &TokenMissingError{TokenType: typ, Op: op}
	}

	metrics.TokenFetches.WithLabelValues(string(typ), "success").Inc()
	return token, nil
}
