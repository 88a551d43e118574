package mwapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/olgasafonova/wikibase-mcp-server/metrics"
)

// loginResponse is the expected shape of an action=login reply.
type loginResponse struct {
	Login struct {
		Result string `json:"result"`
		Reason string `json:"reason"`
	} `json:"login"`
}

// Login performs the two-step bot login handshake against base: fetch a
// login token, then submit the credentialed login carrying it. On success
// the session credential from the response's Set-Cookie header is installed
// into the session cell, and every subsequent request replays it.
//
// A reported "Success" whose response carries no Set-Cookie header is not
// treated as a failure: the credential stays unset, a warning is logged, and
// later calls proceed unauthenticated. Whether such calls succeed is
// upstream policy.
func (c *Client) Login(ctx context.Context, base, username, password string) error {
	if username == "" || password == "" {
		return &ConfigurationError{
			Message: "login requires both a username and a password",
		}
	}

	token, err := c.FetchToken(ctx, base, TokenLogin, "login")
	if err != nil {
		metrics.AuthFailures.WithLabelValues("token").Inc()
		return err
	}

	query := url.Values{}
	query.Set("action", "login")

	form := url.Values{}
	form.Set("lgname", username)
	form.Set("lgpassword", password)
	form.Set("lgtoken", token)

	resp, err := c.PostForm(ctx, base, "login", query, form)
	if err != nil {
		metrics.AuthFailures.WithLabelValues("transport").Inc()
		return &LoginRequestError{Err: err}
	}
	if !resp.OK() {
		metrics.AuthFailures.WithLabelValues("transport").Inc()
		return &LoginRequestError{StatusCode: resp.StatusCode}
	}

	var decoded loginResponse
	if err := resp.Decode(&decoded); err != nil {
		metrics.AuthFailures.WithLabelValues("transport").Inc()
		return &LoginRequestError{Err: err}
	}

	if decoded.Login.Result != "Success" {
		metrics.AuthFailures.WithLabelValues("rejected").Inc()
		result := decoded.Login.Result
		if result == "" {
			result = "unknown"
		}
		return &LoginRejectedError{Result: result, Reason: decoded.Login.Reason}
	}

	credential := sessionCredential(resp.Header.Values("Set-Cookie"))
	if credential == "" {
		c.logger.Warn("Login succeeded but response carried no session cookie; continuing unauthenticated",
			"username", username)
		return nil
	}

	c.session.Set(credential)
	c.logger.Info("Bot login successful", "username", username)

	return nil
}

// sessionCredential reduces the login response's Set-Cookie headers to the
// cookie-pair string replayed on subsequent requests.
func sessionCredential(setCookies []string) string {
	pairs := make([]string, 0, len(setCookies))
	for _, sc := range setCookies {
		// Keep only the name=value pair; attributes like Path and
		// HttpOnly are not part of the Cookie header.
		pair, _, _ := strings.Cut(sc, ";")
		pair = strings.TrimSpace(pair)
		if pair != "" {
			pairs = append(pairs, pair)
		}
	}
	return strings.Join(pairs, "; ")
}
