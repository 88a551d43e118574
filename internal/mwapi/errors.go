package mwapi

import "fmt"

// ConfigurationError indicates malformed or partial startup configuration,
// such as a bot username without a password.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// TransportError indicates a network-level failure before any upstream
// response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError indicates a non-success transport status on an upstream call.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.StatusCode)
}

// TokenFetchError indicates the token request for a mutating operation did
// not complete successfully.
type TokenFetchError struct {
	TokenType TokenType
	Op        string
	Err       error
}

func (e *TokenFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s token for %s: %v", e.TokenType, e.Op, e.Err)
}

func (e *TokenFetchError) Unwrap() error { return e.Err }

// TokenMissingError indicates a successful token response that lacks the
// expected token field.
type TokenMissingError struct {
	TokenType TokenType
	Op        string
}

func (e *TokenMissingError) Error() string {
	return fmt.Sprintf("no %s token in response for %s", e.TokenType, e.Op)
}

// LoginRequestError indicates the credentialed login request itself failed
// at the transport level.
type LoginRequestError struct {
	StatusCode int
	Err        error
}

func (e *LoginRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login request failed: %v", e.Err)
	}
	return fmt.Sprintf("login request failed with status %d", e.StatusCode)
}

func (e *LoginRequestError) Unwrap() error { return e.Err }

// LoginRejectedError indicates the upstream processed the login request but
// did not report success.
type LoginRejectedError struct {
	Result string
	Reason string
}

func (e *LoginRejectedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("login rejected: %s - %s", e.Result, e.Reason)
	}
	return fmt.Sprintf("login rejected: %s", e.Result)
}
