package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrNoSession means the request carried no verifiable session at all.
	ErrNoSession = goerr.New("no active session")

	// ErrIdentityUnlinked means a session exists but no GitHub identity is
	// linked to it. Unlike ErrNoSession the detail is actionable by the user.
	ErrIdentityUnlinked = goerr.New("no linked GitHub identity")

	ErrOwnerForbidden    = goerr.New("owner is not accessible for the signed-in user")
	ErrRepoNotAccessible = goerr.New("repository is not accessible")

	ErrDispatchConfig   = goerr.New("missing deploy dispatch configuration")
	ErrDispatchRejected = goerr.New("failed to start deploy workflow")
)
