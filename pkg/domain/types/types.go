package types

import "log/slog"

type (
	// GitHubToken is a per-user OAuth access token obtained from the
	// identity provider. It authenticates all read calls to the GitHub API.
	GitHubToken string

	// DispatchToken authenticates workflow-dispatch calls against the CI
	// repository. It is operator-provided and unrelated to user tokens.
	DispatchToken string

	// ClerkSecretKey is the backend API key for the Clerk instance.
	ClerkSecretKey string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x DispatchToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DispatchToken) String() string {
	return "***********"
}

func (x ClerkSecretKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ClerkSecretKey) String() string {
	return "***********"
}
