package clerkauth

import (
	"context"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwks"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
)

// githubProvider is Clerk's identifier for a linked GitHub OAuth account.
const githubProvider = "oauth_github"

// Client resolves Clerk session tokens into principals with a linked GitHub
// identity. Session verification happens locally against the instance JWKS;
// user and OAuth token lookups hit the Clerk backend API.
type Client struct {
	jwksClient *jwks.Client
	userClient *user.Client
}

var _ interfaces.IdentityClient = (*Client)(nil)

func New(secretKey types.ClerkSecretKey) (*Client, error) {
	if secretKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "clerk secret key is empty")
	}

	config := &clerk.ClientConfig{
		BackendConfig: clerk.BackendConfig{
			Key: clerk.String(string(secretKey)),
		},
	}

	return &Client{
		jwksClient: jwks.NewClient(config),
		userClient: user.NewClient(config),
	}, nil
}

// Authenticate verifies the session token and resolves the linked GitHub
// identity. An unverifiable session yields types.ErrNoSession; a valid
// session without a GitHub login or OAuth token yields
// types.ErrIdentityUnlinked with detail the user can act on.
func (x *Client) Authenticate(ctx context.Context, sessionToken string) (*model.Principal, error) {
	if sessionToken == "" {
		return nil, goerr.Wrap(types.ErrNoSession, "missing session token")
	}

	claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
		Token:      sessionToken,
		JWKSClient: x.jwksClient,
	})
	if err != nil {
		return nil, goerr.Wrap(types.ErrNoSession, "session token verification failed")
	}

	usr, err := x.userClient.Get(ctx, claims.Subject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch clerk user",
			goerr.V("user_id", claims.Subject),
		)
	}

	login := githubLogin(usr)
	if login == "" {
		return nil, goerr.Wrap(types.ErrIdentityUnlinked,
			"no GitHub username available in the user profile, sign in with GitHub",
			goerr.V("user_id", usr.ID),
		)
	}

	token, err := x.githubAccessToken(ctx, usr.ID)
	if err != nil {
		return nil, err
	}

	return &model.Principal{
		UserID: usr.ID,
		Login:  login,
		Token:  token,
	}, nil
}

// githubLogin picks the GitHub account username if one is linked, falling
// back to the profile username.
func githubLogin(usr *clerk.User) string {
	for _, account := range usr.ExternalAccounts {
		if account == nil || account.Provider != githubProvider {
			continue
		}
		if account.Username != nil && *account.Username != "" {
			return *account.Username
		}
	}
	if usr.Username != nil {
		return *usr.Username
	}
	return ""
}

func (x *Client) githubAccessToken(ctx context.Context, userID string) (types.GitHubToken, error) {
	tokens, err := x.userClient.ListOAuthAccessTokens(ctx, &user.ListOAuthAccessTokensParams{
		ID:       userID,
		Provider: githubProvider,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch GitHub OAuth token from clerk",
			goerr.V("user_id", userID),
		)
	}

	if len(tokens.OAuthAccessTokens) == 0 || tokens.OAuthAccessTokens[0].Token == "" {
		return "", goerr.Wrap(types.ErrIdentityUnlinked,
			"no GitHub OAuth token found, reconnect GitHub and ensure the read:packages scope is granted",
			goerr.V("user_id", userID),
		)
	}

	return types.GitHubToken(tokens.OAuthAccessTokens[0].Token), nil
}
