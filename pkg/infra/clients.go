package infra

import (
	"net/http"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
)

type Clients struct {
	githubClient   interfaces.GitHubClient
	identityClient interfaces.IdentityClient
	httpClient     HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) Identity() interfaces.IdentityClient {
	return x.identityClient
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithIdentity(client interfaces.IdentityClient) Option {
	return func(x *Clients) {
		x.identityClient = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
