package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/controller/server"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/mock"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/usecase"
)

func testIdentity() *mock.IdentityClientMock {
	return &mock.IdentityClientMock{
		AuthenticateFunc: func(ctx context.Context, sessionToken string) (*model.Principal, error) {
			if sessionToken == "" {
				return nil, goerr.Wrap(types.ErrNoSession, "missing session token")
			}
			return &model.Principal{
				UserID: "user_123",
				Login:  "alice",
				Token:  types.GitHubToken("gho_test"),
			}, nil
		},
	}
}

func testGitHub() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		ListOrgsFunc: func(ctx context.Context, token types.GitHubToken) ([]string, error) {
			return []string{"acme"}, nil
		},
		ListUserReposFunc: func(ctx context.Context, token types.GitHubToken) ([]*model.RepositorySummary, error) {
			return []*model.RepositorySummary{
				{Name: "b", Owner: "z", FullName: "z/b", Visibility: "public", DefaultBranch: "main"},
				{Name: "a", Owner: "a", FullName: "a/a", Visibility: "private", DefaultBranch: "main"},
			}, nil
		},
		ListUserPackagesFunc: func(ctx context.Context, token types.GitHubToken) ([]*model.ContainerPackageSummary, error) {
			return []*model.ContainerPackageSummary{
				{Name: "app", Visibility: "private", Owner: "alice"},
			}, nil
		},
		ListOrgPackagesFunc: func(ctx context.Context, token types.GitHubToken, org string) ([]*model.ContainerPackageSummary, error) {
			return nil, nil
		},
		ListPackageVersionTagsFunc: func(ctx context.Context, token types.GitHubToken, owner, pkg string, userScoped bool) ([][]string, error) {
			return [][]string{{"latest", "v2"}, {"v2", "v1"}}, nil
		},
		GetRepoFunc: func(ctx context.Context, token types.GitHubToken, owner, repo string) error {
			return nil
		},
		DispatchWorkflowFunc: func(ctx context.Context, cfg *model.DispatchConfig, inputs map[string]string) error {
			return nil
		},
	}
}

func newTestServer(ghMock *mock.GitHubClientMock, envLookup func(string) string) *server.Server {
	if envLookup == nil {
		env := map[string]string{
			"DEPLOY_REPO_OWNER":   "infra-org",
			"DEPLOY_REPO_NAME":    "deploy-repo",
			"DEPLOY_GITHUB_TOKEN": "ghp_dispatch",
		}
		envLookup = func(key string) string { return env[key] }
	}

	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)), usecase.WithEnvLookup(envLookup))
	return server.New(uc, server.WithIdentity(testIdentity()))
}

func doRequest(srv *server.Server, method, path string, body []byte, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer session-token")
	}

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodGet, "/health", nil, false)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("API without session returns 401 with generic body", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodGet, "/api/github/repos", nil, false)
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["error"]).Equal("unauthorized")
		gt.V(t, body["detail"]).Equal(nil)
	})

	t.Run("unlinked identity returns 403 with detail", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(testGitHub())))
		identity := &mock.IdentityClientMock{
			AuthenticateFunc: func(ctx context.Context, sessionToken string) (*model.Principal, error) {
				return nil, goerr.Wrap(types.ErrIdentityUnlinked, "no GitHub username available")
			},
		}
		srv := server.New(uc, server.WithIdentity(identity))

		rec := doRequest(srv, http.MethodGet, "/api/github/repos", nil, true)
		gt.V(t, rec.Code).Equal(http.StatusForbidden)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["detail"] != nil).Equal(true)
	})
}

func TestListReposEndpoint(t *testing.T) {
	srv := newTestServer(testGitHub(), nil)

	rec := doRequest(srv, http.MethodGet, "/api/github/repos", nil, true)
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var body struct {
		GitHubLogin string                     `json:"githubLogin"`
		Repos       []*model.RepositorySummary `json:"repos"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.V(t, body.GitHubLogin).Equal("alice")
	gt.V(t, len(body.Repos)).Equal(2)
	gt.V(t, body.Repos[0].FullName).Equal("a/a")
	gt.V(t, body.Repos[1].FullName).Equal("z/b")
}

func TestListPackagesEndpoint(t *testing.T) {
	srv := newTestServer(testGitHub(), nil)

	rec := doRequest(srv, http.MethodGet, "/api/ghcr/packages", nil, true)
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var body struct {
		GitHubLogin string                           `json:"githubLogin"`
		Packages    []*model.ContainerPackageSummary `json:"packages"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.V(t, body.GitHubLogin).Equal("alice")
	gt.V(t, len(body.Packages)).Equal(1)
	gt.V(t, body.Packages[0].Name).Equal("app")
}

func TestListTagsEndpoint(t *testing.T) {
	t.Run("missing package parameter returns 400", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodGet, "/api/ghcr/tags", nil, true)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("owner defaults to the signed-in login", func(t *testing.T) {
		ghMock := testGitHub()
		srv := newTestServer(ghMock, nil)

		rec := doRequest(srv, http.MethodGet, "/api/ghcr/tags?package=app", nil, true)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := ghMock.ListPackageVersionTagsCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Owner).Equal("alice")
		gt.True(t, calls[0].UserScoped)

		var body struct {
			Package string   `json:"package"`
			Tags    []string `json:"tags"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body.Package).Equal("app")
		gt.V(t, body.Tags).Equal([]string{"latest", "v2", "v1"})
	})

	t.Run("inaccessible owner returns 403", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodGet, "/api/ghcr/tags?package=app&owner=bob", nil, true)
		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})
}

func TestDeployEndpoint(t *testing.T) {
	validBody := []byte(`{"appSlug":"my-app","internalPort":3000,"sourceOwner":"alice","sourceRepo":"demo","sourceRef":"main"}`)

	t.Run("valid deploy returns queued with workflow URL", func(t *testing.T) {
		ghMock := testGitHub()
		srv := newTestServer(ghMock, nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy", validBody, true)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var body model.DeployResult
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body.Status).Equal("queued")
		gt.V(t, body.WorkflowURL).Equal("https://github.com/infra-org/deploy-repo/actions/workflows/deploy-app-from-ui.yml")

		calls := ghMock.DispatchWorkflowCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Inputs["internal_port"]).Equal("3000")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy", []byte(`{not json`), true)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("constraint violation returns 400 with field detail", func(t *testing.T) {
		srv := newTestServer(testGitHub(), nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy",
			[]byte(`{"appSlug":"my-app","internalPort":0,"sourceOwner":"alice","sourceRepo":"demo","sourceRef":"main"}`), true)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["detail"] != nil).Equal(true)
	})

	t.Run("inaccessible owner returns 403 without dispatch", func(t *testing.T) {
		ghMock := testGitHub()
		srv := newTestServer(ghMock, nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy",
			[]byte(`{"appSlug":"my-app","internalPort":3000,"sourceOwner":"bob","sourceRepo":"demo","sourceRef":"main"}`), true)
		gt.V(t, rec.Code).Equal(http.StatusForbidden)
		gt.V(t, len(ghMock.DispatchWorkflowCalls())).Equal(0)
	})

	t.Run("unreachable repository returns 403", func(t *testing.T) {
		ghMock := testGitHub()
		ghMock.GetRepoFunc = func(ctx context.Context, token types.GitHubToken, owner, repo string) error {
			return goerr.New("404 not found")
		}
		srv := newTestServer(ghMock, nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy", validBody, true)
		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("missing dispatch config returns 500 naming keys", func(t *testing.T) {
		srv := newTestServer(testGitHub(), func(string) string { return "" })

		rec := doRequest(srv, http.MethodPost, "/api/deploy", validBody, true)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		detail := body["detail"].(map[string]any)
		gt.V(t, detail["missing"] != nil).Equal(true)
	})

	t.Run("upstream rejection returns 502", func(t *testing.T) {
		ghMock := testGitHub()
		ghMock.DispatchWorkflowFunc = func(ctx context.Context, cfg *model.DispatchConfig, inputs map[string]string) error {
			return goerr.Wrap(types.ErrDispatchRejected, "workflow dispatch request failed",
				goerr.V("detail", "upstream body"),
			)
		}
		srv := newTestServer(ghMock, nil)

		rec := doRequest(srv, http.MethodPost, "/api/deploy", validBody, true)
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["detail"]).Equal("upstream body")
	})
}
