package githubapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra/githubapi"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/testutil"
)

func TestMapRepository(t *testing.T) {
	t.Run("explicit fields are passed through", func(t *testing.T) {
		pushed := github.Timestamp{Time: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
		repo := &github.Repository{
			Name:          github.String("demo"),
			FullName:      github.String("alice/demo"),
			Private:       github.Bool(true),
			Visibility:    github.String("internal"),
			DefaultBranch: github.String("develop"),
			PushedAt:      &pushed,
			Owner:         &github.User{Login: github.String("alice")},
		}

		summary := githubapi.MapRepositoryForTest(repo)
		gt.V(t, summary.Name).Equal("demo")
		gt.V(t, summary.Owner).Equal("alice")
		gt.V(t, summary.FullName).Equal("alice/demo")
		gt.V(t, summary.Private).Equal(true)
		gt.V(t, summary.Visibility).Equal("internal")
		gt.V(t, summary.DefaultBranch).Equal("develop")
		gt.V(t, summary.PushedAt.Equal(pushed.Time)).Equal(true)
	})

	t.Run("visibility defaults from private flag", func(t *testing.T) {
		private := githubapi.MapRepositoryForTest(&github.Repository{Private: github.Bool(true)})
		gt.V(t, private.Visibility).Equal("private")

		public := githubapi.MapRepositoryForTest(&github.Repository{Private: github.Bool(false)})
		gt.V(t, public.Visibility).Equal("public")
	})

	t.Run("default branch falls back to main", func(t *testing.T) {
		summary := githubapi.MapRepositoryForTest(&github.Repository{})
		gt.V(t, summary.DefaultBranch).Equal("main")
	})

	t.Run("pushedAt falls back to updatedAt then nil", func(t *testing.T) {
		updated := github.Timestamp{Time: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
		withUpdate := githubapi.MapRepositoryForTest(&github.Repository{UpdatedAt: &updated})
		gt.V(t, withUpdate.PushedAt.Equal(updated.Time)).Equal(true)

		without := githubapi.MapRepositoryForTest(&github.Repository{})
		gt.V(t, without.PushedAt == nil).Equal(true)
	})

	t.Run("missing owner becomes unknown", func(t *testing.T) {
		summary := githubapi.MapRepositoryForTest(&github.Repository{})
		gt.V(t, summary.Owner).Equal("unknown")
	})
}

func TestMapPackages(t *testing.T) {
	packages := []*github.Package{
		{
			Name:       github.String("app"),
			Visibility: github.String("private"),
			Owner:      &github.User{Login: github.String("acme")},
		},
		{
			Name:       github.String("tool"),
			Visibility: github.String("public"),
		},
	}

	summaries := githubapi.MapPackagesForTest(packages, "fallback-org")
	gt.V(t, len(summaries)).Equal(2)
	gt.V(t, summaries[0].Owner).Equal("acme")
	gt.V(t, summaries[0].Key()).Equal("acme/app")
	gt.V(t, summaries[1].Owner).Equal("fallback-org")
}

func TestWrapAPIError(t *testing.T) {
	t.Run("scopes default to unknown without header", func(t *testing.T) {
		resp := &github.Response{Response: &http.Response{
			StatusCode: http.StatusForbidden,
			Header:     http.Header{},
		}}
		err := githubapi.WrapAPIErrorForTest(goerr.New("boom"), resp, "/user/orgs")

		goErr := goerr.Unwrap(err)
		gt.V(t, goErr != nil).Equal(true)
		values := goErr.Values()
		gt.V(t, values["scopes"]).Equal("unknown")
		gt.V(t, values["status_code"]).Equal(http.StatusForbidden)
		gt.V(t, values["endpoint"]).Equal("/user/orgs")
	})

	t.Run("scopes taken from response header", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-OAuth-Scopes", "repo, read:org")
		resp := &github.Response{Response: &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     header,
		}}
		err := githubapi.WrapAPIErrorForTest(goerr.New("boom"), resp, "/repos/a/b")

		goErr := goerr.Unwrap(err)
		gt.V(t, goErr != nil).Equal(true)
		gt.V(t, goErr.Values()["scopes"]).Equal("repo, read:org")
	})
}

func TestListOrgsAgainstLocalServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/orgs", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"login":"acme"},{"login":"widgets"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := githubapi.New(githubapi.WithBaseURL(srv.URL + "/"))

	orgs, err := client.ListOrgs(context.Background(), types.GitHubToken("test-token"))
	gt.NoError(t, err)
	gt.V(t, orgs).Equal([]string{"acme", "widgets"})
}

func TestListUserReposLive(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "ORCHESTRATOR_TEST_GITHUB_TOKEN")

	client := githubapi.New()
	repos, err := client.ListUserRepos(context.Background(), types.GitHubToken(token))
	gt.NoError(t, err)

	for _, repo := range repos {
		gt.V(t, repo.FullName).Equal(repo.Owner + "/" + repo.Name)
		gt.V(t, repo.DefaultBranch != "").Equal(true)
	}
}
