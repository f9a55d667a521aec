package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
)

func handleListRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := principalFrom(r.Context())

		repos, err := uc.ListRepositories(r.Context(), principal)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, map[string]any{
			"githubLogin": principal.Login,
			"repos":       repos,
		})
	}
}

func handleListPackages(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := principalFrom(r.Context())

		packages, err := uc.ListContainerPackages(r.Context(), principal)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, map[string]any{
			"githubLogin": principal.Login,
			"packages":    packages,
		})
	}
}

func handleListTags(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := principalFrom(r.Context())

		pkg := r.URL.Query().Get("package")
		if pkg == "" {
			respondError(r.Context(), w, goerr.Wrap(types.ErrValidationFailed,
				"missing package query parameter",
				goerr.V("fields", []string{"package: required"}),
			))
			return
		}

		owner := r.URL.Query().Get("owner")
		if owner == "" {
			owner = principal.Login
		}

		tags, err := uc.ListPackageTags(r.Context(), principal, owner, pkg)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, map[string]any{
			"package": pkg,
			"tags":    tags,
		})
	}
}

func handleDeploy(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := principalFrom(r.Context())

		var req model.DeployRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(r.Context(), w, goerr.Wrap(types.ErrValidationFailed,
				"malformed deploy payload",
				goerr.V("fields", []string{"body: must be a JSON object"}),
			))
			return
		}

		result, err := uc.Deploy(r.Context(), principal, &req)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, result)
	}
}
