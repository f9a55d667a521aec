package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/errutil"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("fail to write response", slog.Any("error", err))
	}
}

// respondError maps domain failures onto the HTTP contract. Authorization
// failures stay generic so the response does not reveal whether the
// owner or repository exists; operator-facing failures (dispatch config)
// are verbose because an unprivileged caller cannot trigger them.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNoSession):
		respondJSON(ctx, w, http.StatusUnauthorized, errorResponse{
			Error: "unauthorized",
		})

	case errors.Is(err, types.ErrIdentityUnlinked):
		respondJSON(ctx, w, http.StatusForbidden, errorResponse{
			Error:  "GitHub identity missing in user profile",
			Detail: err.Error(),
		})

	case errors.Is(err, types.ErrValidationFailed):
		respondJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:  "invalid request",
			Detail: errValues(err)["fields"],
		})

	case errors.Is(err, types.ErrOwnerForbidden):
		respondJSON(ctx, w, http.StatusForbidden, errorResponse{
			Error: "owner is not accessible for the signed-in user",
		})

	case errors.Is(err, types.ErrRepoNotAccessible):
		respondJSON(ctx, w, http.StatusForbidden, errorResponse{
			Error:  "repository is not accessible",
			Detail: errValues(err)["detail"],
		})

	case errors.Is(err, types.ErrDispatchConfig):
		errutil.HandleError(ctx, "deploy dispatch configuration is missing", err)
		respondJSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Error: "missing deploy configuration, set DEPLOY_REPO_OWNER, DEPLOY_REPO_NAME, and DEPLOY_GITHUB_TOKEN",
			Detail: map[string]any{
				"missing": errValues(err)["missing"],
				"aliases": errValues(err)["aliases"],
			},
		})

	case errors.Is(err, types.ErrDispatchRejected):
		errutil.HandleError(ctx, "workflow dispatch rejected by upstream", err)
		respondJSON(ctx, w, http.StatusBadGateway, errorResponse{
			Error:  "failed to start deploy workflow",
			Detail: errValues(err)["detail"],
		})

	default:
		errutil.HandleError(ctx, "upstream request failed", err)
		respondJSON(ctx, w, http.StatusBadGateway, errorResponse{
			Error:  "upstream request failed",
			Detail: err.Error(),
		})
	}
}

func errValues(err error) map[string]any {
	if goErr := goerr.Unwrap(err); goErr != nil {
		return goErr.Values()
	}
	return nil
}
