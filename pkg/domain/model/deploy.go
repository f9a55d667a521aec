package model

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
)

var (
	ptnAppSlug   = regexp.MustCompile(`^[a-z0-9-]+$`)
	ptnOwnerRepo = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

const maxSourceRefLength = 120

// DeployRequest is the payload of a deploy trigger from the UI. SourceOwner,
// SourceRepo and SourceRef name the repository to build; AppSlug and
// InternalPort are forwarded to the deploy workflow as-is.
type DeployRequest struct {
	AppSlug      string `json:"appSlug"`
	InternalPort int    `json:"internalPort"`
	SourceOwner  string `json:"sourceOwner"`
	SourceRepo   string `json:"sourceRepo"`
	SourceRef    string `json:"sourceRef"`
}

// Validate checks all field constraints. It collects every violation so the
// UI can show field-level errors in one round trip.
func (x *DeployRequest) Validate() error {
	var fields []string

	if !ptnAppSlug.MatchString(x.AppSlug) || len(x.AppSlug) < 2 || len(x.AppSlug) > 63 {
		fields = append(fields, "appSlug: must be 2-63 chars of [a-z0-9-]")
	}
	if x.InternalPort < 1 || x.InternalPort > 65535 {
		fields = append(fields, "internalPort: must be an integer in [1,65535]")
	}
	if !ptnOwnerRepo.MatchString(x.SourceOwner) {
		fields = append(fields, "sourceOwner: must match [A-Za-z0-9_.-]+")
	}
	if !ptnOwnerRepo.MatchString(x.SourceRepo) {
		fields = append(fields, "sourceRepo: must match [A-Za-z0-9_.-]+")
	}
	if x.SourceRef == "" || len(x.SourceRef) > maxSourceRefLength {
		fields = append(fields, fmt.Sprintf("sourceRef: must be 1-%d chars", maxSourceRefLength))
	}

	if len(fields) > 0 {
		return goerr.Wrap(types.ErrValidationFailed, "invalid deploy payload",
			goerr.V("fields", fields),
		)
	}

	return nil
}

// DeployResult is the success response of a deploy trigger. WorkflowURL
// points at the run history of the dispatched workflow; dispatch acceptance
// is the only completion signal this system observes.
type DeployResult struct {
	Status      string `json:"status"`
	WorkflowURL string `json:"workflowUrl"`
}

// DispatchConfig names the CI repository, workflow and credential used to
// trigger deploys. It is entirely distinct from the source repository being
// deployed.
type DispatchConfig struct {
	RepoOwner    string
	RepoName     string
	WorkflowFile string
	WorkflowRef  string
	Token        types.DispatchToken `masq:"secret"`
}

func (x *DispatchConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("repo_owner", x.RepoOwner),
		slog.String("repo_name", x.RepoName),
		slog.String("workflow_file", x.WorkflowFile),
		slog.String("workflow_ref", x.WorkflowRef),
		slog.Int("token.len", len(x.Token)),
	)
}

// Missing returns the canonical names of required fields that are not set.
func (x *DispatchConfig) Missing() []string {
	var missing []string
	if x.RepoOwner == "" {
		missing = append(missing, "DEPLOY_REPO_OWNER")
	}
	if x.RepoName == "" {
		missing = append(missing, "DEPLOY_REPO_NAME")
	}
	if x.Token == "" {
		missing = append(missing, "DEPLOY_GITHUB_TOKEN")
	}
	return missing
}

// Validate fails when the CI repository or credential cannot be resolved.
// The error names exactly the missing keys and the accepted aliases: this is
// an operator-facing error and must never silently fall back to a guessable
// CI repository.
func (x *DispatchConfig) Validate() error {
	if missing := x.Missing(); len(missing) > 0 {
		return goerr.Wrap(types.ErrDispatchConfig,
			"set DEPLOY_REPO_OWNER, DEPLOY_REPO_NAME, and DEPLOY_GITHUB_TOKEN",
			goerr.V("missing", missing),
			goerr.V("aliases", "DEPLOY_REPOSITORY (owner/name), GITHUB_REPOSITORY, GITHUB_TOKEN, GH_TOKEN"),
		)
	}
	return nil
}

// WorkflowURL is the public run-history page of the configured workflow.
func (x *DispatchConfig) WorkflowURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/actions/workflows/%s",
		x.RepoOwner, x.RepoName, x.WorkflowFile)
}

const (
	DefaultWorkflowFile = "deploy-app-from-ui.yml"
	DefaultWorkflowRef  = "main"
)

// ResolveDispatchConfig builds a DispatchConfig from an ordered list of
// environment aliases, first non-blank wins. The lookup function is injected
// so resolution is testable without touching the process environment.
// A combined "owner/name" variable fills whichever of owner/name is not set
// by a dedicated variable; malformed combined values are ignored.
func ResolveDispatchConfig(lookup func(string) string) *DispatchConfig {
	first := func(keys ...string) string {
		for _, key := range keys {
			if v := strings.TrimSpace(lookup(key)); v != "" {
				return v
			}
		}
		return ""
	}

	owner := first("DEPLOY_REPO_OWNER", "GITHUB_REPOSITORY_OWNER", "REPO_OWNER")
	name := first("DEPLOY_REPO_NAME", "GITHUB_REPOSITORY_NAME", "REPO_NAME")

	if owner == "" || name == "" {
		if combined := first("DEPLOY_REPOSITORY", "GITHUB_REPOSITORY"); combined != "" {
			if parts := strings.Split(combined, "/"); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
				if owner == "" {
					owner = parts[0]
				}
				if name == "" {
					name = parts[1]
				}
			}
		}
	}

	workflowFile := first("DEPLOY_WORKFLOW_FILE")
	if workflowFile == "" {
		workflowFile = DefaultWorkflowFile
	}
	workflowRef := first("DEPLOY_WORKFLOW_REF")
	if workflowRef == "" {
		workflowRef = DefaultWorkflowRef
	}

	return &DispatchConfig{
		RepoOwner:    owner,
		RepoName:     name,
		WorkflowFile: workflowFile,
		WorkflowRef:  workflowRef,
		Token:        types.DispatchToken(first("DEPLOY_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN")),
	}
}
