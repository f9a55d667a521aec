package model

import "time"

// RepositorySummary is the control panel's view of one GitHub repository.
// Derived 1:1 from the API record; the mapping applies the defaulting rules
// (visibility from the private flag, default branch "main", pushedAt falling
// back to the update timestamp).
type RepositorySummary struct {
	Name          string     `json:"name"`
	Owner         string     `json:"owner"`
	FullName      string     `json:"fullName"`
	Private       bool       `json:"private"`
	Visibility    string     `json:"visibility"`
	DefaultBranch string     `json:"defaultBranch"`
	PushedAt      *time.Time `json:"pushedAt"`
}

// ContainerPackageSummary is one GHCR container package, keyed uniquely by
// Owner/Name across all owners the principal can see.
type ContainerPackageSummary struct {
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
	Owner      string `json:"owner"`
}

func (x *ContainerPackageSummary) Key() string {
	return x.Owner + "/" + x.Name
}
