/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnrecognizedURL is returned when a URL does not belong to a supported host
	ErrUnrecognizedURL = errors.New("repository URL not recognized")

	// ErrUnknownKind is returned for a repository kind outside azdo, github and gitlab
	ErrUnknownKind = errors.New("unknown repository kind")
)

// Kind identifies the repository host
type Kind string

const (
	KindAzureDevOps Kind = "azdo"
	KindGitHub      Kind = "github"
	KindGitLab      Kind = "gitlab"
)

// ParseKind converts a textual kind to a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAzureDevOps, KindGitHub, KindGitLab:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Reference points at a repository on one of the supported hosts.
// It is implemented by AzureDevOps, GitHub and GitLab only.
type Reference interface {
	Kind() Kind
	// Key is stable and unique across kinds, suitable as a cache key
	Key() string
	String() string
	reference()
}

// AzureDevOps identifies a repository in an Azure DevOps project
type AzureDevOps struct {
	Org     string
	Project string
	Repo    string
}

// GitHub identifies a repository on GitHub
type GitHub struct {
	Username string
	Reponame string
}

// GitLab identifies a GitLab project, either by numeric ID or by namespaced path
type GitLab struct {
	ProjectID string
}

func (AzureDevOps) Kind() Kind { return KindAzureDevOps }
func (GitHub) Kind() Kind      { return KindGitHub }
func (GitLab) Kind() Kind      { return KindGitLab }

func (r AzureDevOps) Key() string { return fmt.Sprintf("azdo:%s/%s/%s", r.Org, r.Project, r.Repo) }
func (r GitHub) Key() string      { return fmt.Sprintf("github:%s/%s", r.Username, r.Reponame) }
func (r GitLab) Key() string      { return fmt.Sprintf("gitlab:%s", r.ProjectID) }

func (r AzureDevOps) String() string { return fmt.Sprintf("%s/%s/%s", r.Org, r.Project, r.Repo) }
func (r GitHub) String() string      { return fmt.Sprintf("%s/%s", r.Username, r.Reponame) }
func (r GitLab) String() string      { return r.ProjectID }

func (AzureDevOps) reference() {}
func (GitHub) reference()      {}
func (GitLab) reference()      {}
