/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ErrNotCloneable is returned when a reference carries no path that can be cloned
var ErrNotCloneable = errors.New("repository reference cannot be cloned")

var numericProjectID = regexp.MustCompile(`^[0-9]+$`)

// ParseURL converts an HTTPS or SSH repository URL into a Reference
func ParseURL(raw string) (Reference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty URL", ErrUnrecognizedURL)
	}

	endpoint, err := transport.NewEndpoint(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnrecognizedURL, raw, err)
	}

	host := strings.ToLower(endpoint.Host)
	path := strings.Trim(endpoint.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	segments := strings.Split(path, "/")

	switch {
	case host == "github.com" || host == "www.github.com":
		if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
			break
		}
		return GitHub{Username: segments[0], Reponame: segments[1]}, nil

	case host == "dev.azure.com":
		// {org}/{project}/_git/{repo}
		if len(segments) == 4 && segments[2] == "_git" {
			return AzureDevOps{Org: segments[0], Project: segments[1], Repo: segments[3]}, nil
		}

	case host == "ssh.dev.azure.com":
		// v3/{org}/{project}/{repo}
		if len(segments) == 4 && segments[0] == "v3" {
			return AzureDevOps{Org: segments[1], Project: segments[2], Repo: segments[3]}, nil
		}

	case strings.HasSuffix(host, ".visualstudio.com"):
		org := strings.TrimSuffix(host, ".visualstudio.com")
		if len(segments) > 0 && strings.EqualFold(segments[0], "DefaultCollection") {
			segments = segments[1:]
		}
		if len(segments) == 3 && segments[1] == "_git" {
			return AzureDevOps{Org: org, Project: segments[0], Repo: segments[2]}, nil
		}

	case host == "gitlab.com" || strings.HasPrefix(host, "gitlab."):
		if len(segments) >= 2 && segments[0] != "" {
			return GitLab{ProjectID: path}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedURL, raw)
}

// URLParser resolves repository URLs into references
type URLParser struct{}

// ResolveURL parses raw into a Reference
func (URLParser) ResolveURL(raw string) (Reference, error) {
	return ParseURL(raw)
}

// Hosts overrides the hostnames used to build clone URLs
type Hosts struct {
	AzureDevOps string
	GitHub      string
	GitLab      string
}

// DefaultHosts returns the public SaaS hostnames
func DefaultHosts() Hosts {
	return Hosts{
		AzureDevOps: "dev.azure.com",
		GitHub:      "github.com",
		GitLab:      "gitlab.com",
	}
}

// CloneURL builds the HTTPS clone URL for ref
func CloneURL(ref Reference, hosts Hosts) (string, error) {
	defaults := DefaultHosts()

	switch r := ref.(type) {
	case AzureDevOps:
		host := orDefault(hosts.AzureDevOps, defaults.AzureDevOps)
		return fmt.Sprintf("https://%s/%s/%s/_git/%s", host, r.Org, r.Project, r.Repo), nil
	case GitHub:
		host := orDefault(hosts.GitHub, defaults.GitHub)
		return fmt.Sprintf("https://%s/%s/%s.git", host, r.Username, r.Reponame), nil
	case GitLab:
		if r.ProjectID == "" || numericProjectID.MatchString(r.ProjectID) {
			return "", fmt.Errorf("%w: gitlab project %q has no path", ErrNotCloneable, r.ProjectID)
		}
		host := orDefault(hosts.GitLab, defaults.GitLab)
		return fmt.Sprintf("https://%s/%s.git", host, r.ProjectID), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownKind, ref)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
