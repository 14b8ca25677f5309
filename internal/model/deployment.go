/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"time"

	"github.com/orien/spektate/internal/repository"
)

// Build represents one pipeline run that contributed to a deployment
type Build struct {
	BuildID       string
	BuildNumber   string
	SourceBranch  string
	SourceVersion string // commit hash the build ran against
	Repository    repository.Reference
	Result        string
	Status        string
	URL           string
	StartTime     *time.Time
	FinishTime    *time.Time
}

// Deployment is a tracked promotion of a build artifact from source through HLD to manifest
type Deployment struct {
	DeploymentID     string
	Service          string
	Environment      string
	ImageTag         string
	CommitID         string
	HLDCommitID      string
	ManifestCommitID string

	SourceRepo   string
	HLDRepo      string
	ManifestRepo string

	SrcToDockerBuild   *Build
	HLDToManifestBuild *Build

	Timestamp *time.Time
}

// SrcSourceVersion returns the commit of the source-to-docker build, or "" when absent
func (d *Deployment) SrcSourceVersion() string {
	if d.SrcToDockerBuild == nil {
		return ""
	}
	return d.SrcToDockerBuild.SourceVersion
}

// HLDSourceVersion returns the commit of the HLD-to-manifest build, or "" when absent
func (d *Deployment) HLDSourceVersion() string {
	if d.HLDToManifestBuild == nil {
		return ""
	}
	return d.HLDToManifestBuild.SourceVersion
}

// SrcRepository returns the repository of the source-to-docker build, or nil when absent
func (d *Deployment) SrcRepository() repository.Reference {
	if d.SrcToDockerBuild == nil {
		return nil
	}
	return d.SrcToDockerBuild.Repository
}

// HLDRepository returns the repository of the HLD-to-manifest build, or nil when absent
func (d *Deployment) HLDRepository() repository.Reference {
	if d.HLDToManifestBuild == nil {
		return nil
	}
	return d.HLDToManifestBuild.Repository
}

// Name returns a human-readable identifier for the deployment
func (d *Deployment) Name() string {
	switch {
	case d.DeploymentID != "":
		return d.DeploymentID
	case d.Service != "" && d.Environment != "":
		return d.Service + "/" + d.Environment
	case d.Service != "":
		return d.Service
	default:
		return "(unnamed deployment)"
	}
}
