/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import "github.com/orien/spektate/internal/repository"

// NewTestBuild creates a Build for testing purposes
func NewTestBuild(commit string, ref repository.Reference) *Build {
	return &Build{
		BuildID:       "1",
		BuildNumber:   "20250115.1",
		SourceBranch:  "main",
		SourceVersion: commit,
		Repository:    ref,
		Result:        "succeeded",
	}
}

// NewTestDeployment creates a Deployment with both builds populated
func NewTestDeployment(srcCommit, hldCommit string, ref repository.Reference) *Deployment {
	return &Deployment{
		DeploymentID:       "deploy-1",
		Service:            "hello-world",
		Environment:        "dev",
		ImageTag:           "hello-world-main-1",
		SrcToDockerBuild:   NewTestBuild(srcCommit, ref),
		HLDToManifestBuild: NewTestBuild(hldCommit, ref),
	}
}
