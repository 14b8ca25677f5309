/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"testing"

	"github.com/orien/spektate/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestDeployment_AccessorsOnMissingBuilds(t *testing.T) {
	d := &Deployment{}

	assert.Equal(t, "", d.SrcSourceVersion())
	assert.Equal(t, "", d.HLDSourceVersion())
	assert.Nil(t, d.SrcRepository())
	assert.Nil(t, d.HLDRepository())
}

func TestDeployment_AccessorsOnPopulatedBuilds(t *testing.T) {
	ref := repository.GitHub{Username: "contoso", Reponame: "app"}
	d := NewTestDeployment("src-commit", "hld-commit", ref)

	assert.Equal(t, "src-commit", d.SrcSourceVersion())
	assert.Equal(t, "hld-commit", d.HLDSourceVersion())
	assert.Equal(t, ref, d.SrcRepository())
	assert.Equal(t, ref, d.HLDRepository())
}

func TestDeployment_Name(t *testing.T) {
	assert.Equal(t, "deploy-1", (&Deployment{DeploymentID: "deploy-1", Service: "svc"}).Name())
	assert.Equal(t, "svc/prod", (&Deployment{Service: "svc", Environment: "prod"}).Name())
	assert.Equal(t, "svc", (&Deployment{Service: "svc"}).Name())
	assert.Equal(t, "(unnamed deployment)", (&Deployment{}).Name())
}
