/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/orien/spektate/internal/repository"
	"gopkg.in/yaml.v3"
)

// ErrNoDeployments is returned when a deployment file holds no deployments
var ErrNoDeployments = errors.New("no deployments found")

// deploymentsFile represents a YAML or JSON document listing deployments
type deploymentsFile struct {
	Deployments []*deploymentDocument `yaml:"deployments"`
}

// deploymentDocument represents a deployment as it appears in a file
type deploymentDocument struct {
	DeploymentID     string         `yaml:"deploymentId"`
	Service          string         `yaml:"service"`
	Environment      string         `yaml:"environment"`
	ImageTag         string         `yaml:"imageTag"`
	CommitID         string         `yaml:"commitId"`
	HLDCommitID      string         `yaml:"hldCommitId"`
	ManifestCommitID string         `yaml:"manifestCommitId"`
	SourceRepo       string         `yaml:"sourceRepo"`
	HLDRepo          string         `yaml:"hldRepo"`
	ManifestRepo     string         `yaml:"manifestRepo"`
	SrcToDockerBuild *buildDocument `yaml:"srcToDockerBuild"`
	HLDToManifest    *buildDocument `yaml:"hldToManifestBuild"`
	Timestamp        *time.Time     `yaml:"timestamp"`
}

// buildDocument represents a build as it appears in a file
type buildDocument struct {
	BuildID       string              `yaml:"id"`
	BuildNumber   string              `yaml:"buildNumber"`
	SourceBranch  string              `yaml:"sourceBranch"`
	SourceVersion string              `yaml:"sourceVersion"`
	Repository    *repositoryDocument `yaml:"repository"`
	Result        string              `yaml:"result"`
	Status        string              `yaml:"status"`
	URL           string              `yaml:"url"`
	StartTime     *time.Time          `yaml:"startTime"`
	FinishTime    *time.Time          `yaml:"finishTime"`
}

// repositoryDocument is either a repository URL or a mapping tagged by kind
type repositoryDocument struct {
	ref repository.Reference
}

type repositoryFields struct {
	Kind      string `yaml:"kind"`
	URL       string `yaml:"url"`
	Org       string `yaml:"org"`
	Project   string `yaml:"project"`
	Repo      string `yaml:"repo"`
	Username  string `yaml:"username"`
	Reponame  string `yaml:"reponame"`
	ProjectID string `yaml:"projectId"`
}

// UnmarshalYAML implements custom YAML unmarshalling for repository references
func (rd *repositoryDocument) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		ref, err := repository.ParseURL(node.Value)
		if err != nil {
			return err
		}
		rd.ref = ref
		return nil

	case yaml.MappingNode:
		var fields repositoryFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		ref, err := fields.reference()
		if err != nil {
			return err
		}
		rd.ref = ref
		return nil

	default:
		return fmt.Errorf("repository must be a URL or a mapping with a kind")
	}
}

func (f repositoryFields) reference() (repository.Reference, error) {
	if f.Kind == "" {
		if f.URL == "" {
			return nil, fmt.Errorf("repository requires either kind or url")
		}
		return repository.ParseURL(f.URL)
	}

	kind, err := repository.ParseKind(f.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case repository.KindAzureDevOps:
		if f.Org == "" || f.Project == "" || f.Repo == "" {
			return nil, fmt.Errorf("azdo repository requires org, project and repo")
		}
		return repository.AzureDevOps{Org: f.Org, Project: f.Project, Repo: f.Repo}, nil
	case repository.KindGitHub:
		if f.Username == "" || f.Reponame == "" {
			return nil, fmt.Errorf("github repository requires username and reponame")
		}
		return repository.GitHub{Username: f.Username, Reponame: f.Reponame}, nil
	case repository.KindGitLab:
		if f.ProjectID == "" {
			return nil, fmt.Errorf("gitlab repository requires projectId")
		}
		return repository.GitLab{ProjectID: f.ProjectID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownKind, f.Kind)
	}
}

// LoadDeployments reads deployments from a YAML or JSON file.
// The document is either a single deployment or a mapping with a deployments list.
func LoadDeployments(filename string) ([]*Deployment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment file '%s': %w", filename, err)
	}

	deployments, err := ParseDeployments(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment file '%s': %w", filename, err)
	}
	return deployments, nil
}

// ParseDeployments decodes deployments from YAML or JSON content
func ParseDeployments(data []byte) ([]*Deployment, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDeployments
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	var docs []*deploymentDocument
	if hasKey(&node, "deployments") {
		var file deploymentsFile
		if err := node.Decode(&file); err != nil {
			return nil, err
		}
		docs = file.Deployments
	} else {
		var single deploymentDocument
		if err := node.Decode(&single); err != nil {
			return nil, err
		}
		docs = []*deploymentDocument{&single}
	}

	if len(docs) == 0 {
		return nil, ErrNoDeployments
	}

	deployments := make([]*Deployment, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		deployments = append(deployments, doc.toDeployment())
	}
	return deployments, nil
}

// hasKey reports whether the document's top-level mapping contains key
func hasKey(node *yaml.Node, key string) bool {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func (d *deploymentDocument) toDeployment() *Deployment {
	return &Deployment{
		DeploymentID:       d.DeploymentID,
		Service:            d.Service,
		Environment:        d.Environment,
		ImageTag:           d.ImageTag,
		CommitID:           d.CommitID,
		HLDCommitID:        d.HLDCommitID,
		ManifestCommitID:   d.ManifestCommitID,
		SourceRepo:         d.SourceRepo,
		HLDRepo:            d.HLDRepo,
		ManifestRepo:       d.ManifestRepo,
		SrcToDockerBuild:   d.SrcToDockerBuild.toBuild(),
		HLDToManifestBuild: d.HLDToManifest.toBuild(),
		Timestamp:          d.Timestamp,
	}
}

func (b *buildDocument) toBuild() *Build {
	if b == nil {
		return nil
	}

	build := &Build{
		BuildID:       b.BuildID,
		BuildNumber:   b.BuildNumber,
		SourceBranch:  b.SourceBranch,
		SourceVersion: b.SourceVersion,
		Result:        b.Result,
		Status:        b.Status,
		URL:           b.URL,
		StartTime:     b.StartTime,
		FinishTime:    b.FinishTime,
	}
	if b.Repository != nil {
		build.Repository = b.Repository.ref
	}
	return build
}
