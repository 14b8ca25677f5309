/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package author

import (
	"context"

	"github.com/orien/spektate/internal/model"
	"github.com/orien/spektate/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockFetcher implements Fetcher for testing
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchAuthor(ctx context.Context, ref repository.Reference, commit, accessToken string) (*Author, error) {
	args := m.Called(ctx, ref, commit, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Author), args.Error(1)
}

// MockURLResolver implements URLResolver for testing
type MockURLResolver struct {
	mock.Mock
}

func (m *MockURLResolver) ResolveURL(rawURL string) (repository.Reference, error) {
	args := m.Called(rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Reference), args.Error(1)
}

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveAuthor(ctx context.Context, deployment *model.Deployment) (*Author, error) {
	args := m.Called(ctx, deployment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Author), args.Error(1)
}
