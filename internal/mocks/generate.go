// Package mocks provides mock implementations for testing the client's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	api := mocks.NewMockAuthAPI(ctrl)
//	api.EXPECT().ProbeProfessor(gomock.Any()).Return(identity, nil)
package mocks

// Generate mocks for the TokenStore and AuthAPI interfaces from
// internal/ports. This creates MockTokenStore and MockAuthAPI.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_auth_mock.go github.com/eduportal/eduportal-mobile/internal/ports TokenStore,AuthAPI

// Generate mocks for the ContentAPI and DirectoryAPI interfaces from
// internal/ports. This creates MockContentAPI and MockDirectoryAPI.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_content_mock.go github.com/eduportal/eduportal-mobile/internal/ports ContentAPI,DirectoryAPI
