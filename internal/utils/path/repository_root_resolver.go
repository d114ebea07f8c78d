package pathutils

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	repositoryRootRequiredMessageConstant = "repository path must be provided"
)

// ErrRepositoryRootRequired indicates the repository path argument was blank.
var ErrRepositoryRootRequired = errors.New(repositoryRootRequiredMessageConstant)

// AbsolutePathResolver converts relative paths to absolute ones.
type AbsolutePathResolver func(string) (string, error)

// RepositoryRootResolver normalizes the repository root argument into a clean absolute path.
type RepositoryRootResolver struct {
	homeExpander         *HomeExpander
	absolutePathResolver AbsolutePathResolver
}

// NewRepositoryRootResolver constructs a RepositoryRootResolver using operating system lookups.
func NewRepositoryRootResolver() *RepositoryRootResolver {
	return NewRepositoryRootResolverWithDependencies(nil, nil)
}

// NewRepositoryRootResolverWithDependencies constructs a RepositoryRootResolver with custom collaborators.
func NewRepositoryRootResolverWithDependencies(homeExpander *HomeExpander, absolutePathResolver AbsolutePathResolver) *RepositoryRootResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	if absolutePathResolver == nil {
		absolutePathResolver = filepath.Abs
	}
	return &RepositoryRootResolver{homeExpander: homeExpander, absolutePathResolver: absolutePathResolver}
}

// Resolve trims whitespace, expands the user's home directory, and makes the path absolute.
// An absolute root keeps "." and "./repository" style arguments from losing their folder name.
func (resolver *RepositoryRootResolver) Resolve(candidatePath string) (string, error) {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return "", ErrRepositoryRootRequired
	}

	expandedPath := resolver.homeExpander.Expand(trimmedCandidate)
	absolutePath, absoluteError := resolver.absolutePathResolver(expandedPath)
	if absoluteError != nil {
		return "", absoluteError
	}

	return filepath.Clean(absolutePath), nil
}
