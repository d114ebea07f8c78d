package prune

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	// SnapshotFolderSuffixConstant marks version folders holding frequently rebuilt snapshot artifacts.
	SnapshotFolderSuffixConstant = "-SNAPSHOT"
	// LocalMetadataFileNameConstant names the metadata descriptor written by local installs.
	LocalMetadataFileNameConstant = "maven-metadata-local.xml"
)

var recognizedArtifactSuffixes = [...]string{
	".jar",
	".jar.sha1",
	".pom",
	".pom.sha1",
	".war",
	".war.sha1",
}

// RecognizedArtifactSuffixes returns the file suffixes considered for stale artifact removal.
func RecognizedArtifactSuffixes() []string {
	suffixes := make([]string, len(recognizedArtifactSuffixes))
	copy(suffixes, recognizedArtifactSuffixes[:])
	return suffixes
}

// IsSnapshotFolder reports whether the folder name denotes a snapshot version.
func IsSnapshotFolder(folderName string) bool {
	return strings.HasSuffix(folderName, SnapshotFolderSuffixConstant)
}

// IsLocalMetadataFile reports whether the file name is the reserved local metadata descriptor.
func IsLocalMetadataFile(fileName string) bool {
	return fileName == LocalMetadataFileNameConstant
}

// IsStaleArtifact reports whether a file carries a recognized artifact suffix
// without embedding the name of the version folder that contains it.
func IsStaleArtifact(fileName string, folderName string) bool {
	for _, suffix := range recognizedArtifactSuffixes {
		if isStaleForSuffix(fileName, folderName, suffix) {
			return true
		}
	}
	return false
}

func isStaleForSuffix(fileName string, folderName string, suffix string) bool {
	return strings.HasSuffix(fileName, suffix) && !strings.Contains(fileName, folderName)
}

// shouldEvaluateFile decides whether a file discovered in a directory is queued for evaluation.
func shouldEvaluateFile(folderName string, fileName string) bool {
	return IsSnapshotFolder(folderName) || IsLocalMetadataFile(fileName)
}

// resolveName returns the final path element, or false when the path has no usable name.
func resolveName(path string) (string, bool) {
	cleanedPath := filepath.Clean(path)
	name := filepath.Base(cleanedPath)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", false
	}
	if !utf8.ValidString(name) {
		return "", false
	}
	return name, true
}

// resolveParentName returns the name of the directory enclosing path.
func resolveParentName(path string) (string, bool) {
	cleanedPath := filepath.Clean(path)
	parentPath := filepath.Dir(cleanedPath)
	if parentPath == cleanedPath {
		return "", false
	}
	return resolveName(parentPath)
}
