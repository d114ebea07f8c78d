package filesystem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/m2prune/internal/repository/filesystem"
)

const (
	testDirectoryNameConstant   = "1.0-SNAPSHOT"
	testFileNameConstant        = "library-1.0-SNAPSHOT.jar"
	testFileContentConstant     = "artifact"
	testDirectoryPermissions    = 0o755
	testFilePermissions         = 0o644
	testRelativePathConstant    = "relative"
	testMissingFileNameConstant = "missing.jar"
)

func TestOSFileSystemOperations(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	versionDirectory := filepath.Join(rootDirectory, testDirectoryNameConstant)
	require.NoError(testInstance, os.MkdirAll(versionDirectory, testDirectoryPermissions))

	artifactPath := filepath.Join(versionDirectory, testFileNameConstant)
	require.NoError(testInstance, os.WriteFile(artifactPath, []byte(testFileContentConstant), testFilePermissions))

	fileSystem := filesystem.NewOSFileSystem()

	directoryInfo, statError := fileSystem.Stat(versionDirectory)
	require.NoError(testInstance, statError)
	require.True(testInstance, directoryInfo.IsDir())

	directoryEntries, readError := fileSystem.ReadDir(versionDirectory)
	require.NoError(testInstance, readError)
	require.Len(testInstance, directoryEntries, 1)
	require.Equal(testInstance, testFileNameConstant, directoryEntries[0].Name())

	fileInfo, fileStatError := fileSystem.Stat(artifactPath)
	require.NoError(testInstance, fileStatError)
	require.Equal(testInstance, int64(len(testFileContentConstant)), fileInfo.Size())

	require.NoError(testInstance, fileSystem.Remove(artifactPath))
	_, removedStatError := fileSystem.Stat(artifactPath)
	require.True(testInstance, errors.Is(removedStatError, fs.ErrNotExist))

	missingRemoveError := fileSystem.Remove(filepath.Join(versionDirectory, testMissingFileNameConstant))
	require.True(testInstance, errors.Is(missingRemoveError, fs.ErrNotExist))

	absolutePath, absError := fileSystem.Abs(testRelativePathConstant)
	require.NoError(testInstance, absError)
	require.True(testInstance, filepath.IsAbs(absolutePath))
}
