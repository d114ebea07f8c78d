package prune

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	fileSystemMissingMessageConstant      = "filesystem not configured"
	scanningDirectoryMessageConstant      = "scanning directory"
	deletingFileMessageConstant           = "deleting"
	deletedSizeMessageConstant            = "deleted size"
	traversalHaltedMessageConstant        = "traversal halted"
	statFailureMessageConstant            = "failed to inspect path"
	directoryReadFailureMessageConstant   = "failed to read directory"
	directoryEntryFailureMessageConstant  = "failed to read directory entry"
	fileDeletionFailureMessageConstant    = "failed to delete file"
	sizeProbeFailureMessageConstant       = "failed to read file size"
	unresolvableNameMessageConstant       = "skipping path without a resolvable name"
	logFieldPathConstant                  = "path"
	logFieldFolderConstant                = "folder"
	logFieldSuffixConstant                = "suffix"
	logFieldSizeConstant                  = "size"
	logFieldBytesConstant                 = "bytes"
	logFieldArtifactCountConstant         = "artifacts"
	logFieldMetadataCountConstant         = "metadata_files"
	logFieldScannedDirectoryCountConstant = "directories"
	logFieldHaltedConstant                = "halted"
)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// FileSystem exposes the filesystem operations required to prune a repository.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Remove(path string) error
}

// Dependencies enumerates collaborators required by Service.
type Dependencies struct {
	FileSystem FileSystem
	Logger     *zap.Logger
}

// Result summarizes a completed traversal.
type Result struct {
	RootPath           string
	DeletedBytes       int64
	DeletedArtifacts   int
	DeletedMetadata    int
	ScannedDirectories int
	// Halted is set when a local metadata file could not be removed.
	Halted bool
}

// FormattedSize renders DeletedBytes for display.
func (result Result) FormattedSize() string {
	return FormatSize(result.DeletedBytes)
}

// Service prunes stale artifacts from a repository tree.
type Service struct {
	fileSystem FileSystem
	logger     *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{fileSystem: dependencies.FileSystem, logger: logger}, nil
}

// Prune walks rootPath breadth-first, deleting eligible files, and reports what was reclaimed.
// Filesystem failures are logged where they occur; only a failed metadata
// deletion stops the walk early.
func (service *Service) Prune(rootPath string) Result {
	result := Result{RootPath: rootPath}
	queue := newTraversalQueue(rootPath)

	for queue.Len() > 0 {
		currentPath, _ := queue.Pop()

		pathInfo, statError := service.fileSystem.Stat(currentPath)
		if statError != nil {
			service.logger.Error(statFailureMessageConstant, zap.String(logFieldPathConstant, currentPath), zap.Error(statError))
			continue
		}

		if pathInfo.IsDir() {
			service.expandDirectory(currentPath, queue, &result)
			continue
		}

		if continueTraversal := service.evaluateFile(currentPath, &result); !continueTraversal {
			result.Halted = true
			service.logger.Error(traversalHaltedMessageConstant, zap.String(logFieldPathConstant, currentPath))
			break
		}
	}

	service.logger.Info(
		deletedSizeMessageConstant,
		zap.String(logFieldSizeConstant, result.FormattedSize()),
		zap.Int64(logFieldBytesConstant, result.DeletedBytes),
		zap.Int(logFieldArtifactCountConstant, result.DeletedArtifacts),
		zap.Int(logFieldMetadataCountConstant, result.DeletedMetadata),
		zap.Int(logFieldScannedDirectoryCountConstant, result.ScannedDirectories),
		zap.Bool(logFieldHaltedConstant, result.Halted),
	)

	return result
}

func (service *Service) expandDirectory(directoryPath string, queue *traversalQueue, result *Result) {
	folderName, nameResolved := resolveName(directoryPath)
	if !nameResolved {
		service.logger.Debug(unresolvableNameMessageConstant, zap.String(logFieldPathConstant, directoryPath))
		return
	}

	directoryEntries, readError := service.fileSystem.ReadDir(directoryPath)
	if readError != nil {
		service.logger.Error(directoryReadFailureMessageConstant, zap.String(logFieldPathConstant, directoryPath), zap.Error(readError))
		return
	}

	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name())

		if directoryEntry.IsDir() {
			queue.Push(entryPath)
			continue
		}

		isFile, classificationError := service.isRegularFile(entryPath, directoryEntry)
		if classificationError != nil {
			service.logger.Error(directoryEntryFailureMessageConstant, zap.String(logFieldPathConstant, entryPath), zap.Error(classificationError))
			continue
		}
		if !isFile {
			continue
		}

		if shouldEvaluateFile(folderName, directoryEntry.Name()) {
			queue.Push(entryPath)
		}
	}

	result.ScannedDirectories++
	service.logger.Debug(scanningDirectoryMessageConstant, zap.String(logFieldPathConstant, directoryPath))
}

// isRegularFile classifies a non-directory entry, resolving symbolic links to their target.
// Links pointing at directories are reported as non-files so the walk never follows them.
// Devices, named pipes and sockets are not regular files and are ignored.
func (service *Service) isRegularFile(entryPath string, directoryEntry fs.DirEntry) (bool, error) {
	entryType := directoryEntry.Type()
	if entryType&fs.ModeSymlink == 0 {
		return entryType.IsRegular(), nil
	}

	targetInfo, statError := service.fileSystem.Stat(entryPath)
	if statError != nil {
		return false, statError
	}
	return targetInfo.Mode().IsRegular(), nil
}

// evaluateFile deletes the file when eligible and reports whether the traversal may continue.
func (service *Service) evaluateFile(filePath string, result *Result) bool {
	folderName, folderResolved := resolveParentName(filePath)
	fileName, fileResolved := resolveName(filePath)
	if !folderResolved || !fileResolved {
		service.logger.Debug(unresolvableNameMessageConstant, zap.String(logFieldPathConstant, filePath))
		return true
	}

	if IsLocalMetadataFile(fileName) {
		service.logger.Info(deletingFileMessageConstant, zap.String(logFieldPathConstant, filePath))
		if removeError := service.fileSystem.Remove(filePath); removeError != nil {
			service.logger.Error(fileDeletionFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(removeError))
			return false
		}
		result.DeletedMetadata++
		return true
	}

	for _, suffix := range recognizedArtifactSuffixes {
		if !isStaleForSuffix(fileName, folderName, suffix) {
			continue
		}

		service.logger.Info(
			deletingFileMessageConstant,
			zap.String(logFieldPathConstant, filePath),
			zap.String(logFieldFolderConstant, folderName),
			zap.String(logFieldSuffixConstant, suffix),
		)

		fileSize := service.probeSize(filePath)
		if removeError := service.fileSystem.Remove(filePath); removeError != nil {
			service.logger.Error(fileDeletionFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(removeError))
			break
		}

		result.DeletedBytes += fileSize
		result.DeletedArtifacts++
	}

	return true
}

func (service *Service) probeSize(filePath string) int64 {
	fileInfo, statError := service.fileSystem.Stat(filePath)
	if statError != nil {
		service.logger.Warn(sizeProbeFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(statError))
		return 0
	}
	return fileInfo.Size()
}
