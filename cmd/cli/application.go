package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/m2prune/internal/prune"
	"github.com/temirov/m2prune/internal/repository/filesystem"
	"github.com/temirov/m2prune/internal/utils"
	flagutils "github.com/temirov/m2prune/internal/utils/flags"
	pathutils "github.com/temirov/m2prune/internal/utils/path"
)

const (
	applicationNameConstant                 = "m2prune"
	applicationVersionConstant              = "0.1.0"
	applicationUseConstant                  = applicationNameConstant + " <path>"
	applicationShortDescriptionConstant     = "Clean a local Maven repository"
	applicationLongDescriptionConstant      = "m2prune deletes superseded snapshot artifacts and local metadata descriptors from a Maven-style local repository and reports the space reclaimed."
	logLevelFlagNameConstant                = "level"
	logLevelFlagDescriptionConstant         = "Log verbosity."
	logLevelConfigKeyConstant               = "level"
	logFormatConfigKeyConstant              = "log_format"
	defaultLogLevelConstant                 = "INFO"
	environmentPrefixConstant               = "M2PRUNE"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	cleaningRepositoryMessageConstant       = "cleaning up"
	repositoryMissingMessageConstant        = "file or directory does not exist"
	repositoryIsFileMessageConstant         = "repository path is a file"
	repositoryInspectionMessageConstant     = "unable to inspect repository path"
	logFieldLogLevelConstant                = "log_level"
	logFieldLogFormatConstant               = "log_format"
	logFieldPathConstant                    = "path"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	invalidLogLevelErrorTemplateConstant    = "invalid log level: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	repositoryPathErrorTemplateConstant     = "%w: %s"
	repositoryInspectionTemplateConstant    = "%s %s: %w"
	serviceCreationErrorTemplateConstant    = "unable to create pruning service: %w"
)

// ErrRepositoryNotFound indicates the repository path does not exist.
var ErrRepositoryNotFound = errors.New(repositoryMissingMessageConstant)

// ErrRepositoryIsFile indicates the repository path names a regular file rather than a directory.
var ErrRepositoryIsFile = errors.New(repositoryIsFileMessageConstant)

// ApplicationConfiguration describes the resolved configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	LogLevel  string `mapstructure:"level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, structured logger, and pruning service.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	logLevelFlagValue      string
	fileSystem             filesystem.OSFileSystem
	repositoryRootResolver *pathutils.RepositoryRootResolver
	lastResult             prune.Result
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(environmentPrefixConstant)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		fileSystem:             filesystem.NewOSFileSystem(),
		repositoryRootResolver: pathutils.NewRepositoryRootResolver(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationUseConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       applicationVersionConstant,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runPrune(arguments[0])
		},
	}

	levelChoices := make([]string, 0, len(utils.SupportedLogLevels()))
	for _, supportedLogLevel := range utils.SupportedLogLevels() {
		levelChoices = append(levelChoices, string(supportedLogLevel))
	}
	cobraCommand.PersistentFlags().StringVar(
		&application.logLevelFlagValue,
		logLevelFlagNameConstant,
		defaultLogLevelConstant,
		flagutils.FormatChoiceUsage(defaultLogLevelConstant, levelChoices, logLevelFlagDescriptionConstant),
	)

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Result reports the outcome of the most recent prune run; it is zero until a run completes.
func (application *Application) Result() prune.Result {
	return application.lastResult
}

// Execute builds a fresh application instance and executes the root command.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		logLevelConfigKeyConstant:  defaultLogLevelConstant,
		logFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}

	if loadError := application.configurationLoader.LoadConfiguration(defaultValues, &application.configuration); loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.LogLevel = strings.TrimSpace(application.logLevelFlagValue)
	}

	logLevel, levelError := utils.ParseLogLevel(application.configuration.LogLevel)
	if levelError != nil {
		return fmt.Errorf(invalidLogLevelErrorTemplateConstant, levelError)
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(logLevel, utils.LogFormat(application.configuration.LogFormat))
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(logFieldLogLevelConstant, string(logLevel)),
		zap.String(logFieldLogFormatConstant, application.configuration.LogFormat),
	)

	return nil
}

func (application *Application) runPrune(repositoryArgument string) error {
	repositoryRoot, resolveError := application.repositoryRootResolver.Resolve(repositoryArgument)
	if resolveError != nil {
		return resolveError
	}

	if validationError := application.validateRepositoryRoot(repositoryArgument, repositoryRoot); validationError != nil {
		return validationError
	}

	application.logger.Info(cleaningRepositoryMessageConstant, zap.String(logFieldPathConstant, repositoryRoot))

	service, serviceError := prune.NewService(prune.Dependencies{
		FileSystem: application.fileSystem,
		Logger:     application.logger,
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	application.lastResult = service.Prune(repositoryRoot)

	return nil
}

func (application *Application) validateRepositoryRoot(repositoryArgument string, repositoryRoot string) error {
	rootInfo, statError := application.fileSystem.Stat(repositoryRoot)
	switch {
	case errors.Is(statError, fs.ErrNotExist):
		application.logger.Error(repositoryMissingMessageConstant, zap.String(logFieldPathConstant, repositoryArgument))
		return fmt.Errorf(repositoryPathErrorTemplateConstant, ErrRepositoryNotFound, repositoryArgument)
	case statError != nil:
		application.logger.Error(repositoryInspectionMessageConstant, zap.String(logFieldPathConstant, repositoryArgument), zap.Error(statError))
		return fmt.Errorf(repositoryInspectionTemplateConstant, repositoryInspectionMessageConstant, repositoryArgument, statError)
	case !rootInfo.IsDir():
		application.logger.Error(repositoryIsFileMessageConstant, zap.String(logFieldPathConstant, repositoryArgument))
		return fmt.Errorf(repositoryPathErrorTemplateConstant, ErrRepositoryIsFile, repositoryArgument)
	}
	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
