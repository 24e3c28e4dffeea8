package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"sshbatch.dev/pkg/sshbatch/internal/adapter"
	"sshbatch.dev/pkg/sshbatch/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "sshbatch"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	markerFlagName    = "marker"
	transportFlagName = "transport"
	accountFlagName   = "account"
	templateFlagName  = "job-template"
	subjectFlagName   = "subject"
	testFlagName      = "test"
	dryRunFlagName    = "dry-run"
	formatFlagName    = "format"

	remoteAddressKey      = "remote.address"
	remoteUserKey         = "remote.user"
	remoteTransportKey    = "remote.transport"
	remoteSSHCommandKey   = "remote.ssh_command"
	remoteIdentityFileKey = "remote.identity_file"
	remoteKnownHostsKey   = "remote.known_hosts"
	remoteProfileKey      = "remote.profile"
	remoteBatchCommandKey = "remote.batch_command"

	mountsCommandKey = "mounts.command"
	mountsMarkerKey  = "mounts.marker"

	batchAccountKey     = "batch.account"
	batchJobTemplateKey = "batch.job_template"

	defaultKnownHosts = "~/.ssh/known_hosts"

	envPrefix = "SSHBATCH"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".sshbatch.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds the config file error from startup, reported by
// loadSettings.
var configReadErr error

// validate is the singleton validator instance.
var validate *validator.Validate

// Settings is the unmarshalled sshbatch configuration.
type Settings struct {
	Remote RemoteSettings `mapstructure:"remote"`
	Mounts MountSettings  `mapstructure:"mounts"`
	Batch  BatchSettings  `mapstructure:"batch"`
	Log    LogSettings    `mapstructure:"log"`
}

// RemoteSettings describes how to reach the submission host.
type RemoteSettings struct {
	Address      string `mapstructure:"address"`
	User         string `mapstructure:"user"`
	Transport    string `mapstructure:"transport" validate:"required,oneof=exec native"`
	SSHCommand   string `mapstructure:"ssh_command" validate:"required"`
	IdentityFile string `mapstructure:"identity_file"`
	KnownHosts   string `mapstructure:"known_hosts" validate:"required"`
	Profile      string `mapstructure:"profile" validate:"required"`
	BatchCommand string `mapstructure:"batch_command" validate:"required"`
}

// MountSettings controls how the sshfs mount table is read.
type MountSettings struct {
	Command string `mapstructure:"command" validate:"required"`
	Marker  string `mapstructure:"marker" validate:"required"`
}

// BatchSettings holds defaults for submitted jobs.
type BatchSettings struct {
	Account     string `mapstructure:"account"`
	JobTemplate string `mapstructure:"job_template"`
}

// LogSettings configures the rotating log file.
type LogSettings struct {
	Filename   string `mapstructure:"filename"`
	Level      string `mapstructure:"level"`
	Verbose    bool   `mapstructure:"verbose"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`
}

func init() {
	validate = validator.New()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(remoteAddressKey, "")
	viper.SetDefault(remoteUserKey, "")
	viper.SetDefault(remoteTransportKey, adapter.TransportExec)
	viper.SetDefault(remoteSSHCommandKey, adapter.DefaultSSHCommand)
	viper.SetDefault(remoteIdentityFileKey, "")
	viper.SetDefault(remoteKnownHostsKey, defaultKnownHosts)
	viper.SetDefault(remoteProfileKey, domain.DefaultProfile)
	viper.SetDefault(remoteBatchCommandKey, domain.DefaultBatchCommand)

	viper.SetDefault(mountsCommandKey, adapter.DefaultMountListCommand)
	viper.SetDefault(mountsMarkerKey, domain.DefaultMountMarker)

	viper.SetDefault(batchAccountKey, "")
	viper.SetDefault(batchJobTemplateKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configReadErr = readConfigFile()
}

// readConfigFile loads sshbatch.yaml. A missing file is not an error.
func readConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to read %s: %w", configFileName, err)
}

// loadSettings unmarshals the merged flag/env/file configuration and
// validates it.
func loadSettings() (Settings, error) {
	if configReadErr != nil {
		return Settings{}, configReadErr
	}

	var settings Settings

	if err := viper.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := validate.Struct(&settings); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", formatValidationError(err))
	}

	return settings, nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]

		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}

	return err
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// logSettingsFromConfig reads the log keys directly, without validating the
// rest of the configuration.
func logSettingsFromConfig() LogSettings {
	return LogSettings{
		Filename:   viper.GetString(logFilenameKey),
		Level:      viper.GetString(logLevelKey),
		Verbose:    viper.GetBool(logVerboseKey),
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; verbose forces Debug.
func configureLogger(settings LogSettings) {
	logPath := strings.TrimSpace(settings.Filename)
	if logPath == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if settings.Verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(settings.Level, slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
