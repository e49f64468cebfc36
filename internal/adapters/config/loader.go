// Package config provides the configuration loader for reattach.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration schema version understood by the loader.
const SupportedVersion = "1"

var validApplicationNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment overrides. It defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load finds reattach.yaml in cwd or one of its parents and returns the suite it describes.
func (l *Loader) Load(cwd string) (*domain.Suite, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	configPath, err := l.findConfiguration(abs)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration file at configPath.
func (l *Loader) LoadFile(configPath string) (*domain.Suite, error) {
	var configfile Configfile
	if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if configfile.Version != "" && configfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, assuming %s",
			configfile.Version, domain.ConfigFileName, SupportedVersion))
	}

	root := filepath.Dir(configPath)
	tmpRoot, err := l.resolveTmpRoot(root, configfile.TmpRoot)
	if err != nil {
		return nil, err
	}

	suite := &domain.Suite{Root: root, TmpRoot: tmpRoot}
	seen := make(map[string]struct{}, len(configfile.Applications))
	for _, dto := range configfile.Applications {
		if dto == nil {
			continue
		}
		if err := validateApplication(dto); err != nil {
			return nil, err
		}
		if _, ok := seen[dto.Name]; ok {
			return nil, zerr.With(domain.ErrDuplicateApplication, "application", dto.Name)
		}
		seen[dto.Name] = struct{}{}

		checkout, err := resolvePath(root, dto.Checkout)
		if err != nil {
			return nil, zerr.With(err, "application", dto.Name)
		}
		suite.Applications = append(suite.Applications, &domain.Application{
			Name:         dto.Name,
			Versions:     dto.Versions,
			Checkout:     checkout,
			WriteDirRoot: tmpRoot,
			Tests:        dto.Tests,
		})
	}

	if len(suite.Applications) == 0 {
		return nil, zerr.With(domain.ErrNoApplications, "path", configPath)
	}
	return suite, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// resolveTmpRoot picks the root previous runs are searched under: the environment
// override, then the configured value, then the default.
func (l *Loader) resolveTmpRoot(configDir, configured string) (string, error) {
	if env := l.Getenv(domain.TmpRootEnv); env != "" {
		return resolvePath(configDir, env)
	}
	if configured == "" {
		configured = domain.DefaultTmpRoot
	}
	return resolvePath(configDir, configured)
}

func validateApplication(dto *ApplicationDTO) error {
	if !validApplicationNameRegex.MatchString(dto.Name) {
		return zerr.With(domain.ErrInvalidApplicationName, "application", dto.Name)
	}

	for _, version := range dto.Versions {
		if version == "" ||
			strings.Contains(version, domain.TagSeparator) ||
			strings.Contains(version, domain.AlternativeSeparator) {
			err := zerr.With(domain.ErrInvalidVersionTag, "application", dto.Name)
			return zerr.With(err, "version", version)
		}
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHomeDirExpandFailed.Error()), "path", path)
	}
	return expanded, nil
}

// resolvePath expands ~ and makes relative paths relative to base.
func resolvePath(base, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Clean(filepath.Join(base, expanded)), nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
