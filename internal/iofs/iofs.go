// Package iofs manages scnet files and directories: config and log
// locations, the default config file and paths of generated samples.
package iofs

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/scnet/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// SampleName returns a file name like 20250131_174502_sample.xlsx.
func SampleName(now time.Time, ext string) string {
	return fmt.Sprintf("%s_sample.%s", now.Format("20060102_150405"), ext)
}

// OutputPath creates the output directory if needed and returns
// the path of a new sample file inside it.
func OutputPath(dir, ext string, now time.Time) (string, error) {
	if err := touchDir(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, SampleName(now, ext)), nil
}
