package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	HomeDir      string
	DataDir      string
	LogFile      string
	ConfigFile   string
	RuntimeDir   string
	SSHAgentFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		configFile := os.Getenv("SHELLFIG_CONFIG")
		if configFile == "" {
			configFile = filepath.Join(homeDir, ".config", "shellfig", "config.yaml")
		}

		// The agent env file must survive for the lifetime of the login
		// session but not across reboots, so it prefers XDG_RUNTIME_DIR.
		runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
		if runtimeDir == "" {
			runtimeDir = filepath.Join(homeDir, ".shellfig")
		} else {
			runtimeDir = filepath.Join(runtimeDir, "shellfig")
		}

		defaultPaths = &Paths{
			HomeDir:      homeDir,
			DataDir:      filepath.Join(homeDir, ".shellfig"),
			LogFile:      filepath.Join(homeDir, ".shellfig", "shellfig.log"),
			ConfigFile:   configFile,
			RuntimeDir:   runtimeDir,
			SSHAgentFile: filepath.Join(runtimeDir, "ssh-agent.env"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func RuntimeDir() string {
	ensureDefaultPaths()
	return defaultPaths.RuntimeDir
}

func SSHAgentFile() string {
	ensureDefaultPaths()
	return defaultPaths.SSHAgentFile
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
