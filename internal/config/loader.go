package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath returns the first existing config file among, in order:
// the explicit path, $SIFTVIEW_CONFIG_PATH, and the default file names in
// the working directory and then next to the executable. It returns ""
// when there is none.
func GetConfigPath(explicitPath string) string {
	for _, candidate := range configCandidates(explicitPath) {
		if isRegularFile(candidate) {
			return candidate
		}
	}
	return ""
}

func configCandidates(explicitPath string) []string {
	var candidates []string
	if explicitPath != "" {
		candidates = append(candidates, explicitPath)
	}
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		candidates = append(candidates, envPath)
	}

	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		if dir := filepath.Dir(exe); len(dirs) == 0 || dir != dirs[0] {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		for _, name := range defaultConfigFiles {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return candidates
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
