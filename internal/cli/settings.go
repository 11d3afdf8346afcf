package cli

import (
	"flag"
	"path/filepath"
	"time"

	"featrun/internal/catalog"
	"featrun/internal/config"
	"featrun/internal/shell"
)

// runSettings is the merged view of flags and config for one command
// invocation. Flags win over config; config wins over defaults.
type runSettings struct {
	configPath string
	implDir    string
	shellPath  string
	timeout    time.Duration
	noColor    bool
	debug      bool
}

// commonFlags registers the flags shared by run, validate, and steps.
type commonFlags struct {
	configPath *string
	implDir    *string
	shellPath  *string
	timeout    *int
	noColor    *bool
	debug      *bool
}

func registerCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to config file (default: "+config.DefaultPath+" if present)"),
		implDir:    fs.String("impl-dir", "", "Directory containing implementation files"),
		shellPath:  fs.String("shell", "", "Shell executable used to run step scripts"),
		timeout:    fs.Int("timeout", 0, "Per-step timeout in seconds (0 disables)"),
		noColor:    fs.Bool("no-color", false, "Disable colored output"),
		debug:      fs.Bool("debug", false, "Enable diagnostic output"),
	}
}

// resolve loads the config file and merges it with the parsed flags.
func (f commonFlags) resolve() (runSettings, error) {
	var cfg config.Config
	var err error
	if *f.configPath != "" {
		cfg, err = config.Load(*f.configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		return runSettings{}, err
	}

	settings := runSettings{
		configPath: *f.configPath,
		implDir:    cfg.ImplDir,
		shellPath:  cfg.Shell,
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		noColor:    cfg.NoColor || *f.noColor,
		debug:      *f.debug,
	}
	if *f.implDir != "" {
		settings.implDir = *f.implDir
	}
	if *f.shellPath != "" {
		settings.shellPath = *f.shellPath
	}
	if *f.timeout != 0 {
		settings.timeout = time.Duration(*f.timeout) * time.Second
	}
	return settings, nil
}

// provider selects implementation sources: explicit files when given,
// otherwise directory discovery. A relative directory resolves against
// baseDir (the feature file's directory, or the working directory for
// commands without one).
func (s runSettings) provider(implFiles []string, baseDir string) catalog.Provider {
	if len(implFiles) > 0 {
		return catalog.FileProvider{Paths: implFiles}
	}
	dir := s.implDir
	if !filepath.IsAbs(dir) && baseDir != "" {
		dir = filepath.Join(baseDir, dir)
	}
	return catalog.DirProvider{Dir: dir}
}

// locator returns the shell locator: pinned when configured, platform
// discovery otherwise.
func (s runSettings) locator() shell.Locator {
	if s.shellPath != "" {
		return shell.FixedLocator{Path: s.shellPath}
	}
	return shell.PathLocator{}
}
