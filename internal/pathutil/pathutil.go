// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "focusexpress",
			configFileName: "config.yml",
			dbFileName:     "focusexpress.db",
			statusFileName: "status.json",
			logFileName:    "focusexpress.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}
	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func Dir() string {
	return Must().configDir
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	focusEnv := strings.TrimSpace(os.Getenv("FOCUS_ENV"))
	if focusEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", focusEnv)
		p.dbFileName = fmt.Sprintf("focusexpress_%s.db", focusEnv)
		p.statusFileName = fmt.Sprintf("status_%s.json", focusEnv)
		p.logFileName = fmt.Sprintf("focusexpress_%s.log", focusEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

// SetForTesting points every path into dir. It bypasses Initialize.
func SetForTesting(dir string) {
	paths = &Paths{
		configDir:      "focusexpress",
		configFilePath: filepath.Join(dir, "config.yml"),
		dbFilePath:     filepath.Join(dir, "focusexpress.db"),
		statusFilePath: filepath.Join(dir, "status.json"),
		logFilePath:    filepath.Join(dir, "log", "focusexpress.log"),
	}
}
