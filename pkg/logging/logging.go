// Package logging builds the application logger. All log output goes to
// stderr: stdout is reserved for the rendered document.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup initializes the global logger. With verbose enabled it uses the
// human-readable development config, otherwise JSON production output.
func Setup(verbose bool, appName, appVersion string) error {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	// Keep stdout clean for the document itself.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	built, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = built
	zap.ReplaceGlobals(Logger)
	return nil
}
