package registry

import (
	"go.uber.org/zap"
)

// Options configures a single registry build.
type Options struct {
	Root    string   // directory whose subdirectories are plugins
	Output  string   // registry file path
	Exclude []string // extra directory name globs to skip
	Check   bool     // compare with Output instead of writing it
}

// Summary describes a completed run.
type Summary struct {
	Path     string
	Registry *Registry
	Failures []Failure
}

// Run scans opts.Root, builds the registry and writes it to opts.Output (or
// verifies it in check mode). Per-directory manifest problems are logged and
// reported in the summary; any returned error is fatal.
func Run(opts Options, log *zap.Logger) (*Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := ValidatePatterns(opts.Exclude); err != nil {
		return nil, err
	}

	log.Info("Scanning for plugins...", zap.String("root", opts.Root))

	scanner := &Scanner{Root: opts.Root, Exclude: opts.Exclude, Logger: log}
	result, err := scanner.Scan()
	if err != nil {
		return nil, err
	}
	if len(result.Entries) == 0 {
		log.Warn("No plugins found. Registry will be empty.")
	}

	reg := Build(result.Entries)
	summary := &Summary{Path: opts.Output, Registry: reg, Failures: result.Failures}

	if opts.Check {
		if err := Check(reg, opts.Output); err != nil {
			return summary, err
		}
		log.Info("Registry is up to date", zap.String("path", opts.Output))
	} else {
		if err := Write(reg, opts.Output); err != nil {
			return summary, err
		}
		log.Info("Registry updated successfully", zap.String("path", opts.Output))
	}
	log.Info("Total plugins", zap.Int("count", len(reg.Plugins)))

	return summary, nil
}
