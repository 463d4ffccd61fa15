package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alti3/repo-to-md/pkg/clipboard"
	"github.com/alti3/repo-to-md/pkg/config"
	"github.com/alti3/repo-to-md/pkg/logging"
	"github.com/alti3/repo-to-md/pkg/snapshot"
	"github.com/alti3/repo-to-md/pkg/version"
)

var (
	rootLogger *zap.Logger

	flagOutput      string
	flagClipboard   bool
	flagIgnoreDirs  []string
	flagIgnoreFiles []string
	flagIgnoreExts  []string
	flagStructure   string
	flagDecode      string
	flagVerbose     bool
)

// RootCmd is the base command; it runs the snapshot itself.
var RootCmd = &cobra.Command{
	Use:   "repo-to-md <directory>",
	Short: "Generate a text snapshot of a directory's structure and file contents",
	Long: `repo-to-md walks a directory, filters out ignored paths, and emits a single
document listing the top-level structure followed by the line-numbered contents
of every non-ignored file. The output is suitable for code review or LLM prompting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			if err := logging.Setup(true, "repo-to-md", version.Get().Version); err != nil {
				return fmt.Errorf("failed to reconfigure logger: %w", err)
			}
			rootLogger = logging.Logger
		}
		logger := rootLogger

		opts, err := buildOptions(cmd, args[0], logger)
		if err != nil {
			return err
		}

		var clip snapshot.ClipboardWriter
		if flagClipboard {
			if !clipboard.Available() {
				return fmt.Errorf("--clipboard requested but no clipboard facility is available")
			}
			clip = clipboard.NewService()
		}

		return snapshot.Execute(opts, clip, logger)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// buildOptions merges built-in defaults, the optional .repo2md.yaml file,
// and command-line flags into one run configuration. File entries extend
// the defaults; an explicitly passed flag replaces both.
func buildOptions(cmd *cobra.Command, rootArg string, logger *zap.Logger) (snapshot.Options, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return snapshot.Options{}, fmt.Errorf("failed to determine working directory: %w", err)
	}

	fileCfg, err := config.Load(workingDir)
	if err != nil {
		return snapshot.Options{}, err
	}

	opts := snapshot.Options{
		Root:        rootArg,
		IgnoreDirs:  append(append([]string(nil), snapshot.DefaultIgnoreDirs...), fileCfg.Ignore.Dirs...),
		IgnoreFiles: append(append([]string(nil), snapshot.DefaultIgnoreFiles...), fileCfg.Ignore.Files...),
		IgnoreExts:  append(append([]string(nil), snapshot.DefaultIgnoreExts...), fileCfg.Ignore.Extensions...),
		Structure:   snapshot.StructureShallow,
		Decode:      snapshot.DecodeDrop,
		Output:      flagOutput,
		Clipboard:   flagClipboard,
	}

	if cmd.Flags().Changed("ignore-dir") {
		opts.IgnoreDirs = flagIgnoreDirs
	}
	if cmd.Flags().Changed("ignore-file") {
		opts.IgnoreFiles = flagIgnoreFiles
	}
	if cmd.Flags().Changed("ignore-ext") {
		opts.IgnoreExts = flagIgnoreExts
	}

	structure := fileCfg.Structure
	if cmd.Flags().Changed("structure") {
		structure = flagStructure
	}
	if structure != "" {
		switch snapshot.StructureStyle(structure) {
		case snapshot.StructureShallow, snapshot.StructureFull:
			opts.Structure = snapshot.StructureStyle(structure)
		default:
			return snapshot.Options{}, fmt.Errorf("invalid structure style %q (want %q or %q)",
				structure, snapshot.StructureShallow, snapshot.StructureFull)
		}
	}

	decode := fileCfg.Decode
	if cmd.Flags().Changed("decode") {
		decode = flagDecode
	}
	if decode != "" {
		switch snapshot.DecodePolicy(decode) {
		case snapshot.DecodeDrop, snapshot.DecodeReplace:
			opts.Decode = snapshot.DecodePolicy(decode)
		default:
			return snapshot.Options{}, fmt.Errorf("invalid decode policy %q (want %q or %q)",
				decode, snapshot.DecodeDrop, snapshot.DecodeReplace)
		}
	}

	logger.Debug("Resolved run options",
		zap.Strings("ignoreDirs", opts.IgnoreDirs),
		zap.Strings("ignoreFiles", opts.IgnoreFiles),
		zap.Strings("ignoreExts", opts.IgnoreExts),
		zap.String("structure", string(opts.Structure)),
		zap.String("decode", string(opts.Decode)))
	return opts, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the output to a file instead of stdout")
	RootCmd.Flags().BoolVarP(&flagClipboard, "clipboard", "c", false, "Copy the output to the system clipboard")
	RootCmd.Flags().StringArrayVar(&flagIgnoreDirs, "ignore-dir", nil, "Directory name to ignore (repeatable, replaces defaults)")
	RootCmd.Flags().StringArrayVar(&flagIgnoreFiles, "ignore-file", nil, "File name to ignore (repeatable, replaces defaults)")
	RootCmd.Flags().StringArrayVar(&flagIgnoreExts, "ignore-ext", nil, "File extension to ignore, e.g. 'log' or '.tmp' (repeatable, replaces defaults)")
	RootCmd.Flags().StringVar(&flagStructure, "structure", string(snapshot.StructureShallow), "Structure listing style: shallow or full")
	RootCmd.Flags().StringVar(&flagDecode, "decode", string(snapshot.DecodeDrop), "Invalid UTF-8 handling: drop or replace")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	RootCmd.MarkFlagsMutuallyExclusive("output", "clipboard")
}
