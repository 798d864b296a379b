package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/actiongen/config"
	"github.com/wippyai/actiongen/rewrite"
)

var (
	flagWrite       bool
	flagList        bool
	flagVerbose     bool
	flagInteractive bool
	flagConfig      string
)

func main() {
	root := &cobra.Command{
		Use:   "actiongen [files or directories]",
		Short: "Rewrite marked handlers into deferred-execution wrappers",
		Long: `actiongen rewrites Go functions marked with ` + rewrite.Directive + `
so that calling them returns a *future.Handle instead of running the
body. Without -w the rewritten sources are printed to stdout.

Any error halts the run with a diagnostic; no partial output is written.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&flagWrite, "write", "w", false, "overwrite source files in place")
	root.Flags().BoolVarP(&flagList, "list", "l", false, "list marked functions, change nothing")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	root.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "interactive preview mode")
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "config file (default "+config.DefaultPath+")")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = cfg.Src
	}
	if len(args) == 0 {
		return fmt.Errorf("no input files (name paths or set src in %s)", config.DefaultPath)
	}

	if flagVerbose || cfg.Verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck
		rewrite.SetLogger(log)
	}

	files, err := collect(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .go files under %s", strings.Join(args, ", "))
	}

	if flagInteractive {
		return runInteractive(files)
	}

	write := flagWrite || cfg.Write
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		if flagList {
			funcs, err := rewrite.Marked(file, src)
			if err != nil {
				return err
			}
			for _, fn := range funcs {
				fmt.Printf("%s:%d: %s\n", file, fn.Line, fn.Name)
			}
			continue
		}

		res, err := rewrite.Rewrite(file, src)
		if err != nil {
			return err
		}
		if write {
			if res.Changed {
				if err := os.WriteFile(file, res.Output, 0o644); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := os.Stdout.Write(res.Output); err != nil {
			return err
		}
	}
	return nil
}

// collect expands arguments into .go files, walking directories and
// skipping testdata, hidden, and _-prefixed entries per Go tool
// conventions. Test files are never rewritten.
func collect(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		root := arg
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if path != root && (name == "testdata" ||
					strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
