package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang-cz/devslog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/nekrich/glob/pkg/glob"
	"github.com/nekrich/glob/pkg/walker"
)

var Version = "DEV"

var (
	flagDir         string
	flagHidden      bool
	flagPeriod      bool
	flagLeadingDirs bool
	flagNoSort      bool
	flagVerbose     bool
)

var dirStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var rootCmd = &cobra.Command{
	Use:   "glob [flags] PATTERN...",
	Short: "Match extended-glob patterns against a directory tree",
	Long: `glob walks a directory tree and prints every path matching one of the
given patterns. Patterns support ? * ** [...] and the extended groups
@() ?() +() *() !(); see the package documentation for the full syntax.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.Flags().StringVarP(&flagDir, "dir", "C", ".", "directory to search")
	rootCmd.Flags().BoolVar(&flagHidden, "hidden", false, "walk into dot-entries")
	rootCmd.Flags().BoolVar(&flagPeriod, "period", false, "require leading periods to be matched by a literal period")
	rootCmd.Flags().BoolVar(&flagLeadingDirs, "leading-dirs", false, "report everything under a fully matched directory")
	rootCmd.Flags().BoolVar(&flagNoSort, "no-sort", false, "keep walk order instead of sorting by path")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log skipped directories")
}

func run(cmd *cobra.Command, args []string) error {
	initLogging()

	opts := glob.DefaultOptions()
	opts.MatchLeadingDirectories = flagLeadingDirs
	opts.RequireLiteralLeadingPeriod = flagPeriod

	w := &walker.Walker{
		IncludeHidden: flagHidden,
		OnError: func(dir string, err error) bool {
			slog.Debug("skipping directory", "dir", dir, "error", err)
			return true
		},
	}

	var all []walker.Entry
	for _, arg := range args {
		p, err := glob.Compile(arg, opts)
		if err != nil {
			return err
		}
		matches, err := w.Glob(flagDir, p)
		if err != nil {
			return err
		}
		all = append(all, matches...)
	}

	all = lo.UniqBy(all, func(e walker.Entry) string { return e.Path })
	if !flagNoSort {
		slices.SortFunc(all, func(a, b walker.Entry) bool { return a.Path < b.Path })
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	for _, e := range all {
		line := e.Path
		if tty && e.Dir {
			line = dirStyle.Render(line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func initLogging() {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	handler := devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: level},
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
