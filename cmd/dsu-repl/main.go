// dsu-repl is an interactive shell over a single disjoint-set forest.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phroun/dsu/internal/config"
	"github.com/phroun/dsu/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		scriptPath string
		size       int
	)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dsu-repl",
		Short: "Interactive disjoint-set forest shell",
		Long:  `dsu-repl reads commands from stdin (or a script file) and applies them to one disjoint-set forest.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			log, logCloser, err := logger.Init(cfg.Log, nil)
			if err != nil {
				return err
			}
			defer logCloser.Close()

			var in io.Reader = cmd.InOrStdin()
			interactive := true
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
				interactive = false
			}

			r := NewREPL(bufio.NewReader(in), cmd.OutOrStdout(), log)
			r.interactive = interactive
			if size > 0 {
				r.cmdNew([]string{fmt.Sprint(size)})
			}
			return r.Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Read commands from this file instead of stdin")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "Create a forest of this many elements on startup")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	return cmd
}
