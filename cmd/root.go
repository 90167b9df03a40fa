// Package cmd provides the root command and CLI setup for disksort.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/disksort/internal/adapter"
	"github.com/mouse-blink/disksort/internal/controller"
	"github.com/mouse-blink/disksort/internal/domain"
)

var logger *log.Logger
var configAdapter adapter.ConfigAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = newLogger(os.Stderr, log.InfoLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	configAdapter = adapter.NewLocalConfigAdapter()
	workflow = domain.NewWorkflow(ui, domain.NewOrchestrator(), logger)
}

var configFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disksort",
		Short: "Sort alternating rows of light and dark disks",
		Long: `Disksort solves the alternating disks problem: a row of 2n disks starting
L D L D ... is rearranged so all light disks sit left of all dark disks,
using only swaps of adjacent disks.

Two algorithms are available:
  - alternate    n+1 passes over even and odd adjacent pairs
  - lawnmower    forward and backward sweeps until nothing moves`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", fmt.Sprintf("config file (default %s if present)", adapter.DefaultConfigPath))
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when given, otherwise the default file if it exists.
func loadConfig() (adapter.Config, error) {
	if configFlag != "" {
		return configAdapter.Load(configFlag, true)
	}

	return configAdapter.Load(adapter.DefaultConfigPath, false)
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
