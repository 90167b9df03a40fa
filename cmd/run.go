package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/disksort/internal/domain"
	m "github.com/mouse-blink/disksort/internal/model"
)

const runLongDescription = `Sort the alternating row for each size n with each selected algorithm.

Sizes are integers or inclusive ranges:
  disksort run 4            one row of 8 disks
  disksort run 1..16        every size from 1 to 16
  disksort run 2 8 32..34   several sizes

Every final row is checked to be sorted, and all algorithms must agree on
the final row for each size. When no sizes are given, the sizes from the
config file are used.`

var runAlgorithmFlags []string
var runParallelFlag int
var runShardFlag string
var runRowsFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [sizes...]",
		Short: "Sort alternating disk rows",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sizes := cfg.Sizes
			if len(args) > 0 {
				sizes, err = parseSizes(args)
				if err != nil {
					return err
				}
			}

			algorithms := cfg.Algorithms
			if len(runAlgorithmFlags) > 0 {
				algorithms = parseAlgorithms(runAlgorithmFlags)
			}

			threads := cfg.Parallel
			if cmd.Flags().Changed("parallel") {
				threads = runParallelFlag
			}

			shardIndex, totalShards := parseShardFlag(runShardFlag)

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Sizes:           sizes,
				Algorithms:      algorithms,
				Threads:         threads,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				ShowRows:        cfg.ShowRows || runRowsFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&runAlgorithmFlags, "algorithm", "a", nil, "algorithm to run: alternate or lawnmower (can be repeated, default all)")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel sort workers")
	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().BoolVarP(&runRowsFlag, "rows", "r", false, "show initial and final rows")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// maxSizes caps how many sizes one invocation may expand to.
const maxSizes = 10000

// parseSizes expands integer and "a..b" tokens into a list of sizes.
func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))

	for _, arg := range args {
		lo, hi, isRange := strings.Cut(arg, "..")
		if !isRange {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid size %q: %w", arg, err)
			}

			if len(sizes) >= maxSizes {
				return nil, fmt.Errorf("too many sizes: more than %d", maxSizes)
			}

			sizes = append(sizes, n)

			continue
		}

		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid range start %q: %w", arg, err)
		}

		to, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid range end %q: %w", arg, err)
		}

		if from > to {
			return nil, fmt.Errorf("invalid range %q: start is after end", arg)
		}

		// to-from wraps negative when the span overflows int.
		if span := to - from; span < 0 || span >= maxSizes-len(sizes) {
			return nil, fmt.Errorf("invalid range %q: expands past %d sizes", arg, maxSizes)
		}

		for n := from; n <= to; n++ {
			sizes = append(sizes, n)
		}
	}

	return sizes, nil
}

func parseAlgorithms(names []string) []m.Algorithm {
	algorithms := make([]m.Algorithm, 0, len(names))
	for _, name := range names {
		algorithms = append(algorithms, m.Algorithm(strings.ToLower(strings.TrimSpace(name))))
	}

	return algorithms
}
