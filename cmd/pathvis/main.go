// Command pathvis is the interactive terminal front end: it renders the
// grid, lets the user edit walls and endpoints, and replays single or
// comparison runs of the search engines.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aneeshsunganahalli/PathVisualiser/vizconfig"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		rows    int
		cols    int
		seed    int64
		speed   int
	)

	cmd := &cobra.Command{
		Use:   "pathvis",
		Short: "Interactive grid pathfinding visualizer",
		Long: `pathvis generates a maze, runs DFS / BFS / A* / Weighted A* / IDA*
over it, and replays their exploration side by side in the terminal.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := vizconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			// flags override file values when set
			if cmd.Flags().Changed("rows") {
				cfg.Rows = rows
			}
			if cmd.Flags().Changed("cols") {
				cfg.Cols = cols
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("speed") {
				cfg.Speed = speed
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			m, err := newModel(cfg)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "pathvis.yaml", "path to the YAML run configuration")
	cmd.Flags().IntVar(&rows, "rows", vizconfig.DefaultRows, "maze rows (forced odd)")
	cmd.Flags().IntVar(&cols, "cols", vizconfig.DefaultCols, "maze cols (forced odd)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "maze seed (0 = fresh entropy per maze)")
	cmd.Flags().IntVar(&speed, "speed", vizconfig.DefaultSpeed, "replay speed in [1,100]")

	return cmd
}
