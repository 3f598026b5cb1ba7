package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mazeview/mazeview/internal/dataset"
	"github.com/mazeview/mazeview/pkg/jsonutil"
)

var inspectStrict bool

var inspectCmd = &cobra.Command{
	Use:   "inspect {index | task <id> | dataset}",
	Short: "Fetch and print a published document",
	Long: `Fetches one of the published documents and prints it as indented
JSON, after the same parsing the viewer applies. Useful for debugging a
dataset generation pipeline.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		c, err := newClient(logger)
		if err != nil {
			return err
		}
		ctx := context.Background()

		switch args[0] {
		case "index":
			idx, err := c.FetchIndex(ctx)
			if err != nil {
				return err
			}
			fmt.Println(jsonutil.PrettyJSON(jsonutil.MustMarshal(idx)))
			return nil

		case "task":
			if len(args) < 2 {
				return fmt.Errorf("inspect task requires a task id")
			}
			idx, err := c.FetchIndex(ctx)
			if err != nil {
				return err
			}
			entry, ok := idx.Entry(args[1])
			if !ok {
				return fmt.Errorf("task %q not in index", args[1])
			}
			data, err := c.FetchTaskData(ctx, entry)
			if err != nil {
				return err
			}
			fmt.Println(jsonutil.PrettyJSON(jsonutil.MustMarshal(data)))
			return nil

		case "dataset":
			if inspectStrict {
				samples, err := c.FetchDatasetStrict(ctx)
				if err != nil {
					return err
				}
				printDatasetSummary(samples)
				return nil
			}
			samples, warnings, err := c.FetchDataset(ctx)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Printf("warning: %s\n", w)
			}
			printDatasetSummary(samples)
			return nil
		}
		return fmt.Errorf("unknown document %q", args[0])
	},
}

func printDatasetSummary(samples []dataset.LayoutSample) {
	fmt.Println(jsonutil.PrettyJSON(jsonutil.MustMarshal(samples)))
	fmt.Printf("\n%d layouts", len(samples))
	if len(samples) > 0 {
		cat := dataset.NewCatalog(samples)
		fmt.Printf(", default %q", cat.Selected())
	}
	fmt.Println()
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false,
		"fail on any malformed dataset line")
}
