package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/aggregate"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	fetchSource string
	fetchFrom   string
	fetchTo     string
	fetchLimit  int
	fetchOffset int
	fetchFormat string
)

// fetchCmd runs one aggregation round and prints the filtered result. It
// exercises the same engine path as the HTTP API, without the transport.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and print aggregated activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		store, cleanup, err := buildCache(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		from, err := aggregate.ParseInstant(fetchFrom)
		if err != nil {
			return err
		}
		to, err := aggregate.ParseInstant(fetchTo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		orch := buildOrchestrator(cfg, store)
		page, err := aggregate.Query(orch.Aggregate(ctx), aggregate.Options{
			Source: fetchSource,
			From:   from,
			To:     to,
			Limit:  fetchLimit,
			Offset: fetchOffset,
		})
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(fetchFormat)) {
		case "", "json":
			b, err := json.MarshalIndent(page, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
		case "yaml":
			b, err := yaml.Marshal(page)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
		default:
			return fmt.Errorf("unknown format %q, want json or yaml", fetchFormat)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchSource, "source", "", "filter by source (github|stackoverflow)")
	fetchCmd.Flags().StringVar(&fetchFrom, "from", "", "inclusive lower bound (RFC 3339 or YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&fetchTo, "to", "", "inclusive upper bound (RFC 3339 or YYYY-MM-DD)")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", aggregate.DefaultLimit, "maximum items to print")
	fetchCmd.Flags().IntVar(&fetchOffset, "offset", 0, "items to skip")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(fetchCmd)
}
