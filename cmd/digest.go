package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/aggregate"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/ai"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/digest"

	"github.com/spf13/cobra"
)

var (
	digestDays     int
	digestOut      string
	digestTitle    string
	digestTop      int
	digestLanguage string
)

// digestCmd renders a markdown digest of the most recent activity. When an
// OpenAI key is configured the digest opens with a generated narrative
// summary; otherwise a plain highlights line is used.
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Render a markdown digest of recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		store, cleanup, err := buildCache(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		now := time.Now().UTC()
		topN := digestTop
		if topN <= 0 {
			topN = cfg.Digest.TopN
		}
		if topN <= 0 {
			topN = 20
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		orch := buildOrchestrator(cfg, store)
		page, err := aggregate.Query(orch.Aggregate(ctx), aggregate.Options{
			From:  now.AddDate(0, 0, -digestDays),
			Limit: topN,
		})
		if err != nil {
			return err
		}

		title := strings.TrimSpace(digestTitle)
		if title == "" {
			title = "Developer Digest {.CurrentDate}"
		}
		title = digest.ExpandVars(title, now)
		slug := "digest-" + now.Format("20060102")

		data := digest.Data{
			Title:    title,
			Slug:     slug,
			Datetime: now.Format("2006-01-02 15:04"),
			Items:    make([]digest.Item, 0, len(page)),
		}
		for _, it := range page {
			data.Items = append(data.Items, digest.Item{
				Title:       it.Title,
				URL:         it.URL,
				Source:      string(it.Source),
				Type:        string(it.Type),
				Repo:        it.RepoName,
				Description: it.Description,
				Created:     it.Timestamp.UTC().Format("2006-01-02 15:04"),
			})
		}

		if cfg.OpenAI.APIKey != "" {
			summarizer := ai.NewOpenAI(ai.Config{
				APIKey:  cfg.OpenAI.APIKey,
				Model:   cfg.OpenAI.Model,
				BaseURL: cfg.OpenAI.BaseURL,
			})
			// Rely on per-call timeouts inside the AI client.
			if s, err := summarizer.SummarizeActivities(context.Background(), page, digestLanguage); err == nil {
				// Frontmatter blocks are single-indented; keep the summary on one line.
				data.Summary = strings.Join(strings.Fields(s), " ")
			}
		}
		if strings.TrimSpace(data.Summary) == "" && len(page) > 0 {
			n := len(page)
			if n > 3 {
				n = 3
			}
			titles := make([]string, 0, n)
			for i := 0; i < n; i++ {
				titles = append(titles, page[i].Title)
			}
			data.Summary = fmt.Sprintf("Recent highlights: %s.", strings.Join(titles, ", "))
		}

		out, err := digest.Render(data)
		if err != nil {
			return err
		}

		path := strings.TrimSpace(digestOut)
		if path == "-" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		if path == "" {
			path = filepath.Join(cfg.Digest.OutputDir, slug+".md")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return err
		}
		slog.Info("digest: written", "path", path, "items", len(data.Items))
		return nil
	},
}

func init() {
	digestCmd.Flags().IntVar(&digestDays, "days", 7, "window of recent days to cover")
	digestCmd.Flags().StringVar(&digestOut, "out", "", "output file; \"-\" prints to stdout (default: digest.output_dir)")
	digestCmd.Flags().StringVar(&digestTitle, "title", "", "digest title; supports {.CurrentDate}")
	digestCmd.Flags().IntVar(&digestTop, "top", 0, "maximum entries (default: digest.top_n)")
	digestCmd.Flags().StringVar(&digestLanguage, "language", "", "summary language (default: English)")
	rootCmd.AddCommand(digestCmd)
}
