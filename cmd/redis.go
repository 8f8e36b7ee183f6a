package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/cache"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/redisclient"

	"github.com/spf13/cobra"
)

// redisCmd groups diagnostics for the redis cache backend.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis cache diagnostics",
}

var redisPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping the configured redis server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		res, err := rdb.Ping(ctx).Result()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

// redisCacheCmd lists the cached per-source batches and how long each one
// will keep being served.
var redisCacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "List cached batches and their remaining TTL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var (
			cursor uint64
			keys   []string
		)
		for {
			batch, next, err := rdb.Scan(ctx, cursor, cache.ResultKeyPrefix+"*", 100).Result()
			if err != nil {
				return err
			}
			keys = append(keys, batch...)
			cursor = next
			if cursor == 0 {
				break
			}
		}
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no cached batches")
			return nil
		}

		sort.Strings(keys)
		for _, key := range keys {
			ttl, err := rdb.TTL(ctx, key).Result()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tttl=%s\n", key, ttl)
		}
		return nil
	},
}

func init() {
	redisCmd.AddCommand(redisPingCmd, redisCacheCmd)
	rootCmd.AddCommand(redisCmd)
}
