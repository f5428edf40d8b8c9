package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopsim/floornav/pkg/cache"
	"github.com/shopsim/floornav/pkg/layout"
	"github.com/shopsim/floornav/pkg/plan"
)

// defaultCacheTTL is how long cached plans stay valid.
const defaultCacheTTL = 24 * time.Hour

// buildCommand creates the build command for generating navigation plans.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		output    string
		noCache   bool
		redisAddr string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "build [config.toml]",
		Short: "Build a navigation plan from a store layout config",
		Long: `Build a navigation plan from a store layout config.

The build command reads a TOML layout config, lays out the checkout lanes
and shelf aisles, stitches in the lobby and exterior, and writes the
resulting zone adjacency graph as a plan.json file.

Results are cached keyed by the config contents; identical configs reuse
the cached plan. Use --redis to share the cache across machines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], output, noCache, redisAddr, ttl)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.plan.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address (host:port) for a shared cache")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", defaultCacheTTL, "how long cached plans stay valid")

	return cmd
}

// runBuild loads the config, builds or reuses the plan, and writes output.
func (c *CLI) runBuild(ctx context.Context, input, output string, noCache bool, redisAddr string, ttl time.Duration) error {
	cfg, err := layout.LoadConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	store, err := newCache(ctx, noCache, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	prog := newProgress(c.Logger)

	key := cache.PlanKey(cfg)
	var doc plan.Document
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache read failed", "err", err)
		hit = false
	}
	if hit {
		doc, err = plan.UnmarshalPlan(data)
		if err != nil {
			c.Logger.Debug("discarding corrupt cache entry", "key", key, "err", err)
			hit = false
		}
	}

	if !hit {
		p, err := layout.Build(cfg, layout.Options{Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("build layout: %w", err)
		}
		doc = plan.FromPlan(p)

		if data, err := plan.MarshalPlan(doc); err == nil {
			if err := store.Set(ctx, key, data, ttl); err != nil {
				c.Logger.Debug("cache write failed", "err", err)
			}
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".plan.json"
	}

	if err := plan.WritePlanFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Built plan %s", doc.ID))
	printSuccess("Plan complete")
	printFile(outputPath)
	printStats(len(doc.Zones), len(doc.Edges), hit)
	printNewline()
	printNextStep("Render", "floornav render "+outputPath)

	return nil
}
