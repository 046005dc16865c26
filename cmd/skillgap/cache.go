package main

import (
	"fmt"

	"skill-gap/internal/config"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/infrastructure/resources"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the learning resource cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge [skill]",
	Short: "Drop cached resources for one skill, or for all skills",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}
	if !cfg.Redis.Enabled() {
		return fmt.Errorf("REDIS_HOST is not set")
	}

	rc := cache.NewRedis(cmd.Context(), cfg.Redis, newLogger())
	defer rc.Close()
	if !rc.Available() {
		return cache.ErrUnavailable
	}

	if len(args) == 1 {
		key := resources.CacheKey(args[0])
		if err := rc.Delete(cmd.Context(), key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %s\n", key)
		return nil
	}
	if err := rc.DeleteByPattern(cmd.Context(), resources.CacheKey("")+"*"); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "purged all cached resources")
	return nil
}
