package main

import (
	"fmt"
	"strings"

	"skill-gap/internal/app"
	"skill-gap/internal/config"
	"skill-gap/internal/infrastructure/cache"

	"github.com/spf13/cobra"
)

var learningPathCmd = &cobra.Command{
	Use:   "learning-path",
	Short: "Build a learning path for a list of skills",
	RunE:  runLearningPath,
}

var (
	pathSkills       string
	pathResourcesURL string
)

func init() {
	learningPathCmd.Flags().StringVarP(&pathSkills, "skills", "s", "", "Skills to learn, comma separated")
	learningPathCmd.Flags().StringVar(&pathResourcesURL, "resources-url", "", "Resource catalog base URL (default RESOURCE_BASE_URL)")

	rootCmd.AddCommand(learningPathCmd)
}

func runLearningPath(cmd *cobra.Command, _ []string) error {
	skills := make([]string, 0)
	for _, s := range strings.Split(pathSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return fmt.Errorf("--skills is required")
	}

	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}
	if pathResourcesURL != "" {
		cfg.LearningPath.ResourceBaseURL = pathResourcesURL
	}

	logger := newLogger()
	rc := cache.NewRedis(cmd.Context(), cfg.Redis, logger)
	defer rc.Close()

	uc, err := app.BuildAnalysis(cfg, nil, app.AnalysisParts{Cache: rc}, logger)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), uc.GenerateLearningPath(cmd.Context(), skills))
}
