package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"skill-gap/internal/app"
	"skill-gap/internal/config"
	"skill-gap/internal/pipeline"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting against your skills",
	Long:  "Analyze reads a posting from --text, --file (\"-\" for stdin) or --url, extracts the required skills and compares them with --skills.",
	RunE:  runAnalyze,
}

var (
	analyzeText     string
	analyzeFile     string
	analyzeURL      string
	analyzeSkills   string
	analyzeDBPath   string
	analyzeHeadless bool
	analyzeNoSave   bool
	analyzeWithPath bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Posting text")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a posting text file, - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "Posting URL to fetch")
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Your skills, comma separated")
	analyzeCmd.Flags().StringVar(&analyzeDBPath, "db", "", "SQLite history file (default SQLITE_PATH)")
	analyzeCmd.Flags().BoolVar(&analyzeHeadless, "headless", false, "Fall back to headless Chrome for JavaScript pages")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Do not record the result in history")
	analyzeCmd.Flags().BoolVar(&analyzeWithPath, "learning-path", false, "Also build a learning path for the gaps")

	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOutput struct {
	Analysis     usecase.AnalysisResult `json:"analysis"`
	LearningPath *pipeline.LearningPath `json:"learning_path,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	sources := 0
	for _, set := range []bool{analyzeText != "", analyzeFile != "", analyzeURL != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("provide exactly one of --text, --file or --url")
	}

	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}
	if analyzeHeadless {
		cfg.Fetch.Headless = true
	}

	text := analyzeText
	if analyzeFile != "" {
		text, err = readPosting(cmd.InOrStdin(), analyzeFile)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	logger := newLogger()
	parts := app.AnalysisParts{Profile: repository.NewStaticProfile(analyzeSkills)}

	persist := !analyzeNoSave
	if persist {
		store, err := repository.OpenSQLiteAnalysisRepository(ctx, dbPath(cfg, analyzeDBPath))
		if err != nil {
			return err
		}
		defer store.Close()
		parts.Store = store
	}

	uc, err := app.BuildAnalysis(cfg, nil, parts, logger)
	if err != nil {
		return err
	}

	res, err := uc.Analyze(ctx, uuid.Nil, usecase.AnalyzeInput{Text: text, URL: analyzeURL, Persist: &persist})
	if err != nil {
		return err
	}

	out := analyzeOutput{Analysis: res}
	if analyzeWithPath {
		path := uc.GenerateLearningPath(ctx, res.Gaps)
		out.LearningPath = &path
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func readPosting(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read posting: %w", err)
	}
	return string(b), nil
}

func dbPath(cfg config.Config, flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return p
	}
	return cfg.Database.SQLitePath
}
