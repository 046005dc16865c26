package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetAnalyzeFlags() {
	analyzeText, analyzeFile, analyzeURL, analyzeSkills, analyzeDBPath = "", "", "", "", ""
	analyzeHeadless, analyzeNoSave, analyzeWithPath = false, false, false
}

func TestAnalyzeCommand_SavesAndLists(t *testing.T) {
	t.Cleanup(resetAnalyzeFlags)
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, "", "analyze",
		"--text", "Senior React Developer with Node.js and AWS experience",
		"--skills", "react, python",
		"--db", db,
		"--learning-path")
	require.NoError(t, err)

	var got struct {
		Analysis struct {
			Matched         []string `json:"matched"`
			Gaps            []string `json:"gaps"`
			MatchPercentage int      `json:"match_percentage"`
			Degraded        bool     `json:"degraded"`
		} `json:"analysis"`
		LearningPath *struct {
			Entries []struct {
				Skill string `json:"skill"`
			} `json:"entries"`
		} `json:"learning_path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"React"}, got.Analysis.Matched)
	assert.Equal(t, []string{"Node.js", "AWS"}, got.Analysis.Gaps)
	assert.Equal(t, 33, got.Analysis.MatchPercentage)
	assert.False(t, got.Analysis.Degraded)
	require.NotNil(t, got.LearningPath)
	assert.Len(t, got.LearningPath.Entries, 2)

	out, err = execute(t, "", "history", "--db", db, "-n", "5")
	require.NoError(t, err)
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 1)
}

func TestAnalyzeCommand_StdinWithoutSkillsIsDegraded(t *testing.T) {
	t.Cleanup(resetAnalyzeFlags)

	out, err := execute(t, "We deploy with Docker on Kubernetes", "analyze", "-f", "-", "--no-save")
	require.NoError(t, err)

	var got struct {
		Analysis struct {
			RequiredSkills  []string `json:"required_skills"`
			Degraded        bool     `json:"degraded"`
			DegradedReasons []string `json:"degraded_reasons"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"Docker", "Kubernetes"}, got.Analysis.RequiredSkills)
	assert.True(t, got.Analysis.Degraded)
	assert.Equal(t, []string{"profile_unavailable"}, got.Analysis.DegradedReasons)
}

func TestAnalyzeCommand_NeedsExactlyOneSource(t *testing.T) {
	t.Cleanup(resetAnalyzeFlags)

	_, err := execute(t, "", "analyze", "--no-save")
	assert.ErrorContains(t, err, "exactly one")
}

func TestReadPosting(t *testing.T) {
	p := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(p, []byte("Go and Docker"), 0o600))

	text, err := readPosting(nil, p)
	require.NoError(t, err)
	assert.Equal(t, "Go and Docker", text)

	text, err = readPosting(strings.NewReader("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)

	_, err = readPosting(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestTaxonomyCommand(t *testing.T) {
	out, err := execute(t, "", "taxonomy")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Frontend"`)
}

func TestTokenCommand(t *testing.T) {
	t.Cleanup(func() { tokenUser = "" })
	t.Setenv("JWT_ACCESS_SECRET", "cli-secret")

	out, err := execute(t, "", "token", "--user", "0b7f0c7e-9d1c-4a55-8f5e-3f3b8c2d1a10")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)

	_, err = execute(t, "", "token", "--user", "nope")
	assert.Error(t, err)
}

func TestLearningPathCommand_RequiresSkills(t *testing.T) {
	t.Cleanup(func() { pathSkills = "" })

	_, err := execute(t, "", "learning-path", "--skills", " , ")
	assert.ErrorContains(t, err, "--skills")
}
