package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/logger"
	"resume-matcher/internal/shared/config"
	"resume-matcher/resume/match"
	"resume-matcher/resume/model"
	"resume-matcher/resume/parser"
)

type analysisOutput struct {
	Parsed      model.ParsedResume `json:"parsed"`
	Match       *model.MatchResult `json:"match,omitempty"`
	Suggestions []model.Suggestion `json:"suggestions,omitempty"`
}

func main() {
	resumePath := flag.String("resume", "", "path to a resume file (pdf, docx, or txt)")
	jobPath := flag.String("job", "", "optional path to a job description text file")
	outPath := flag.String("out", "./out/analysis.json", "output path for the analysis JSON")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *resumePath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzedemo -resume <file> [-job <file>] [-out <file>]")
		os.Exit(1)
	}

	output, err := analyze(log, cfg, *resumePath, *jobPath)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writeOutput(*outPath, output); err != nil {
		log.Error("write failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("analysis written", zap.String("path", *outPath))
}

func analyze(log *zap.Logger, cfg config.Config, resumePath, jobPath string) (analysisOutput, error) {
	data, err := os.ReadFile(resumePath)
	if err != nil {
		return analysisOutput{}, err
	}

	text, err := extract.Text(context.Background(), data, "", filepath.Base(resumePath))
	if err != nil {
		return analysisOutput{}, err
	}
	log.Debug("text extracted", zap.Int("chars", len(text)))

	parsed := parser.Parse(text, parser.Limits{
		MaxSkills:     cfg.MaxSkills,
		MaxExperience: cfg.MaxExperience,
		MaxProjects:   cfg.MaxProjects,
		MaxSummaryLen: cfg.MaxSummaryChars,
	})
	log.Info("resume parsed",
		zap.Int("skills", len(parsed.Skills)),
		zap.Int("experience", len(parsed.Experience)),
		zap.Int("education", len(parsed.Education)),
	)

	output := analysisOutput{Parsed: parsed}
	if jobPath == "" {
		return output, nil
	}

	jobData, err := os.ReadFile(jobPath)
	if err != nil {
		return analysisOutput{}, err
	}
	jobText := string(jobData)

	result := match.Match(parsed, jobText)
	output.Match = &result
	output.Suggestions = match.Suggest(parsed, jobText)
	log.Info("resume scored",
		zap.Int("score", result.Score),
		zap.Int("matchingSkills", len(result.MatchingSkills)),
		zap.Int("suggestions", len(output.Suggestions)),
	)
	return output, nil
}

func writeOutput(outPath string, output analysisOutput) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, payload, 0o644)
}
