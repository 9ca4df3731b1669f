package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/config"
	"github.com/assuranceops/verdict/internal/engine"
)

var assessInput string

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score one assessment payload and print the report",
	Long: `Reads an assessment payload from --input (or stdin when omitted),
runs the scoring pipeline offline, and writes the report JSON to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess()
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessInput, "input", "", "path to assessment payload JSON")
}

type assessPayload struct {
	Context struct {
		Activity string `json:"activity"`
		Stage    string `json:"stage"`
	} `json:"context"`
	Responses     map[string]any `json:"responses"`
	Likelihood    map[string]any `json:"likelihood"`
	Impact        map[string]any `json:"impact"`
	Detectability map[string]any `json:"detectability"`
}

func runAssess() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var data []byte
	if assessInput != "" {
		data, err = os.ReadFile(assessInput)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	var payload assessPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}

	activity, ok := catalog.ParseActivity(payload.Context.Activity)
	if !ok {
		return fmt.Errorf("unknown activity: %s", payload.Context.Activity)
	}
	stage, ok := catalog.ParseStage(payload.Context.Stage)
	if !ok {
		return fmt.Errorf("unknown stage: %s", payload.Context.Stage)
	}

	// Logs go to stderr so stdout stays valid report JSON.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	eng := engine.New(catalog.DefaultLibrary(), engine.Thresholds{
		Low:             cfg.Engine.LowThreshold,
		High:            cfg.Engine.HighThreshold,
		TopContributors: cfg.Engine.TopContributors,
	}, logger)

	report := eng.Run(catalog.Context{Activity: activity, Stage: stage}, engine.Inputs{
		Responses:     payload.Responses,
		Likelihood:    payload.Likelihood,
		Impact:        payload.Impact,
		Detectability: payload.Detectability,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
