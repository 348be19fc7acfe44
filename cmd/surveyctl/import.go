package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"levantamiento_service/internal/adapter/persistence"
	"levantamiento_service/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Seed the configured store with surveys from a JSON file",
	Long:  "Reads one survey object or an array of surveys and creates them in the store selected by SURVEYS_STORE_DRIVER.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		surveys, err := readSurveys(args[0])
		if err != nil {
			return err
		}

		store, err := persistence.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, s := range surveys {
			created, err := store.Surveys.Create(ctx, s)
			if err != nil {
				return eris.Wrapf(err, "create survey %s", s.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", created.ID)
		}

		zap.L().Info("import complete",
			zap.Int("created", len(surveys)),
			zap.String("file", args[0]),
			zap.String("store", cfg.Store.Driver),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// readSurveys decodes a survey or a list of surveys and normalises their review
// state so every block carries a known status.
func readSurveys(path string) ([]entities.Survey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}

	var surveys []entities.Survey
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &surveys); err != nil {
			return nil, eris.Wrapf(err, "decode %s", path)
		}
	} else {
		var s entities.Survey
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, eris.Wrapf(err, "decode %s", path)
		}
		surveys = append(surveys, s)
	}

	for i := range surveys {
		surveys[i].WorkID = strings.TrimSpace(surveys[i].WorkID)
		if surveys[i].WorkID == "" {
			return nil, eris.Errorf("%s: survey %d has no work_id", path, i+1)
		}
		if surveys[i].ID == "" {
			surveys[i].ID = uuid.NewString()
		}
		for _, b := range entities.AllBlocks {
			rev := surveys[i].Reviews.Get(b)
			rev.Status = entities.ParseBlockStatus(string(rev.Status))
			surveys[i].Reviews = surveys[i].Reviews.With(b, rev)
		}
	}
	return surveys, nil
}
