package main

import (
	"net/http"
	"os"
	"time"

	"levantamiento_service/internal/adapter/backend"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/infrastructure/export"
	"levantamiento_service/internal/usecase"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rejectComment string
	reopenReason  string
	exportOutPath string
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Inspect and review a survey on the backend",
}

var surveyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show block statuses, rejected blocks and budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		printSurvey(cmd.OutOrStdout(), w.Survey(), w.Budget())
		return nil
	},
}

var surveyApproveCmd = &cobra.Command{
	Use:   "approve <id> <block>",
	Short: "Approve a pending block",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := parseBlockArg(args[1])
		if err != nil {
			return err
		}
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		s, err := w.ApproveBlock(cmd.Context(), block)
		if err != nil {
			return eris.Wrapf(err, "approve %s", block)
		}
		zap.L().Info("block approved", zap.String("survey_id", s.ID), zap.String("block", string(block)))
		printSurvey(cmd.OutOrStdout(), s, w.Budget())
		return nil
	},
}

var surveyRejectCmd = &cobra.Command{
	Use:   "reject <id> <block>",
	Short: "Reject a pending block with a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := parseBlockArg(args[1])
		if err != nil {
			return err
		}
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		s, err := w.RejectBlock(cmd.Context(), block, rejectComment)
		if err != nil {
			return eris.Wrapf(err, "reject %s", block)
		}
		zap.L().Info("block rejected", zap.String("survey_id", s.ID), zap.String("block", string(block)))
		printSurvey(cmd.OutOrStdout(), s, w.Budget())
		return nil
	},
}

var surveyApproveAllCmd = &cobra.Command{
	Use:   "approve-all <id>",
	Short: "Approve every pending block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		s, err := w.ApproveAll(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "approve all")
		}
		printSurvey(cmd.OutOrStdout(), s, w.Budget())
		return nil
	},
}

var surveyReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Return every block to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		s, err := w.Reopen(cmd.Context(), reopenReason)
		if err != nil {
			return eris.Wrap(err, "reopen")
		}
		printSurvey(cmd.OutOrStdout(), s, w.Budget())
		return nil
	},
}

var surveyHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "List the review events of a survey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newUseCase()
		if err != nil {
			return err
		}
		p, err := principal()
		if err != nil {
			return err
		}
		events, err := uc.History(cmd.Context(), p, args[0])
		if err != nil {
			return eris.Wrap(err, "history")
		}
		printHistory(cmd.OutOrStdout(), events)
		return nil
	},
}

var surveyExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write the survey review to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		raw, err := export.GenerateSurveyWorkbook(w.Survey())
		if err != nil {
			return eris.Wrap(err, "generate workbook")
		}
		out := exportOutPath
		if out == "" {
			out = "levantamiento-" + w.Survey().ID + ".xlsx"
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", out)
		}
		zap.L().Info("workbook written", zap.String("path", out))
		return nil
	},
}

func init() {
	surveyRejectCmd.Flags().StringVar(&rejectComment, "comment", "", "rejection comment (required)")
	_ = surveyRejectCmd.MarkFlagRequired("comment")
	surveyReopenCmd.Flags().StringVar(&reopenReason, "reason", "", "optional reason for reopening")
	surveyExportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "output file (default levantamiento-<id>.xlsx)")

	surveyCmd.AddCommand(surveyShowCmd, surveyApproveCmd, surveyRejectCmd, surveyApproveAllCmd,
		surveyReopenCmd, surveyHistoryCmd, surveyExportCmd)
	rootCmd.AddCommand(surveyCmd)
}

func newUseCase() (*usecase.SurveyReviewUseCase, error) {
	if cfg.Backend.BaseURL == "" {
		return nil, eris.New("backend base URL is required (--backend or SURVEYS_BACKEND_BASE_URL)")
	}
	p, err := principal()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.Backend.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: timeout}),
		backend.WithToken(cfg.Backend.Token),
		backend.WithPrincipal(p),
	)
	return usecase.NewSurveyReviewUseCase(client, client), nil
}

func loadWorkflow(cmd *cobra.Command, surveyID string) (*usecase.SurveyReviewWorkflow, error) {
	uc, err := newUseCase()
	if err != nil {
		return nil, err
	}
	p, err := principal()
	if err != nil {
		return nil, err
	}
	w := usecase.NewSurveyReviewWorkflow(uc, p, surveyID)
	if _, err := w.Load(cmd.Context()); err != nil {
		return nil, eris.Wrapf(err, "load survey %s", surveyID)
	}
	return w, nil
}

func parseBlockArg(raw string) (entities.Block, error) {
	block, ok := entities.ParseBlock(raw)
	if !ok {
		return "", eris.Errorf("unknown block %q (budget, investment, materials, travel_expenses)", raw)
	}
	return block, nil
}
