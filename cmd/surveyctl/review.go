package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

const (
	actionApprovePrefix = "approve:"
	actionRejectPrefix  = "reject:"
	actionApproveAll    = "approve_all"
	actionReopen        = "reopen"
	actionQuit          = "quit"
)

var surveyReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Review a survey interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow(cmd, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		for {
			printSurvey(out, w.Survey(), w.Budget())
			fmt.Fprintln(out)

			var in reviewInput
			if err := reviewForm(reviewOptions(w), &in).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return eris.Wrap(err, "review form")
			}
			if in.Action == actionQuit {
				return nil
			}
			if _, err := applyReviewAction(cmd.Context(), w, in); err != nil {
				// the held survey is unchanged; show the error and offer the actions again
				fmt.Fprintln(out, styleRejected.Render("error: "+err.Error()))
			}
		}
	},
}

func init() {
	surveyCmd.AddCommand(surveyReviewCmd)
}

// reviewOptions lists the actions currently offered for the held survey.
func reviewOptions(w *usecase.SurveyReviewWorkflow) []huh.Option[string] {
	var options []huh.Option[string]
	for _, b := range entities.AllBlocks {
		if !w.CanReview(b) {
			continue
		}
		options = append(options,
			huh.NewOption("Aprobar "+b.Title(), actionApprovePrefix+string(b)),
			huh.NewOption("Rechazar "+b.Title(), actionRejectPrefix+string(b)),
		)
	}
	if w.CanApproveAll() {
		options = append(options, huh.NewOption("Aprobar todos los bloques", actionApproveAll))
	}
	if w.CanReopen() {
		options = append(options, huh.NewOption("Reabrir para edición", actionReopen))
	}
	return append(options, huh.NewOption("Salir", actionQuit))
}

// reviewInput is what one pass of the review form collects.
type reviewInput struct {
	Action  string
	Comment string
	Reason  string
}

func reviewForm(options []huh.Option[string], in *reviewInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Acción").
				Options(options...).
				Value(&in.Action),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Comentario de rechazo").
				Value(&in.Comment).
				Validate(validateRejectComment),
		).WithHideFunc(func() bool {
			return !strings.HasPrefix(in.Action, actionRejectPrefix)
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Motivo de la reapertura (opcional)").
				Value(&in.Reason),
		).WithHideFunc(func() bool {
			return in.Action != actionReopen
		}),
	).WithShowHelp(false)
}

func validateRejectComment(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("el comentario es obligatorio")
	}
	return nil
}

// applyReviewAction runs the command selected in the form.
func applyReviewAction(ctx context.Context, w *usecase.SurveyReviewWorkflow, in reviewInput) (entities.Survey, error) {
	action := in.Action
	switch {
	case strings.HasPrefix(action, actionApprovePrefix):
		block, err := parseBlockArg(strings.TrimPrefix(action, actionApprovePrefix))
		if err != nil {
			return w.Survey(), err
		}
		return w.ApproveBlock(ctx, block)
	case strings.HasPrefix(action, actionRejectPrefix):
		block, err := parseBlockArg(strings.TrimPrefix(action, actionRejectPrefix))
		if err != nil {
			return w.Survey(), err
		}
		return w.RejectBlock(ctx, block, in.Comment)
	case action == actionApproveAll:
		return w.ApproveAll(ctx)
	case action == actionReopen:
		return w.Reopen(ctx, in.Reason)
	default:
		return w.Survey(), eris.Errorf("unknown action %q", action)
	}
}
