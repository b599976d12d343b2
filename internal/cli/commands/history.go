package commands

import (
	"github.com/spf13/cobra"

	"utr/internal/config"
	"utr/internal/history"
	"utr/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	recorder  *history.Recorder
	formatter *ui.Formatter
	limit     int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, recorder *history.Recorder, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		recorder:  recorder,
		formatter: formatter,
		limit:     20,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	records, err := hc.recorder.List(hc.limit)
	if err != nil {
		return err
	}

	return hc.formatter.PrintHistory(records)
}
