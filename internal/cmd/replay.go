package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Adlai-Holler/ShameBell/internal/replay"
	"github.com/Adlai-Holler/ShameBell/internal/theme"
)

// ReplayCmd replays an event script against a headless bell
type ReplayCmd struct {
	Script string `arg:"" help:"YAML script to replay" type:"path"`
}

// Run executes the replay command
func (r *ReplayCmd) Run(cli *CLI) error {
	script, err := replay.Load(r.Script)
	if err != nil {
		return err
	}

	report, runErr := replay.Run(script)
	fmt.Println(renderReport(report))
	if runErr != nil {
		return runErr
	}

	fmt.Printf("%s %s\n", theme.StatusKeyStyle.Render("final state:"), theme.StateStyle(report.Final()).Render(report.Final().String()))
	return nil
}

// renderReport prints the replay title and a row per step
func renderReport(report *replay.Report) string {
	rows := make([][]string, 0, len(report.Results))
	for i, result := range report.Results {
		transition := result.From.String()
		if result.To != result.From {
			transition += " → " + result.To.String()
		}
		calls := strings.Join(result.Calls, ", ")
		if result.Err != nil {
			calls += " (error: " + result.Err.Error() + ")"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), result.Step.Describe(), transition, calls})
	}

	title := theme.TitleStyle.Render("Replay: " + report.Name)
	return title + "\n" + renderTable([]string{"#", "EVENT", "STATE", "CALLS"}, rows)
}
