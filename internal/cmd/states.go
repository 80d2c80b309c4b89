package cmd

import (
	"fmt"
	"strings"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// StatesCmd prints the bell's transition table
type StatesCmd struct {
	Effects bool `help:"Show the effects of each transition"`
}

// Run executes the states command
func (s *StatesCmd) Run(cli *CLI) error {
	fmt.Println(renderStates(s.Effects))
	return nil
}

// renderStates builds one row per event and one column per starting state
func renderStates(withEffects bool) string {
	headers := []string{"EVENT"}
	for _, state := range domain.States {
		headers = append(headers, strings.ToUpper(state.String()))
	}

	rows := make([][]string, 0, len(domain.Events))
	for _, event := range domain.Events {
		row := []string{event.String()}
		for _, state := range domain.States {
			row = append(row, describeTransition(state, event, withEffects))
		}
		rows = append(rows, row)
	}

	return renderTable(headers, rows)
}

func describeTransition(state domain.State, event domain.Event, withEffects bool) string {
	next, effects := domain.Reduce(state, event)
	if next == state {
		return "-"
	}
	if !withEffects {
		return next.String()
	}

	names := make([]string, len(effects))
	for i, effect := range effects {
		names[i] = effect.String()
	}
	return fmt.Sprintf("%s (%s)", next, strings.Join(names, ", "))
}
