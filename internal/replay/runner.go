package replay

import (
	"fmt"

	"github.com/Adlai-Holler/ShameBell/internal/adapters/recorder"
	"github.com/Adlai-Holler/ShameBell/internal/domain"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/services"
)

// Result is the outcome of one replayed step
type Result struct {
	Calls []string // outbound player and view calls
	Err   error    // error returned by the bell, e.g. a failed Play
	From  domain.State
	Step  Step
	To    domain.State
}

// Report is the outcome of a whole replay
type Report struct {
	Initial []string // calls made while loading the view
	Name    string
	Results []Result
}

// Run feeds the script into a fresh bell backed by a recorder. It stops at
// the first failed expectation, returning the steps run so far.
func Run(script *Script) (*Report, error) {
	return RunWith(script, recorder.New())
}

// RunWith replays the script against the given recorder
func RunWith(script *Script, rec *recorder.Recorder) (*Report, error) {
	bell := services.NewBellService(rec, rec)
	report := &Report{
		Initial: rec.Drain(),
		Name:    script.Name,
	}

	logging.Logger.Info("Replaying script", "name", script.Name, "steps", len(script.Steps))

	for i, step := range script.Steps {
		result := Result{From: bell.State(), Step: step}

		var err error
		switch step.Event {
		case domain.TouchBegan.String():
			_, err = bell.BeginTouch(domain.TouchID(step.Touch))
		case domain.TouchEnded.String():
			_, err = bell.EndTouch(domain.TouchID(step.Touch))
		case EventTouchCanceled:
			_, err = bell.CancelTouch(domain.TouchID(step.Touch))
		case domain.Shake.String():
			_, err = bell.Shake()
		case domain.AudioFinished.String():
			rec.Finish()
			_, err = bell.AudioFinished()
		case domain.AudioInterrupted.String():
			_, err = bell.AudioInterrupted()
		case EventOrientation:
			bell.OrientationChanged(step.UpsideDown, step.IsPortrait())
		default:
			return report, fmt.Errorf("step %d: %w: %q", i+1, domain.ErrUnknownEvent, step.Event)
		}

		result.Err = err
		result.To = bell.State()
		result.Calls = rec.Drain()
		report.Results = append(report.Results, result)

		if step.Expect == "" {
			continue
		}
		expected, perr := domain.ParseState(step.Expect)
		if perr != nil {
			return report, fmt.Errorf("step %d: %w: %v", i+1, domain.ErrInvalidScript, perr)
		}
		if expected != result.To {
			return report, fmt.Errorf("step %d (%s): %w: expected %s, got %s",
				i+1, step.Describe(), domain.ErrExpectationFailed, expected, result.To)
		}
	}

	return report, nil
}

// Final returns the state after the last replayed step
func (r *Report) Final() domain.State {
	if len(r.Results) == 0 {
		return domain.Idle
	}
	return r.Results[len(r.Results)-1].To
}
