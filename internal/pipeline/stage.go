package pipeline

import (
	"fmt"
	"strings"
)

// Stage is one step of the candidate review pipeline.
type Stage string

const (
	StageSubmitted     Stage = "submitted"
	StageScreening     Stage = "screening"
	StageInterview     Stage = "interview"
	StageTechnicalTest Stage = "technical_test"
	StageFinished      Stage = "finished"
	StageRejected      Stage = "rejected"
)

// Stages lists every stage in board order, rejected last.
var Stages = []Stage{
	StageSubmitted,
	StageScreening,
	StageInterview,
	StageTechnicalTest,
	StageFinished,
	StageRejected,
}

func ParseStage(s string) (Stage, error) {
	stage := Stage(strings.ToLower(strings.TrimSpace(s)))
	switch stage {
	case StageSubmitted, StageScreening, StageInterview, StageTechnicalTest, StageFinished, StageRejected:
		return stage, nil
	default:
		return "", fmt.Errorf("unknown stage %q", s)
	}
}

// IsTerminal reports whether no further transition may leave the stage.
func (s Stage) IsTerminal() bool {
	return s == StageFinished || s == StageRejected
}

// CanTransition reports whether a candidate may move from one stage to
// another. Any move is allowed, including skipping ahead and going back,
// except out of a terminal stage. Moving to the same stage is a no-op and
// handled by the engine, not here.
func CanTransition(from, to Stage) bool {
	if from == to {
		return false
	}
	return !from.IsTerminal()
}

// DisplayName is the label used in notification emails.
func (s Stage) DisplayName() string {
	switch s {
	case StageSubmitted:
		return "Application Received"
	case StageScreening:
		return "Resume Screening"
	case StageInterview:
		return "Interview"
	case StageTechnicalTest:
		return "Technical Test"
	case StageFinished:
		return "Process Finished"
	case StageRejected:
		return "Not Approved"
	default:
		return string(s)
	}
}
