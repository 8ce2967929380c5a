package events

import "time"

const (
	StageStartedEvent   = "stage.started"
	StageCompletedEvent = "stage.completed"
	StageFailedEvent    = "stage.failed"
)

// StageEvents lists every event type a generation run publishes
var StageEvents = []string{StageStartedEvent, StageCompletedEvent, StageFailedEvent}

type StageStarted struct {
	Stage       string `json:"stage"`
	Description string `json:"description"`
}

type StageCompleted struct {
	Stage    string        `json:"stage"`
	Records  int           `json:"records"`
	Duration time.Duration `json:"duration"`
}

type StageFailed struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}
