package realtime

import (
	"strings"
	"time"
)

type SSEEvent string

const (
	SSEEventCourseProgress  SSEEvent = "CourseProgress"
	SSEEventCourseCompleted SSEEvent = "CourseCompleted"
	SSEEventCourseFailed    SSEEvent = "CourseFailed"
)

type SSEMessage struct {
	Channel string   `json:"channel"`
	Event   SSEEvent `json:"event"`
	Data    any      `json:"data,omitempty"`
}

// Step names and percentages of a course generation run.
const (
	StepInitializing       = "Initializing"
	StepGeneratingSyllabus = "Generating Syllabus"
	StepCreatingModules    = "Creating Modules"
	StepGeneratingQuiz     = "Generating Quiz"
	StepFinalizing         = "Finalizing"
	StepComplete           = "Complete"
	StepFailed             = "Failed"

	PctInitializing  = 0
	PctSyllabus      = 20
	PctModulesStart  = 40
	PctQuiz          = 70
	PctFinalizing    = 90
	PctComplete      = 100
	pctModulesWindow = PctQuiz - PctModulesStart
)

type Progress struct {
	Topic     string    `json:"topic"`
	Step      string    `json:"step"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message"`
	Completed bool      `json:"completed"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ModuleProgress spreads module i (0-based) of n over the 40..70 window.
func ModuleProgress(i, n int) int {
	if n <= 0 {
		return PctModulesStart
	}
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return PctModulesStart + pctModulesWindow*i/n
}

// ChannelForTopic is the SSE channel a course run publishes to. Topics are
// compared case-insensitively with collapsed whitespace.
func ChannelForTopic(topic string) string {
	norm := strings.ToLower(strings.Join(strings.Fields(topic), " "))
	if norm == "" {
		return ""
	}
	return "course:" + norm
}
