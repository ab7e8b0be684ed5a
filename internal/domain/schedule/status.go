package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusConfirmed  Status = "Confirmed"
	StatusInProgress Status = "In-progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "No-show"
)

func InitialStatus() Status {
	return StatusScheduled
}

func AllStatuses() []Status {
	return []Status{
		StatusScheduled,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Display classification
// ===============================

// StatusClassification carries the badge/cell tints for a status.
type StatusClassification struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

var statusColors = map[Status]StatusClassification{
	StatusScheduled:  {Background: "bg-blue-500/15", Text: "text-blue-500", Border: "border-blue-500/20"},
	StatusConfirmed:  {Background: "bg-green-500/15", Text: "text-green-500", Border: "border-green-500/20"},
	StatusInProgress: {Background: "bg-orange-500/15", Text: "text-orange-500", Border: "border-orange-500/20"},
	StatusCompleted:  {Background: "bg-purple-500/15", Text: "text-purple-500", Border: "border-purple-500/20"},
	StatusCancelled:  {Background: "bg-red-500/15", Text: "text-red-500", Border: "border-red-500/20"},
	StatusNoShow:     {Background: "bg-gray-500/15", Text: "text-gray-500", Border: "border-gray-500/20"},
}

var neutralClassification = StatusClassification{
	Background: "bg-gray-500/15",
	Text:       "text-gray-500",
	Border:     "border-gray-500/20",
}

// Classify maps a status label to its display tints. Unknown labels get
// the neutral gray classification; never an error.
func Classify(s Status) StatusClassification {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return neutralClassification
}
