package orders

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:    {StatusCompleted: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// ParseStatus validates an admin-supplied status string.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is possible from s.
func Terminal(s Status) bool { return len(validNext[s]) == 0 }
