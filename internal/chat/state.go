package chat

// ConnState is the lifecycle of one mounted channel view.
type ConnState int

const (
	Disconnected ConnState = iota
	Connecting
	Joined
	Closed
)

func (s ConnState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Joined:
		return "joined"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// PendingState tracks one send from the moment the draft is taken.
//
//	SentLocally -> Acknowledged -> Reconciled
//	SentLocally -> Failed
//
// Acknowledged means the HTTP response returned the server id. Reconciled
// means the same id was also seen on the feed (broadcast or history).
type PendingState int

const (
	SentLocally PendingState = iota
	Acknowledged
	Reconciled
	Failed
)

func (s PendingState) String() string {
	switch s {
	case SentLocally:
		return "sent_locally"
	case Acknowledged:
		return "acknowledged"
	case Reconciled:
		return "reconciled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type Pending struct {
	LocalID   string       `json:"local_id"`
	Content   string       `json:"content"`
	MessageID string       `json:"message_id,omitempty"`
	State     PendingState `json:"state"`
}

type Transition struct {
	LocalID   string
	MessageID string
	From      PendingState
	To        PendingState
}

// source records where a message id has been observed.
type source uint8

const (
	fromAck source = 1 << iota
	fromFeed
)
