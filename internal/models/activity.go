package models

// Activity is a locally held activity. Title is the identity shared with
// server-side activities; ID is only set for records created in this process.
type Activity struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Participants []string `json:"participants"`
}

// RemoteActivity is one entry of the backend's activity mapping.
type RemoteActivity struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Schedule          string   `json:"schedule,omitempty"`
	MaxParticipants   int      `json:"max_participants"`
	Participants      []string `json:"participants,omitempty"`
	HasParticipants   bool     `json:"-"`
	ParticipantsCount *int     `json:"participants_count,omitempty"`
}

// ParticipantCount prefers the explicit roster, then the reported count.
func (a RemoteActivity) ParticipantCount() int {
	if a.HasParticipants {
		return len(a.Participants)
	}
	if a.ParticipantsCount != nil {
		return *a.ParticipantsCount
	}
	return 0
}

// SpotsLeft is not clamped: an over-subscribed activity reports a negative number.
func (a RemoteActivity) SpotsLeft() int {
	return a.MaxParticipants - a.ParticipantCount()
}
