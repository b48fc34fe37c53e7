package domain

import "time"

// Capacity - максимальное число участников команды (включая лидера)
const Capacity = 5

type Status string

const (
	StatusOpen Status = "OPEN"
	StatusFull Status = "FULL"
)

type Member struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
}

type Meeting struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"startTime"`
	JoinURL   string    `json:"joinUrl"`
	CreatedBy string    `json:"createdBy"`
}

type Team struct {
	ID        string
	Name      string
	SubjectID string
	Leader    Member
	Members   []Member
	Status    Status
	Meetings  []Meeting
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// IsFull возвращает true, если команда заполнена до Capacity
func (t *Team) IsFull() bool {
	return len(t.Members) >= Capacity
}

// MemberByEmail ищет участника по email (точное, регистрозависимое сравнение)
func (t *Team) MemberByEmail(email string) (int, bool) {
	for i, m := range t.Members {
		if m.Email == email {
			return i, true
		}
	}
	return -1, false
}

// MeetingByID ищет встречу по идентификатору
func (t *Team) MeetingByID(id string) (*Meeting, bool) {
	for i := range t.Meetings {
		if t.Meetings[i].ID == id {
			return &t.Meetings[i], true
		}
	}
	return nil, false
}
