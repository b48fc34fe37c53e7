package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	Name           string `json:"name"`
	SubjectID      string `json:"subjectId"`
	LeaderName     string `json:"leaderName"`
	LeaderEmail    string `json:"leaderEmail"`
	LeaderTimezone string `json:"leaderTimezone,omitempty"`
}

type UpdateTeamRequest struct {
	Name      string `json:"name"`
	SubjectID string `json:"subjectId"`
}

type JoinTeamRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RemoveMemberRequest struct {
	Email string `json:"email"`
}

type UpdateTimezoneRequest struct {
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

type ScheduleMeetingRequest struct {
	Email     string `json:"email"`
	Topic     string `json:"topic"`
	StartTime string `json:"startTime"`
}

type VerifyMeetingAccessRequest struct {
	TeamID    string `json:"teamId"`
	MeetingID string `json:"meetingId"`
	Email     string `json:"email"`
}

type VerifyMeetingAccessResponse struct {
	JoinURL string `json:"joinUrl"`
}

type DeleteTeamResponse struct {
	Deleted bool `json:"deleted"`
}

type MemberResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
}

type MeetingResponse struct {
	ID        string `json:"id"`
	Topic     string `json:"topic"`
	StartTime string `json:"startTime"`
	JoinURL   string `json:"joinUrl"`
	CreatedBy string `json:"createdBy"`
}

type TeamResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	SubjectID string            `json:"subjectId"`
	Leader    MemberResponse    `json:"leader"`
	Members   []MemberResponse  `json:"members"`
	Status    string            `json:"status"`
	Meetings  []MeetingResponse `json:"meetings"`
	CreatedAt *string           `json:"createdAt,omitempty"`
	UpdatedAt *string           `json:"updatedAt,omitempty"`
}
