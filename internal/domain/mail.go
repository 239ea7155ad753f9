package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type SchedulePublishedMailData struct {
	FullName  string `json:"full_name"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Notes     string `json:"notes"`
}
