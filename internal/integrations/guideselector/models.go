package guideselector

// SelectionRequest запрос на подбор гидов для проведения
type SelectionRequest struct {
	ScheduleID int64 `json:"schedule_id"`
	PartySize  int   `json:"party_size"`
}

// SelectionResponse подобранные гиды
type SelectionResponse struct {
	Assignments []SelectedGuide `json:"assignments"`
}

// SelectedGuide гид из ответа сервиса подбора
type SelectedGuide struct {
	GuideID  int64 `json:"guide_id"`
	IsLeader bool  `json:"is_leader"`
}

// ErrorResponse модель ошибки от сервиса подбора
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
