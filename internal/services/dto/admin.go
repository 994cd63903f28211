package dto

// Statistics - агрегированные счетчики для административной панели.
// Имена полей совпадают с тем, что ожидает фронтенд.
type Statistics struct {
	TotalUsers        int64 `json:"total_users"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalCandidates   int64 `json:"total_candidates"`
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
}
