package domain

// Snapshot is one consistent copy of the record collections, taken under a
// single read lock so analytics never observe a torn state.
type Snapshot struct {
	Members  []Member
	Classes  []Class
	Trainers []Trainer
}

// GrowthPoint counts members who joined on a given calendar day.
type GrowthPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AttendancePoint is the fill percentage of one class.
type AttendancePoint struct {
	Name       string  `json:"name"`
	Attendance float64 `json:"attendance"`
}

// PerformancePoint is the number of classes taught by one trainer.
type PerformancePoint struct {
	Name       string `json:"name"`
	ClassCount int    `json:"classCount"`
}

// Summary is the full analytics payload served by the dashboard.
type Summary struct {
	TotalMembers       int                `json:"totalMembers"`
	TotalClasses       int                `json:"totalClasses"`
	TotalTrainers      int                `json:"totalTrainers"`
	MemberGrowth       []GrowthPoint      `json:"memberGrowth"`
	ClassAttendance    []AttendancePoint  `json:"classAttendance"`
	TrainerPerformance []PerformancePoint `json:"trainerPerformance"`
}
