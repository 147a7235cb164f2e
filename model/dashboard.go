package model

// DashboardSummary is the headline counter block of the dashboard.
// AssignedToMe is the one counter not restricted to the owned scope: it
// counts tasks assigned to the caller in anyone's projects.
type DashboardSummary struct {
	TotalProjects   int `json:"totalProjects"`
	TotalTasks      int `json:"totalTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	AssignedToMe    int `json:"assignedToMe"`
	OverdueTasks    int `json:"overdueTasks"`
}

// PriorityStats always carries all three keys; priorities with no
// matching tasks report 0.
type PriorityStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type Dashboard struct {
	Summary        DashboardSummary `json:"summary"`
	PriorityStats  PriorityStats    `json:"priorityStats"`
	RecentActivity []ActivityLog    `json:"recentActivity"`
	Projects       []ProjectSummary `json:"projects"`
}
