package models

// DashboardStats are the counts shown on the admin dashboard.
type DashboardStats struct {
	TeamMembers       int `json:"team_members"`
	Products          int `json:"products"`
	Projects          int `json:"projects"`
	PublishedProjects int `json:"published_projects"`
	Markets           int `json:"markets"`
	ShalePlays        int `json:"shale_plays"`
	News              int `json:"news"`
	PublishedNews     int `json:"published_news"`
	Jobs              int `json:"jobs"`
	ActiveJobs        int `json:"active_jobs"`
	Locations         int `json:"locations"`
	UnreadContacts    int `json:"unread_contacts"`
}
