package models

// Analytics is the dashboard counter record. The zero value doubles as the
// fallback returned when any of the underlying fetches fails.
type Analytics struct {
	TotalProjects     int `json:"totalProjects"`
	TotalPosts        int `json:"totalPosts"`
	TotalMessages     int `json:"totalMessages"`
	UnreadMessages    int `json:"unreadMessages"`
	TotalVideos       int `json:"totalVideos"`
	TotalCertificates int `json:"totalCertificates"`
	TotalJobs         int `json:"totalJobs"`
	TotalReviews      int `json:"totalReviews"`
}
