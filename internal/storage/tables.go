package storage

// Table identifiers form a closed set; handlers validate inbound names
// against it before opening change subscriptions.
const (
	TableProjects     = "projects"
	TablePosts        = "posts"
	TableVideos       = "videos"
	TableCertificates = "certificates"
	TableJobs         = "jobs"
	TableReviews      = "reviews"
	TableQAs          = "qas"
	TableMessages     = "messages"
	TableNewsletter   = "newsletter"
	TableSettings     = "settings"
)

var knownTables = map[string]struct{}{
	TableProjects:     {},
	TablePosts:        {},
	TableVideos:       {},
	TableCertificates: {},
	TableJobs:         {},
	TableReviews:      {},
	TableQAs:          {},
	TableMessages:     {},
	TableNewsletter:   {},
	TableSettings:     {},
}

// KnownTable reports whether name is one of the content tables.
func KnownTable(name string) bool {
	_, ok := knownTables[name]
	return ok
}
