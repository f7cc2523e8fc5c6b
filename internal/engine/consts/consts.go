package consts

// cache keys
const (
	// UserSubjectKey caches subject -> user profile lookups.
	UserSubjectKey = "rentfold:user:subject:"
)
