package constants

// Static route constants
const (
	HomeRoute      = "/"
	NewsRoute      = "/news"
	CommentsRoute  = "/comments"
	NotesRoute     = "/notes"
	NotesAddRoute  = "/notes/add"
	NotesDoneRoute = "/notes/done"
	LoginRoute     = "/auth/login"
	LogoutRoute    = "/auth/logout"
	SignupRoute    = "/auth/signup"

	// Fragment appended to news detail redirects after comment mutations
	CommentsFragment = "#comments"
)
