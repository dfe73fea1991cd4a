package constant

// Client-facing messages.
const (
	NoteTitleRequiredMessage    = "Must include `title` in request body"
	NoteTitleEmptyMessage       = "Must provide `title` in request body"
	FolderNameRequiredMessage   = "Request must include folder `name`"
	FolderNameInvalidMessage    = "Must provide a valid `name`"
	FolderNameExistsMessage     = "The folder name already exists"
	TagNameRequiredMessage      = "Tag must have a `name`"
	TagNameExistsMessage        = "The tag name already exists"
	RequestBodyNotObjectMessage = "Request body must be a JSON object"
	SearchTermInvalidMessage    = "The `searchTerm` is not a valid pattern"
	NotFoundMessage             = "Not Found"
	InternalServerErrorMessage  = "Internal Server Error"
)

// Sort keys.
const (
	OrderByName      = "name"
	OrderByUpdatedAt = "updated_at"
	OrderById        = "id"
)
