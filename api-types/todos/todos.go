package todos

// request body of "POST /todos/create"
type CreateRequest struct {
	Description *string `json:"description"`
	ListId      *int    `json:"list_id"`
}

// response body of "POST /todos/create"
type Detail struct {
	Id          int    `json:"id"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

// request body of "POST /todos/:id/set-completed"
type SetCompletedRequest struct {
	Completed *bool `json:"completed"`
}

// response body of deletions.
type Deleted struct {
	Success bool `json:"success"`
}
