package lists

import "github.com/ragamarkely/todo-app/api-types/todos"

// request body of "POST /lists/create"
type CreateRequest struct {
	NewList *string `json:"new_list"`
}

// response body of "POST /lists/create"
type Detail struct {
	Id        int    `json:"id"`
	Completed bool   `json:"completed"`
	Name      string `json:"name"`
}

// request body of "POST /lists/:id/set-completed"
type SetCompletedRequest = todos.SetCompletedRequest
