package api

import (
	"github.com/mdhasanali39/taskQuest-server/internal/service/listing"
)

// Envelope messages
const (
	MsgTasksListed       = "Tasks gotten successfully"
	MsgTaskInserted      = "Task inserted successfully"
	MsgTaskUpdated       = "Task updated successfully"
	MsgTaskStatusUpdated = "Task status updated successfully"
	MsgTaskDeleted       = "Task deleted successfully"
	MsgTokenIssued       = "Token issued successfully"
	MsgTokenCleared      = "Token cleared successfully"
)

// AccessTokenRequest defines the payload for the access-token endpoint.
// Other fields sent by the client are ignored.
type AccessTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateStatusRequest defines the payload for the status patch endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse is the bare envelope.
type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ListTasksResponse wraps a task board.
type ListTasksResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Tasks   *listing.TaskBoard `json:"tasks"`
}

// WriteResponse wraps the store acknowledgement of a write.
type WriteResponse struct {
	Status      bool   `json:"status"`
	Message     string `json:"message"`
	Acknowledge any    `json:"acknowledge"`
}
