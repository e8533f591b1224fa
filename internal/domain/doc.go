// Package domain contains the core business entities of the task tracker:
// the Task document, its status enum and the validation rules shared by
// the service and storage layers. It has no knowledge of HTTP or of any
// particular database.
package domain
