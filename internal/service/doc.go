// Package service contains the task write use cases: create, update,
// status patch and delete. It validates caller input, pins every write to
// the authenticated owner, delegates persistence to a store.TaskStore and
// emits lifecycle events after successful writes.
//
// Reads live in the listing subpackage; token handling lives in auth.
//
// Error handling:
//   - Validation failures are returned as domain sentinels (ErrInvalidTaskStatus,
//     ErrTaskFieldsEmpty, ErrOwnerMismatch) so the API layer can answer 4xx
//   - Store failures are wrapped in ServiceError and keep the store sentinel
//     reachable through errors.Is
package service
