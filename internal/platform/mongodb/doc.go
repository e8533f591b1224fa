// Package mongodb provides the MongoDB implementation of store.TaskStore.
//
// Tasks live in a single collection as flat documents. Listing filters on
// userEmail and status and sorts on _id; Open creates the compound index
// {userEmail: 1, status: 1, _id: 1} that serves those queries.
package mongodb
