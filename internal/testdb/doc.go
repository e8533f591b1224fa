//go:build integration

// Package testdb provides helpers for tests that need a live PostgreSQL
// database.
//
// Tests opt in with the integration build tag and point
// TASKQUEST_TEST_DB_URL at a disposable database. GetTestDBWithT skips the
// test when the variable is unset, applies the embedded migrations and
// closes the connection on cleanup. WithTx runs a test body inside a
// transaction that is always rolled back, so tests can share one database
// without seeing each other's rows:
//
//	func TestTaskStore(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			s := postgres.NewPostgresTaskStore(tx)
//			// ...
//		})
//	}
package testdb
