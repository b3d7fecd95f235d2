package testutil

import (
	"testing"

	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if table.Len() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, table.Len())
	}
}

// AssertCellValue checks the value of one cell by row position and column
func AssertCellValue(t *testing.T, table *schema.Table, rowPos int, column string, expected interface{}, context string) {
	t.Helper()
	if rowPos >= len(table.Rows) {
		t.Errorf("%s: row %d does not exist (table has %d rows)", context, rowPos, len(table.Rows))
		return
	}
	actual, exists := table.Rows[rowPos].Value(column)
	if !exists {
		t.Errorf("%s: expected column '%s' to exist in row %d", context, column, rowPos)
		return
	}
	if actual != expected {
		t.Errorf("%s: row %d column %s: expected %v (%T), got %v (%T)",
			context, rowPos, column, expected, expected, actual, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
