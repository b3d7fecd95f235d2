package errors

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError indicates a row does not carry the column an
// operation was configured to read
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %s not found in table %s", e.ColumnName, e.TableName)
}

func NewColumnNotFound(table, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{
		TableName:  table,
		ColumnName: column,
	}
}

// AggregationError represents a failure to combine two cell values
// under an aggregation operator (type mismatch, non-numeric input, etc.)
type AggregationError struct {
	Table    string      // table name
	Column   string      // column being aggregated
	Operator string      // "sum", "max", "min", "first", etc.
	Left     interface{} // representative's value (may be nil)
	Right    interface{} // victim's value (may be nil)
	Reason   string      // human-readable explanation (optional)
}

func (e *AggregationError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("aggregation failed in %s.%s", e.Table, e.Column))

	if e.Operator != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Operator))
	}

	if e.Left != nil || e.Right != nil {
		parts = append(parts, fmt.Sprintf("values=%v,%v", e.Left, e.Right))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func NewTypeMismatch(table, column, operator string, left, right interface{}) *AggregationError {
	return &AggregationError{
		Table:    table,
		Column:   column,
		Operator: operator,
		Left:     left,
		Right:    right,
		Reason:   "values are not numeric",
	}
}

// UnknownOperatorError indicates the aggregation spec named an
// operator this engine does not implement
type UnknownOperatorError struct {
	Column string
	Name   string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown aggregation operator %q for column %s", e.Name, e.Column)
}

func NewUnknownOperator(column, name string) *UnknownOperatorError {
	return &UnknownOperatorError{
		Column: column,
		Name:   name,
	}
}

// SpecError indicates the table-level aggregation spec is malformed
// (wrong container type or non-string operator name)
type SpecError struct {
	Table  string
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid aggregation spec on table %s: %s", e.Table, e.Reason)
}

func NewSpecError(table, reason string) *SpecError {
	return &SpecError{
		Table:  table,
		Reason: reason,
	}
}
