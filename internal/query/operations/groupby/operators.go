package groupby

import (
	"github.com/dmuriuki/reportkit/internal/domain/errors"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// MetaKeyAggregate is the table-level metadata key under which a table
// may carry its per-column aggregation spec: a mapping from column name
// to operator name. Columns absent from the spec default to summation.
const MetaKeyAggregate = "aggregate"

// Op is an aggregation operator. The set is closed: merge dispatch is
// an exhaustive switch over these variants, and the metadata-driven
// name lookup is translated into an Op once, before the pass starts.
type Op int

const (
	OpSum Op = iota
	OpMax
	OpMin
	OpFirst
)

// String returns the operator's metadata name
func (op Op) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	case OpFirst:
		return "first"
	}
	return "unknown"
}

// opByName translates a metadata operator name into its Op variant
func opByName(column, name string) (Op, error) {
	switch name {
	case "sum":
		return OpSum, nil
	case "max":
		return OpMax, nil
	case "min":
		return OpMin, nil
	case "first":
		return OpFirst, nil
	}
	return OpSum, errors.NewUnknownOperator(column, name)
}

// parseSpec reads a table's aggregation spec from its metadata and
// translates it into a column → Op mapping. A table without the
// metadata key has no per-column overrides and gets a nil spec.
// The spec may arrive as map[string]string (built in code) or as
// map[string]interface{} (loaded from JSON).
func parseSpec(t *schema.Table) (map[string]Op, error) {
	raw, ok := t.MetaValue(MetaKeyAggregate)
	if !ok {
		return nil, nil
	}

	switch m := raw.(type) {
	case map[string]string:
		spec := make(map[string]Op, len(m))
		for column, name := range m {
			op, err := opByName(column, name)
			if err != nil {
				return nil, err
			}
			spec[column] = op
		}
		return spec, nil
	case map[string]interface{}:
		spec := make(map[string]Op, len(m))
		for column, v := range m {
			name, ok := v.(string)
			if !ok {
				return nil, errors.NewSpecError(t.Name, "operator name must be a string")
			}
			op, err := opByName(column, name)
			if err != nil {
				return nil, err
			}
			spec[column] = op
		}
		return spec, nil
	}

	return nil, errors.NewSpecError(t.Name, "spec must map column names to operator names")
}

// opForColumn resolves the operator for a column, defaulting to summation
func opForColumn(spec map[string]Op, column string) Op {
	if op, ok := spec[column]; ok {
		return op
	}
	return OpSum
}
