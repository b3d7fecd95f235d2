package groupby

import (
	"github.com/dmuriuki/reportkit/internal/domain/data"
	"github.com/dmuriuki/reportkit/internal/domain/errors"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// mergeRow folds a victim row into its group's representative, in
// place. The group-by column named by skipColumn is left alone: the
// representative already holds the reduced key there and the victim's
// raw pre-reduction value is discarded, not aggregated. Per other
// column present in the victim: a column the representative lacks is
// copied as-is; two nested sub-tables are merged recursively; anything
// else goes through the column's aggregation operator.
// The victim's metadata is folded into the representative's so that
// context carried by merged-away rows survives the reduction.
// The victim must not be read again after a successful merge.
func mergeRow(table, skipColumn string, rep, victim *data.Row, spec map[string]Op) error {
	for column, vv := range victim.Data {
		if column == skipColumn {
			continue
		}
		rv, ok := rep.Data[column]
		if !ok {
			rep.Data[column] = vv
			continue
		}

		rt, repIsTable := rv.(*schema.Table)
		vt, victimIsTable := vv.(*schema.Table)
		if repIsTable && victimIsTable {
			if err := mergeTables(rt, vt); err != nil {
				return err
			}
			continue
		}

		merged, err := combine(table, column, opForColumn(spec, column), rv, vv)
		if err != nil {
			return err
		}
		rep.Data[column] = merged
	}

	rep.FoldMeta(victim.Meta)
	return nil
}

// combine applies one aggregation operator to a pair of cell values
func combine(table, column string, op Op, left, right interface{}) (interface{}, error) {
	switch op {
	case OpFirst:
		return left, nil

	case OpSum:
		// Integer addition when both sides are integral, to keep
		// count-like columns free of float artifacts.
		if li, lok := data.NormalizeInt64(left); lok {
			if ri, rok := data.NormalizeInt64(right); rok {
				return li + ri, nil
			}
		}
		lf, lok := data.ToFloat64(left)
		rf, rok := data.ToFloat64(right)
		if !lok || !rok {
			return nil, errors.NewTypeMismatch(table, column, op.String(), left, right)
		}
		return lf + rf, nil

	case OpMax:
		lf, lok := data.ToFloat64(left)
		rf, rok := data.ToFloat64(right)
		if !lok || !rok {
			return nil, errors.NewTypeMismatch(table, column, op.String(), left, right)
		}
		if rf > lf {
			return right, nil
		}
		return left, nil

	case OpMin:
		lf, lok := data.ToFloat64(left)
		rf, rok := data.ToFloat64(right)
		if !lok || !rok {
			return nil, errors.NewTypeMismatch(table, column, op.String(), left, right)
		}
		if rf < lf {
			return right, nil
		}
		return left, nil
	}

	return nil, errors.NewUnknownOperator(column, op.String())
}

// mergeTables merges a victim sub-table into a representative
// sub-table: non-summary rows are paired by position and merged under
// the representative table's own aggregation spec; the victim's extra
// rows are appended as copies (rows never move between tables).
func mergeTables(rep, victim *schema.Table) error {
	spec, err := parseSpec(rep)
	if err != nil {
		return err
	}

	victim.RLock()
	victimRows := make([]*data.Row, 0, len(victim.Rows))
	for _, row := range victim.Rows {
		if victim.IsSummary(row) {
			continue
		}
		victimRows = append(victimRows, row)
	}
	victim.RUnlock()

	rep.Lock()
	defer rep.Unlock()

	repRows := make([]*data.Row, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		if rep.IsSummary(row) {
			continue
		}
		repRows = append(repRows, row)
	}

	for i, vrow := range victimRows {
		if i < len(repRows) {
			// No group-by column one level down; every column aggregates.
			if err := mergeRow(rep.Name, "", repRows[i], vrow, spec); err != nil {
				return err
			}
			continue
		}
		rep.Rows = append(rep.Rows, vrow.Copy())
	}

	rep.MarkDirtyUnsafe()
	return nil
}
