package programs

import (
	"context"
	"fmt"
	"slices"
)

// cascadeDelete removes the node and all of its descendants, leaves first.
// Must run inside a transaction.
func cascadeDelete(ctx context.Context, st Store, level Level, id int64) (DeleteReport, error) {
	idsByLevel := map[Level][]int64{level: {id}}
	order := []Level{level}

	parentIDs := []int64{id}
	for lvl, ok := level.Child(); ok && len(parentIDs) > 0; lvl, ok = lvl.Child() {
		ids, err := st.ChildIDs(ctx, lvl, parentIDs)
		if err != nil {
			return nil, fmt.Errorf("collect %s ids: %w", lvl, err)
		}
		idsByLevel[lvl] = ids
		order = append(order, lvl)
		parentIDs = ids
	}

	report := DeleteReport{}
	for _, lvl := range slices.Backward(order) {
		ids := idsByLevel[lvl]
		if len(ids) == 0 {
			report[lvl] = 0
			continue
		}
		n, err := st.DeleteNodes(ctx, lvl, ids)
		if err != nil {
			return nil, fmt.Errorf("delete %s rows: %w", lvl, err)
		}
		report[lvl] = n
	}

	if report[level] == 0 {
		return nil, ErrNotFound
	}
	return report, nil
}
