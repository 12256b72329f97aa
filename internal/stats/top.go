package stats

import (
	"sort"

	"github.com/verte-zerg/flick/internal/model"
)

// FastestGestures returns the top N gestures by release speed.
func FastestGestures(gestures []model.GestureAggregate, n int) []model.GestureAggregate {
	if n <= 0 || len(gestures) == 0 {
		return nil
	}
	items := make([]model.GestureAggregate, len(gestures))
	copy(items, gestures)
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := Speed(items[i]), Speed(items[j])
		if si == sj {
			return items[i].GestureID < items[j].GestureID
		}
		return si > sj
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
