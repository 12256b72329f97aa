package behavior

// MomentumFunc observes a projected trajectory before boundary correction.
// The returned data replaces the projection; return data unchanged to only
// observe it.
type MomentumFunc func(data MomentumData, distance float64) MomentumData

// EndFunc observes a gesture that ended without momentum.
type EndFunc func(info MomentumInfo)

type momentumSub struct {
	id int
	fn MomentumFunc
}

type endSub struct {
	id int
	fn EndFunc
}

type hooks struct {
	nextID    int
	momentum  []momentumSub
	end       []endSub
	destroyed bool
}

func (h *hooks) onMomentum(fn MomentumFunc) func() {
	if h.destroyed || fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.momentum = append(h.momentum, momentumSub{id: id, fn: fn})
	return func() {
		for i, sub := range h.momentum {
			if sub.id == id {
				h.momentum = append(h.momentum[:i:i], h.momentum[i+1:]...)
				return
			}
		}
	}
}

func (h *hooks) onEnd(fn EndFunc) func() {
	if h.destroyed || fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.end = append(h.end, endSub{id: id, fn: fn})
	return func() {
		for i, sub := range h.end {
			if sub.id == id {
				h.end = append(h.end[:i:i], h.end[i+1:]...)
				return
			}
		}
	}
}

func (h *hooks) emitMomentum(data MomentumData, distance float64) MomentumData {
	for _, sub := range h.momentum {
		data = sub.fn(data, distance)
	}
	return data
}

func (h *hooks) emitEnd(info MomentumInfo) {
	for _, sub := range h.end {
		sub.fn(info)
	}
}

func (h *hooks) destroy() {
	h.momentum = nil
	h.end = nil
	h.destroyed = true
}
