package layout

import "fmt"

// Item is the per-pass working record for one child on the primary axis.
// It lives only for the duration of a Solve call.
type Item struct {
	Policy Policy
	Length int
}

// Slack is shared out in this order. What a group leaves after truncating its
// shares passes to the next group, and whatever is left after the last group
// is settled one cell at a time across all groups in order.
var growGroups = [...]func(Kind) bool{
	func(k Kind) bool { return k == KindExpanding || k == KindMinimumExpanding },
	func(k Kind) bool { return k == KindPreferred || k == KindMinimum || k == KindIgnored },
}

// A deficit is taken from these groups in order, settled the same way.
var shrinkGroups = [...]func(Kind) bool{
	func(k Kind) bool { return k == KindMaximum || k == KindPreferred || k == KindIgnored },
	func(k Kind) bool { return k == KindExpanding },
}

// Solve shares length among items and writes each item's Length.
//
// When the minimums of all items fit, the lengths sum to exactly length
// (or to less, if every item that could grow is at its max). Otherwise Solve
// reports tooSmall and leaves every item at or above its min, except items
// whose policy allows ignoring the min, which give up space first.
func Solve(length int, items []Item) (tooSmall bool) {
	for i := range items {
		if debugAssertions {
			if err := items[i].Policy.Validate(); err != nil {
				panic(fmt.Sprintf("layout: item %d: %v", i, err))
			}
		}
		if items[i].Policy.stretch <= 0 {
			panic(fmt.Sprintf("layout: item %d: stretch must be positive, got %d", i, items[i].Policy.stretch))
		}
	}
	if len(items) == 0 {
		return false
	}

	remaining := firstPass(max(0, length), items)
	switch {
	case remaining > 0:
		distribute(items, remaining)
	case remaining < 0:
		deficit := collect(items, -remaining)
		if deficit > 0 {
			tooSmall = true
			shrinkBelowMin(items, deficit)
		}
	}
	return tooSmall
}

// firstPass gives every item its starting length and returns what is left of
// length. Fixed and minimum kinds go first, then Ignored items take their
// stretch share of the whole length, then the rest start at their hint.
func firstPass(length int, items []Item) int {
	remaining := length

	ignoredStretch := 0
	for i := range items {
		p := items[i].Policy
		switch p.kind {
		case KindFixed, KindMinimum, KindMinimumExpanding:
			items[i].Length = p.hint
			remaining -= p.hint
		case KindIgnored:
			ignoredStretch += p.stretch
		}
	}

	if ignoredStretch > 0 {
		for i := range items {
			p := items[i].Policy
			if p.kind != KindIgnored {
				continue
			}
			items[i].Length = clamp(length*p.stretch/ignoredStretch, p.min, p.max)
			remaining -= items[i].Length
		}
	}

	for i := range items {
		p := items[i].Policy
		switch p.kind {
		case KindMaximum, KindPreferred, KindExpanding:
			items[i].Length = p.hint
			remaining -= p.hint
		}
	}
	return remaining
}

// distribute hands out positive slack group by group, then settles the
// truncation remainder.
func distribute(items []Item, slack int) {
	belowMax := func(it Item) bool { return it.Length < it.Policy.max }
	for _, inGroup := range growGroups {
		if slack == 0 {
			return
		}
		slack = grow(items, selectItems(items, inGroup, belowMax), slack)
	}
	settle(items, groupOrder(items, growGroups[:]), slack, 1, belowMax)
}

// grow shares slack among members in proportion to their stretch. A member
// whose share would carry it past its max is pinned at max and dropped, and
// the share is recomputed for the rest. Returns the slack left over,
// including what truncating the shares lost.
func grow(items []Item, members []int, slack int) int {
	for slack > 0 && len(members) > 0 {
		total := stretchSum(items, members)
		pool := slack

		kept := make([]int, 0, len(members))
		for _, i := range members {
			room := items[i].Policy.max - items[i].Length
			if pool*items[i].Policy.stretch/total > room {
				items[i].Length += room
				slack -= room
				continue
			}
			kept = append(kept, i)
		}
		if len(kept) < len(members) {
			members = kept
			continue
		}

		for _, i := range members {
			share := pool * items[i].Policy.stretch / total
			items[i].Length += share
			slack -= share
		}
		return slack
	}
	return slack
}

// collect takes deficit away group by group, settles the truncation
// remainder and returns what could not be taken without going below a min.
func collect(items []Item, deficit int) int {
	aboveMin := func(it Item) bool { return it.Length > it.Policy.min }
	for _, inGroup := range shrinkGroups {
		if deficit == 0 {
			return 0
		}
		deficit = shrink(items, selectItems(items, inGroup, aboveMin), deficit, minFloor)
	}
	return settle(items, groupOrder(items, shrinkGroups[:]), deficit, -1, aboveMin)
}

// shrinkBelowMin is the last resort for a container that is too small:
// items that may ignore their min give up length down to zero.
func shrinkBelowMin(items []Item, deficit int) {
	members := selectItems(items, func(Kind) bool { return true }, func(it Item) bool {
		return it.Policy.canIgnoreMin && it.Length > 0
	})
	deficit = shrink(items, members, deficit, zeroFloor)
	settle(items, members, deficit, -1, func(it Item) bool { return it.Length > 0 })
}

func minFloor(it Item) int { return it.Policy.min }
func zeroFloor(Item) int { return 0 }

// shrink takes deficit from members in proportion to the inverse of their
// stretch, so low-stretch members give up more. A member that would drop
// below its floor is pinned there and dropped, and the shares are recomputed.
// Returns the deficit left over, including what truncating the shares lost.
func shrink(items []Item, members []int, deficit int, floor func(Item) int) int {
	for deficit > 0 && len(members) > 0 {
		total := inverseStretchSum(items, members)
		pool := deficit

		kept := make([]int, 0, len(members))
		for _, i := range members {
			room := items[i].Length - floor(items[i])
			if inverseShare(pool, items[i].Policy.stretch, total) > room {
				items[i].Length -= room
				deficit -= room
				continue
			}
			kept = append(kept, i)
		}
		if len(kept) < len(members) {
			members = kept
			continue
		}

		for _, i := range members {
			share := min(inverseShare(pool, items[i].Policy.stretch, total), deficit)
			items[i].Length -= share
			deficit -= share
		}
		return deficit
	}
	return deficit
}

// settle corrects integer truncation by moving one cell at a time, in
// member order, until rest is used up or no member can move. dir is +1 when
// growing and -1 when shrinking.
func settle(items []Item, members []int, rest, dir int, canMove func(Item) bool) int {
	for rest > 0 {
		moved := false
		for _, i := range members {
			if rest == 0 {
				break
			}
			if canMove(items[i]) {
				items[i].Length += dir
				rest--
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return rest
}

func selectItems(items []Item, inGroup func(Kind) bool, eligible func(Item) bool) []int {
	var out []int
	for i := range items {
		if inGroup(items[i].Policy.kind) && eligible(items[i]) {
			out = append(out, i)
		}
	}
	return out
}

// groupOrder lists the members of every group, group by group, in item order
// within each group.
func groupOrder(items []Item, groups []func(Kind) bool) []int {
	var out []int
	for _, inGroup := range groups {
		out = append(out, selectItems(items, inGroup, func(Item) bool { return true })...)
	}
	return out
}

func stretchSum(items []Item, members []int) int {
	total := 0
	for _, i := range members {
		total += items[i].Policy.stretch
	}
	return total
}

func inverseStretchSum(items []Item, members []int) float64 {
	total := 0.0
	for _, i := range members {
		total += 1 / float64(items[i].Policy.stretch)
	}
	return total
}

func inverseShare(pool, stretch int, total float64) int {
	return int(float64(pool) / float64(stretch) / total)
}
