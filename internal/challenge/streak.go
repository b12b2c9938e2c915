package challenge

/*
*
StreakState is the per-user streak as the tracker sees it: the running count
of consecutive completion days, the best count ever reached, and the last day
a completion was recorded. A zero LastCompleted means the user has never
completed a task (a freshly created account), regardless of the counters.
*/
type StreakState struct {
	Current       int
	Longest       int
	LastCompleted Day
}

// Advance computes the streak state after recording a completion on today.
// A nil prev means no streak record exists yet. The transition is:
//
//   - last completion was yesterday  -> the streak continues, Current+1
//   - last completion is absent or
//     two or more days back          -> the streak (re)starts at 1
//   - last completion is today or
//     later                          -> ErrAlreadyCounted, state unchanged
//
// Longest never decreases and is always >= Current afterwards. Advance is
// pure: it neither reads clocks nor touches storage, so the caller decides
// what "today" is and persists the result atomically.
func Advance(prev *StreakState, today Day) (StreakState, error) {
	next := StreakState{Current: 1, LastCompleted: today}

	if prev != nil {
		next.Longest = prev.Longest
		if !prev.LastCompleted.IsZero() {
			if !prev.LastCompleted.Before(today) {
				return *prev, ErrAlreadyCounted
			}
			if prev.LastCompleted.Equal(today.Prev()) {
				next.Current = prev.Current + 1
			}
		}
	}

	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	return next, nil
}
