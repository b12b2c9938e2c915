package challenge

import (
	"challenge-tracker-api/internal/catalog"
)

/*
*
SelectTask deterministically assigns one catalog task to a (user, day) pair.
The same inputs always map to the same task for the lifetime of the catalog,
so the assignment never needs to be stored; any process can re-derive it.

The seed is the user id concatenated with the YYYY-MM-DD day string (no
separator). Its 32-bit rolling hash, taken modulo the flattened catalog
length, picks the index. Appending tasks to the end of the catalog changes
the modulus, so it can move assignments whose hash is at least the old
length; hashes below it keep their index.
*/
func SelectTask(userID string, day Day) (catalog.Task, error) {
	if userID == "" {
		return catalog.Task{}, ErrEmptyUserID
	}
	tasks := catalog.All()
	return tasks[indexFor(userID+day.String(), len(tasks))], nil
}

// indexFor reduces the seed's hash to a catalog index. The absolute value is
// taken in int64 because negating math.MinInt32 overflows int32.
func indexFor(seed string, n int) int {
	h := int64(hashSeed(seed))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// hashSeed is the classic multiply-by-31 rolling hash over the seed's code
// points. It MUST stay in wrapping 32-bit signed arithmetic: widening to
// int64 (or letting any step escape truncation) changes historical
// assignments. int32 overflow in Go wraps, which is exactly the semantics
// required.
func hashSeed(seed string) int32 {
	var h int32
	for _, r := range seed {
		h = h*31 + int32(r)
	}
	return h
}
