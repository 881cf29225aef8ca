package services

const (
	defaultSkip = 0
	defaultTake = 50
)

// normalizePage clamps paging parameters to their defaults. Negative
// values and a zero take fall back to skip=0, take=50.
func normalizePage(skip, take int) (int, int) {
	if skip < 0 {
		skip = defaultSkip
	}
	if take <= 0 {
		take = defaultTake
	}
	return skip, take
}
