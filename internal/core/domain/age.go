package domain

const (
	MinAge = 13
	MaxAge = 120
)

// Age in whole years, within [MinAge, MaxAge].
type Age struct {
	value int
}

func NewAge(value int) (Age, error) {
	if value < MinAge || value > MaxAge {
		return Age{}, invalidArgument("%d is not between %d and %d", value, MinAge, MaxAge)
	}
	return Age{value: value}, nil
}

func (a Age) Int() int { return a.value }
