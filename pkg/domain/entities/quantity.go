package entities

import "fmt"

// Quantity represents an integer quantity in linear feet
type Quantity int64

// NumWeeks is the length of the planning horizon every collection covers
const NumWeeks = 12

func validateWeek(week int) error {
	if week < 1 || week > NumWeeks {
		return fmt.Errorf("week must be between 1 and %d, got %d", NumWeeks, week)
	}
	return nil
}
