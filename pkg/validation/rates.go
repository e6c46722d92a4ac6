package validation

import "fmt"

// ValidateRate checks that an annualized percentage rate lies in [0, 100].
func ValidateRate(name string, rate float64) error {
	if rate < 0 || rate > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %.4f", name, rate)
	}
	return nil
}

// ValidatePositive checks that a monetary amount is strictly positive.
func ValidatePositive(name string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%s must be positive, got %.4f", name, amount)
	}
	return nil
}

// ValidateHorizon checks that a projection horizon is at least one month.
func ValidateHorizon(months int) error {
	if months < 1 {
		return fmt.Errorf("projection horizon must be at least 1 month, got %d", months)
	}
	return nil
}
