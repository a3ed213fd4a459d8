package reputation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

var ratingDeltas = [...]decimal.Decimal{
	1: decimal.New(-5, -1),
	2: decimal.New(-2, -1),
	3: decimal.Zero,
	4: decimal.New(2, -1),
	5: decimal.New(5, -1),
}

// DeltaForRating maps a 1..5 star rating to its reputation delta.
func DeltaForRating(rating int) (decimal.Decimal, error) {
	if rating < 1 || rating > 5 {
		return decimal.Zero, fmt.Errorf("rating %d: %w", rating, domain.ErrInvalidRating)
	}
	return ratingDeltas[rating], nil
}
