package accounting

import (
	"fmt"
	"math"
	"sort"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// ConvertMinor converts a minor-unit amount at rate, rounding half away from
// zero. A result outside the int64 range is an error.
func ConvertMinor(amount int64, rate decimal.Decimal) (int64, error) {
	converted := decimal.NewFromInt(amount).Mul(rate).Round(0)
	if converted.GreaterThan(maxMinor) || converted.LessThan(minMinor) {
		return 0, fmt.Errorf("%w: %d at rate %s", domain.ErrAmountOverflow, amount, rate.String())
	}
	return converted.IntPart(), nil
}

// Allocate converts same-currency minor-unit amounts at rate so that the
// results sum exactly to the converted total. Each amount is converted on its
// own and the difference to round(sum*rate) goes to the largest amount (first
// occurrence wins ties). A negative difference the largest part cannot absorb
// without dropping below zero spills onto the next largest parts in the same
// order.
func Allocate(amounts []int64, rate decimal.Decimal) ([]int64, error) {
	converted := make([]int64, len(amounts))
	if len(amounts) == 0 {
		return converted, nil
	}

	total, err := Sum(amounts)
	if err != nil {
		return nil, err
	}
	var convertedSum int64
	for i, amount := range amounts {
		if converted[i], err = ConvertMinor(amount, rate); err != nil {
			return nil, err
		}
		if convertedSum, err = domain.AddAmount(convertedSum, converted[i]); err != nil {
			return nil, err
		}
	}

	convertedTotal, err := ConvertMinor(total, rate)
	if err != nil {
		return nil, err
	}
	remainder := convertedTotal - convertedSum

	order := make([]int, len(amounts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return amounts[order[a]] > amounts[order[b]]
	})

	if remainder >= 0 {
		converted[order[0]] += remainder
		return converted, nil
	}
	for _, i := range order {
		if remainder == 0 {
			break
		}
		take := min(converted[i], -remainder)
		converted[i] -= take
		remainder += take
	}
	return converted, nil
}

// Sum returns the sum of non-negative amounts, failing on overflow.
func Sum(amounts []int64) (int64, error) {
	var total int64
	for _, amount := range amounts {
		var err error
		if total, err = domain.AddAmount(total, amount); err != nil {
			return 0, err
		}
	}
	return total, nil
}
