package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// MaxSweepPoints caps the number of offsets evaluated by a single sweep.
const MaxSweepPoints = 1000

// ErrInvalidSweep is returned for sweep ranges that cannot be evaluated.
var ErrInvalidSweep = errors.New("invalid offset sweep")

// SweepRange is a float form of domain.SweepSpec.
type SweepRange struct {
	From float64
	To   float64
	Step float64
}

// RangeFromSpec converts a configured sweep into a SweepRange.
func RangeFromSpec(spec domain.SweepSpec) SweepRange {
	return SweepRange{
		From: spec.From.InexactFloat64(),
		To:   spec.To.InexactFloat64(),
		Step: spec.Step.InexactFloat64(),
	}
}

// Count returns the number of offsets the range produces.
func (sr SweepRange) Count() (int, error) {
	if !finite(sr.From) || !finite(sr.To) || !finite(sr.Step) {
		return 0, fmt.Errorf("%w: bounds must be finite", ErrInvalidSweep)
	}
	if sr.Step <= 0 {
		return 0, fmt.Errorf("%w: step must be positive, got %g", ErrInvalidSweep, sr.Step)
	}
	if sr.From < 0 {
		return 0, fmt.Errorf("%w: from cannot be negative, got %g", ErrInvalidSweep, sr.From)
	}
	if sr.To < sr.From {
		return 0, fmt.Errorf("%w: to (%g) is below from (%g)", ErrInvalidSweep, sr.To, sr.From)
	}
	steps := math.Floor((sr.To-sr.From)/sr.Step + 1e-9)
	if steps+1 > MaxSweepPoints {
		return 0, fmt.Errorf("%w: %d points exceeds the limit of %d", ErrInvalidSweep, int64(steps)+1, MaxSweepPoints)
	}
	return int(steps) + 1, nil
}

// OffsetSweep evaluates the loan once per offset in the range, holding every
// other input fixed.
func OffsetSweep(in domain.LoanInputs, sr SweepRange, opportunityCostPercent float64) ([]domain.SweepPoint, error) {
	count, err := sr.Count()
	if err != nil {
		return nil, err
	}
	points := make([]domain.SweepPoint, 0, count)
	for i := 0; i < count; i++ {
		offset := sr.From + float64(i)*sr.Step
		probe := in
		probe.Offset = offset
		points = append(points, domain.SweepPoint{
			Offset: offset,
			Result: Compute(probe, opportunityCostPercent),
		})
	}
	return points, nil
}

// BestSweepPoint returns the point with the largest defined net savings. The
// earliest point wins ties. ok is false when no point has defined savings.
func BestSweepPoint(points []domain.SweepPoint) (best domain.SweepPoint, ok bool) {
	bestSavings := math.Inf(-1)
	for _, p := range points {
		savings, defined := p.Result.NetSavings.Get()
		if !defined {
			continue
		}
		if savings > bestSavings {
			best, bestSavings, ok = p, savings, true
		}
	}
	return best, ok
}
