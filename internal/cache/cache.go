package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/moneysaver/offset-calculator/internal/domain"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ResultCache stores encoded calculation results.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives a cache key from the exact bit patterns of the inputs, so two
// requests share an entry only when they would compute identical results.
func Key(kind string, in domain.LoanInputs, opportunityCostPercent float64, extra ...float64) string {
	h := xxhash.New()
	_, _ = h.WriteString(kind)
	var buf [8]byte
	for _, v := range append([]float64{in.Principal, in.AnnualRatePercent, in.TenureYears, in.Offset, opportunityCostPercent}, extra...) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	return "moneysaver:" + kind + ":" + strconv.FormatUint(h.Sum64(), 16)
}
