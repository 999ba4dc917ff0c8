package farmcore

import "math/big"

const (
	// MaxPercentage is the denominator of every basis-point style ratio.
	MaxPercentage = uint64(10000)

	// EpochsPerWeek groups epochs into boosted-yields weeks.
	EpochsPerWeek = uint32(7)
)

// DivisionSafetyConstant scales reward-per-share so that sub-unit
// accruals survive integer division.
var DivisionSafetyConstant = big.NewInt(1_000_000_000_000)

// WeekOf returns the boosted-yields week of the given epoch, counted from 0.
func WeekOf(epoch uint32) uint32 {
	return epoch / EpochsPerWeek
}

// FirstEpochOfWeek returns the first epoch belonging to the given week.
func FirstEpochOfWeek(week uint32) uint32 {
	return week * EpochsPerWeek
}
