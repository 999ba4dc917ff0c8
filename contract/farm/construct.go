package farm

import (
	"io"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
)

type FarmContractConstruction struct {
	Owner                   common.Address
	FarmingToken            common.Address
	RewardToken             common.Address
	FarmToken               common.Address
	EnergyFactory           common.Address
	PerBlockReward          *amount.Amount
	EpochBlocks             uint32
	BoostedYieldsPercentage uint32
	EnergyConst             uint32
	FarmConst               uint32
	MinWeeksToCollect       uint32
	MinEnergyAmount         *amount.Amount
	MinFarmAmount           *amount.Amount

	// RewardLocker routes rewards of positions entered before
	// MigrationEpoch through a lock wrapper. The zero address pays
	// every position directly.
	RewardLocker   common.Address
	MigrationEpoch uint32
}

func (s *FarmContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.FarmingToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.EnergyFactory); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.PerBlockReward); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.BoostedYieldsPercentage); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.EnergyConst); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.FarmConst); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.MinWeeksToCollect); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.MinEnergyAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.MinFarmAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.RewardLocker); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.MigrationEpoch); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FarmContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.FarmingToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.EnergyFactory); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.PerBlockReward); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.BoostedYieldsPercentage); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.EnergyConst); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.FarmConst); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.MinWeeksToCollect); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MinEnergyAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MinFarmAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.RewardLocker); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.MigrationEpoch); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
