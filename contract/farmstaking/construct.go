package farmstaking

import (
	"io"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
)

type StakingFarmContractConstruction struct {
	Owner                   common.Address
	StakingToken            common.Address
	FarmToken               common.Address
	UnbondToken             common.Address
	EnergyFactory           common.Address
	MaxApr                  uint32
	BlocksPerYear           uint32
	MinUnbondEpochs         uint32
	EpochBlocks             uint32
	BoostedYieldsPercentage uint32
	EnergyConst             uint32
	FarmConst               uint32
	MinWeeksToCollect       uint32
	MinEnergyAmount         *amount.Amount
	MinFarmAmount           *amount.Amount
}

func (s *StakingFarmContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.StakingToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.UnbondToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.EnergyFactory); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.MaxApr); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.BlocksPerYear); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.MinUnbondEpochs); err != nil {
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
	return sw.Sum(), nil
}

func (s *StakingFarmContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.StakingToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.FarmToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.UnbondToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.EnergyFactory); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.MaxApr); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.BlocksPerYear); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.MinUnbondEpochs); err != nil {
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
	return sr.Sum(), nil
}
