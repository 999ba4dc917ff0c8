package stakingproxy

import (
	"io"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/bin"
)

type StakingProxyContractConstruction struct {
	Owner          common.Address
	LpFarm         common.Address
	StakingFarm    common.Address
	Pair           common.Address
	LpToken        common.Address
	StakingToken   common.Address
	LpFarmToken    common.Address
	DualYieldToken common.Address
}

func (s *StakingProxyContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.LpFarm); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.StakingFarm); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Pair); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.LpToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.StakingToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.LpFarmToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.DualYieldToken); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *StakingProxyContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.LpFarm); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.StakingFarm); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Pair); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.LpToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.StakingToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.LpFarmToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.DualYieldToken); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
