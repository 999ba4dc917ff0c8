package rewardlocker

import (
	"io"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/bin"
)

type RewardLockerContractConstruction struct {
	Owner       common.Address
	RewardToken common.Address
	EpochBlocks uint32
	LockEpochs  uint32
}

func (s *RewardLockerContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.LockEpochs); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *RewardLockerContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.LockEpochs); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
