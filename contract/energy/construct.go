package energy

import (
	"io"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/bin"
)

type EnergyContractConstruction struct {
	LockToken     common.Address
	EpochBlocks   uint32
	MaxLockEpochs uint32
}

func (s *EnergyContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.LockToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.MaxLockEpochs); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *EnergyContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.LockToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.EpochBlocks); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.MaxLockEpochs); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
