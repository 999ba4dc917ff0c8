package farm

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

//////////////////////////////////////////////////
// Owner Functions
//////////////////////////////////////////////////

// StartProduceRewards begins emission from the current block. Blocks
// before it never produce retroactively.
func (cont *FarmContract) StartProduceRewards(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagLastRewardBlock}, bin.Uint32Bytes(cc.TargetHeight()))
	cc.SetContractData([]byte{tagProduceRewards}, []byte{1})
	return nil
}

func (cont *FarmContract) EndProduceRewards(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagProduceRewards}, nil)
	return nil
}

func (cont *FarmContract) SetPerBlockRewardAmount(cc *types.ContractContext, perBlock *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if perBlock == nil || perBlock.Int.Sign() < 0 {
		return errors.New("invalid per block reward")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPerBlockReward}, perBlock.Bytes())
	return nil
}

func (cont *FarmContract) SetState(cc *types.ContractContext, state uint8) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if state > StatePartialActive {
		return errors.Errorf("invalid state %v", state)
	}
	cc.SetContractData([]byte{tagState}, []byte{state})
	return nil
}

func (cont *FarmContract) SetBoostedYieldsPercentage(cc *types.ContractContext, percentage uint32) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if uint64(percentage) > farmcore.MaxPercentage {
		return errors.Errorf("invalid boosted yields percentage %v", percentage)
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagBoostedPercentage}, bin.Uint32Bytes(percentage))
	return nil
}

func (cont *FarmContract) SetMinEnergyAmount(cc *types.ContractContext, min *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagMinEnergyAmount}, min.Bytes())
	return nil
}

func (cont *FarmContract) SetMinFarmAmount(cc *types.ContractContext, min *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagMinFarmAmount}, min.Bytes())
	return nil
}

// Blacklist blocks addr from every on behalf entry point regardless of
// user whitelists.
func (cont *FarmContract) Blacklist(cc *types.ContractContext, addr common.Address) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData(makeAddressKey(tagBlacklist, addr), []byte{1})
	return nil
}

func (cont *FarmContract) RemoveBlacklist(cc *types.ContractContext, addr common.Address) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData(makeAddressKey(tagBlacklist, addr), nil)
	return nil
}

// CollectUndistributedBoostedRewards sweeps what is left of a week's
// boosted pool to the owner once the claim window passed.
func (cont *FarmContract) CollectUndistributedBoostedRewards(cc *types.ContractContext, week uint32) (*amount.Amount, error) {
	if err := cont.checkOwner(cc); err != nil {
		return nil, err
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return nil, err
	}
	if week+cont.MinWeeksToCollect(cc) > cont.CurrentWeek(cc) {
		return nil, errors.Errorf("week %v is still inside the claim window", week)
	}
	remaining := cont.RemainingBoostedRewards(cc, week)
	if !remaining.IsPlus() {
		return nil, errors.Errorf("nothing to collect for week %v", week)
	}
	cc.SetContractData(makeWeekKey(tagWeekRemaining, week), nil)
	return cont.payReward(cc, cont.Owner(cc), remaining)
}
