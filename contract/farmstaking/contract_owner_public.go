package farmstaking

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

// TopUpRewards funds the reserve the accruals and payouts draw from.
func (cont *StakingFarmContract) TopUpRewards(cc *types.ContractContext, Amount *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if !Amount.IsPlus() {
		return errors.Errorf("invalid top up amount %v", Amount.String())
	}
	if _, err := cc.Exec(cc, cont.StakingToken(cc), "TransferFrom", []interface{}{cc.From(), cont.addr, Amount}); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagRewardReserve}, cont.RewardReserve(cc).Add(Amount).Bytes())
	return nil
}

func (cont *StakingFarmContract) StartProduceRewards(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagLastRewardBlock}, bin.Uint32Bytes(cc.TargetHeight()))
	cc.SetContractData([]byte{tagProduceRewards}, []byte{1})
	return nil
}

func (cont *StakingFarmContract) EndProduceRewards(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagProduceRewards}, nil)
	return nil
}

func (cont *StakingFarmContract) SetMaxApr(cc *types.ContractContext, maxApr uint32) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagMaxApr}, bin.Uint32Bytes(maxApr))
	return nil
}

func (cont *StakingFarmContract) SetMinUnbondEpochs(cc *types.ContractContext, epochs uint32) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagMinUnbondEpochs}, bin.Uint32Bytes(epochs))
	return nil
}

func (cont *StakingFarmContract) SetState(cc *types.ContractContext, state uint8) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if state > StatePartialActive {
		return errors.Errorf("invalid state %v", state)
	}
	cc.SetContractData([]byte{tagState}, []byte{state})
	return nil
}

func (cont *StakingFarmContract) SetBoostedYieldsPercentage(cc *types.ContractContext, percentage uint32) error {
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

// SetProxy whitelists a metastaking proxy for the virtual position
// entry points.
func (cont *StakingFarmContract) SetProxy(cc *types.ContractContext, addr common.Address, is bool) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if is {
		cc.SetContractData(makeAddressKey(tagProxy, addr), []byte{1})
	} else {
		cc.SetContractData(makeAddressKey(tagProxy, addr), nil)
	}
	return nil
}

// CollectUndistributedBoostedRewards sweeps what is left of a week's
// boosted pool to the owner once the claim window passed.
func (cont *StakingFarmContract) CollectUndistributedBoostedRewards(cc *types.ContractContext, week uint32) (*amount.Amount, error) {
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
