package test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

var _ = Describe("Farm position token", func() {
	var tok common.Address

	positionBlob := func(owner common.Address, am *amount.Amount) []byte {
		attrs := &farmcore.FarmTokenAttributes{
			RewardPerShare:    big.NewInt(0),
			EnteringEpoch:     0,
			CompoundedReward:  amount.NewAmount(0, 0),
			CurrentFarmAmount: am.Clone(),
			OriginalOwner:     owner,
		}
		return attrs.Bytes()
	}

	BeforeEach(func() {
		genesis = types.NewEmptyContext()
		ctx = genesis
		tok = deployFarmToken("FarmPosition", "FARMPOS")
	})

	It("grows an existing nonce through AddQuantity for the minter only", func() {
		nonce := mustExec(admin, tok, "Mint", alice, amount.NewAmount(100, 0), positionBlob(alice, amount.NewAmount(100, 0)))[0].(uint64)

		err := execErr(alice, tok, "AddQuantity", alice, nonce, amount.NewAmount(50, 0))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not minter"))

		mustExec(admin, tok, "AddQuantity", bob, nonce, amount.NewAmount(50, 0))
		Expect(positionBalance(tok, alice, nonce).Equal(amount.NewAmount(100, 0))).To(BeTrue())
		Expect(positionBalance(tok, bob, nonce).Equal(amount.NewAmount(50, 0))).To(BeTrue())
		Expect(mustExec(admin, tok, "SupplyOf", nonce)[0].(*amount.Amount).Equal(amount.NewAmount(150, 0))).To(BeTrue())
	})

	It("rejects AddQuantity on a nonce that was never minted", func() {
		err := execErr(admin, tok, "AddQuantity", alice, uint64(9), amount.NewAmount(1, 0))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown nonce"))
	})

	It("keeps the attributes of a grown nonce until the last share burns", func() {
		nonce := mustExec(admin, tok, "Mint", alice, amount.NewAmount(100, 0), positionBlob(alice, amount.NewAmount(100, 0)))[0].(uint64)
		mustExec(admin, tok, "AddQuantity", alice, nonce, amount.NewAmount(50, 0))

		mustExec(admin, tok, "Burn", alice, nonce, amount.NewAmount(100, 0))
		Expect(positionAttributes(tok, nonce).CurrentFarmAmount.Equal(amount.NewAmount(100, 0))).To(BeTrue())

		mustExec(admin, tok, "Burn", alice, nonce, amount.NewAmount(50, 0))
		Expect(execErr(admin, tok, "Attributes", nonce)).To(HaveOccurred())
	})
})
