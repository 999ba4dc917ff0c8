package test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common/amount"

	"github.com/meverselabs/farms/contract/farm"
	. "github.com/meverselabs/farms/farmutil"
)

var _ = Describe("Farm", func() {
	var env *farmEnv

	Describe("entering and claiming", func() {
		BeforeEach(func() {
			env = deployFarmEnv(farmOpts{})
			env.fundFarmer(alice)
			env.fundFarmer(bob)
		})

		It("pays the full emission to a sole farmer", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			Expect(nonce).To(Equal(uint64(1)))
			Expect(positionBalance(env.posToken, alice, nonce).Equal(amount.NewAmount(1000, 0))).To(BeTrue())

			ctx = NextBlocks(ctx, 100)

			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(100, 0))).To(BeTrue())
			Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(100, 0))).To(BeTrue())

			newNonce := is[0].(uint64)
			Expect(newNonce).To(Equal(uint64(2)))
			Expect(positionBalance(env.posToken, alice, newNonce).Equal(amount.NewAmount(1000, 0))).To(BeTrue())
		})

		It("pays zero on a claim in the entering block and rotates the nonce", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).IsZero()).To(BeTrue())
			Expect(is[0].(uint64)).To(Equal(uint64(2)))
		})

		It("splits the emission by position size", func() {
			aliceNonce := env.enter(alice, amount.NewAmount(100, 0))
			bobNonce := env.enter(bob, amount.NewAmount(300, 0))

			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "ClaimRewards", aliceNonce, amount.NewAmount(100, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.MustParseAmount("2.5"))).To(BeTrue())
			is = mustExec(bob, env.farmAddr, "ClaimRewards", bobNonce, amount.NewAmount(300, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.MustParseAmount("7.5"))).To(BeTrue())
		})

		It("claims twice in one block without double paying", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(10, 0))).To(BeTrue())
			is = mustExec(alice, env.farmAddr, "ClaimRewards", is[0].(uint64), amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).IsZero()).To(BeTrue())
			Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(10, 0))).To(BeTrue())
		})

		It("keeps the unclaimed part of a position at the old nonce", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(400, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(4, 0))).To(BeTrue())
			Expect(positionBalance(env.posToken, alice, nonce).Equal(amount.NewAmount(600, 0))).To(BeTrue())
			Expect(positionBalance(env.posToken, alice, is[0].(uint64)).Equal(amount.NewAmount(400, 0))).To(BeTrue())
		})

		It("rejects a claim by a transfer receiver who is not the original owner", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			mustExec(alice, env.posToken, "Transfer", bob, nonce, amount.NewAmount(1000, 0))
			err := execErr(bob, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not the original owner"))
		})

		It("folds an old position into a new deposit with a weighted entry ledger", func() {
			nonce := env.enter(alice, amount.NewAmount(100, 0))
			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "EnterFarm", amount.NewAmount(100, 0), []uint64{nonce}, []*amount.Amount{amount.NewAmount(100, 0)})
			merged := is[0].(uint64)
			Expect(positionBalance(env.posToken, alice, merged).Equal(amount.NewAmount(200, 0))).To(BeTrue())
			Expect(positionBalance(env.posToken, alice, nonce).IsZero()).To(BeTrue())

			ctx = NextBlocks(ctx, 10)

			is = mustExec(alice, env.farmAddr, "ClaimRewards", merged, amount.NewAmount(200, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(20, 0))).To(BeTrue())
		})

		It("stops accruing once emission ends", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 50)
			mustExec(admin, env.farmAddr, "EndProduceRewards")
			ctx = NextBlocks(ctx, 50)

			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(50, 0))).To(BeTrue())
		})

		It("returns the principal on exit together with the reward", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "ExitFarm", nonce, amount.NewAmount(1000, 0))
			Expect(is[0].(*amount.Amount).Equal(amount.NewAmount(10, 0))).To(BeTrue())
			Expect(tokenBalance(env.farmingToken, alice).Equal(_UserFunds)).To(BeTrue())
			Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(10, 0))).To(BeTrue())
		})
	})

	Describe("compounding", func() {
		BeforeEach(func() {
			env = deployFarmEnv(farmOpts{sameToken: true})
			env.fundFarmer(alice)
		})

		It("folds the reward into the principal", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			is := mustExec(alice, env.farmAddr, "CompoundRewards", nonce, amount.NewAmount(1000, 0))
			compounded := is[0].(uint64)
			Expect(positionBalance(env.posToken, alice, compounded).Equal(amount.NewAmount(1010, 0))).To(BeTrue())

			attrs := positionAttributes(env.posToken, compounded)
			Expect(attrs.CompoundedReward.Equal(amount.NewAmount(10, 0))).To(BeTrue())
			Expect(attrs.CurrentFarmAmount.Equal(amount.NewAmount(1010, 0))).To(BeTrue())

			is = mustExec(alice, env.farmAddr, "ExitFarm", compounded, amount.NewAmount(1010, 0))
			Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
			Expect(tokenBalance(env.farmingToken, alice).Equal(_UserFunds.Add(amount.NewAmount(10, 0)))).To(BeTrue())
		})

		It("rejects compounding when the reward token differs", func() {
			env = deployFarmEnv(farmOpts{})
			env.fundFarmer(alice)
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			ctx = NextBlocks(ctx, 10)

			err := execErr(alice, env.farmAddr, "CompoundRewards", nonce, amount.NewAmount(1000, 0))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("farming token differs"))
		})
	})

	Describe("acting on behalf", func() {
		BeforeEach(func() {
			env = deployFarmEnv(farmOpts{})
			env.fundFarmer(alice)
			env.fundFarmer(charlie)
		})

		It("rejects a caller the user never whitelisted", func() {
			err := execErr(charlie, env.farmAddr, "EnterFarmOnBehalf", alice, amount.NewAmount(100, 0), []uint64{}, []*amount.Amount{})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not whitelisted"))
		})

		It("lets a whitelisted caller enter and claim for the user", func() {
			mustExec(alice, env.farmAddr, "AddToWhitelist", charlie)
			is := mustExec(charlie, env.farmAddr, "EnterFarmOnBehalf", alice, amount.NewAmount(100, 0), []uint64{}, []*amount.Amount{})
			nonce := is[0].(uint64)

			// the deposit is pulled from the caller, the position belongs to the user
			Expect(tokenBalance(env.farmingToken, charlie).Equal(_UserFunds.Sub(amount.NewAmount(100, 0)))).To(BeTrue())
			Expect(positionBalance(env.posToken, alice, nonce).Equal(amount.NewAmount(100, 0))).To(BeTrue())
			Expect(positionAttributes(env.posToken, nonce).OriginalOwner).To(Equal(alice))

			ctx = NextBlocks(ctx, 10)

			is = mustExec(charlie, env.farmAddr, "ClaimRewardsOnBehalf", alice, nonce, amount.NewAmount(100, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(10, 0))).To(BeTrue())
			Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(10, 0))).To(BeTrue())
			Expect(tokenBalance(env.rewardToken, charlie).IsZero()).To(BeTrue())
		})

		It("blocks a blacklisted caller even when whitelisted", func() {
			mustExec(alice, env.farmAddr, "AddToWhitelist", charlie)
			mustExec(admin, env.farmAddr, "Blacklist", charlie)

			err := execErr(charlie, env.farmAddr, "EnterFarmOnBehalf", alice, amount.NewAmount(100, 0), []uint64{}, []*amount.Amount{})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("blacklisted"))

			mustExec(admin, env.farmAddr, "RemoveBlacklist", charlie)
			mustExec(charlie, env.farmAddr, "EnterFarmOnBehalf", alice, amount.NewAmount(100, 0), []uint64{}, []*amount.Amount{})
		})
	})

	Describe("state gating", func() {
		BeforeEach(func() {
			env = deployFarmEnv(farmOpts{})
			env.fundFarmer(alice)
		})

		It("rejects everything while inactive", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			mustExec(admin, env.farmAddr, "SetState", farm.StateInactive)

			Expect(execErr(alice, env.farmAddr, "EnterFarm", amount.NewAmount(1, 0), []uint64{}, []*amount.Amount{})).To(HaveOccurred())
			Expect(execErr(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))).To(HaveOccurred())
			Expect(execErr(alice, env.farmAddr, "ExitFarm", nonce, amount.NewAmount(1000, 0))).To(HaveOccurred())
		})

		It("keeps claims and exits open while partially active", func() {
			nonce := env.enter(alice, amount.NewAmount(1000, 0))
			mustExec(admin, env.farmAddr, "SetState", farm.StatePartialActive)
			ctx = NextBlocks(ctx, 10)

			Expect(execErr(alice, env.farmAddr, "EnterFarm", amount.NewAmount(1, 0), []uint64{}, []*amount.Amount{})).To(HaveOccurred())

			is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
			Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(10, 0))).To(BeTrue())
			is = mustExec(alice, env.farmAddr, "ExitFarm", is[0].(uint64), amount.NewAmount(1000, 0))
			Expect(tokenBalance(env.farmingToken, alice).Equal(_UserFunds)).To(BeTrue())
		})

		It("rejects owner calls from a stranger", func() {
			Expect(execErr(alice, env.farmAddr, "SetState", farm.StateInactive)).To(HaveOccurred())
			Expect(execErr(alice, env.farmAddr, "SetPerBlockRewardAmount", amount.NewAmount(2, 0))).To(HaveOccurred())
		})
	})
})
