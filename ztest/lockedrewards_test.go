package test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common/amount"

	. "github.com/meverselabs/farms/farmutil"
)

var _ = Describe("Locked rewards", func() {
	var env *farmEnv

	BeforeEach(func() {
		env = deployFarmEnv(farmOpts{withLocker: true, lockEpochs: 5, migrationEpoch: 5})
		env.fundFarmer(alice)
		env.fundFarmer(bob)
	})

	It("routes rewards of old positions through the locker and pays new ones directly", func() {
		aliceNonce := env.enter(alice, amount.NewAmount(1000, 0))

		ctx = NextBlocks(ctx, 60)
		bobNonce := env.enter(bob, amount.NewAmount(1000, 0))

		ctx = NextBlocks(ctx, 40)

		// bob entered after the migration epoch, his reward goes out directly
		is := mustExec(bob, env.farmAddr, "ClaimRewards", bobNonce, amount.NewAmount(1000, 0))
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(20, 0))).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, bob).Equal(amount.NewAmount(20, 0))).To(BeTrue())

		// alice entered before it, her reward lands on the locker
		is = mustExec(alice, env.farmAddr, "ClaimRewards", aliceNonce, amount.NewAmount(1000, 0))
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(80, 0))).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, alice).IsZero()).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, env.lockerAddr).Equal(amount.NewAmount(80, 0))).To(BeTrue())

		locked := mustExec(admin, env.lockerAddr, "LockedBalance", alice)[0].(*amount.Amount)
		Expect(locked.Equal(amount.NewAmount(80, 0))).To(BeTrue())
		Expect(mustExec(admin, env.lockerAddr, "UnlockEpoch", alice)[0].(uint32)).To(Equal(uint32(15)))
	})

	It("releases locked rewards only after the lock epochs passed", func() {
		nonce := env.enter(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))

		err := execErr(alice, env.lockerAddr, "Redeem")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("locked until epoch"))

		ctx = NextBlocks(ctx, 50)

		is := mustExec(alice, env.lockerAddr, "Redeem")
		Expect(is[0].(*amount.Amount).Equal(amount.NewAmount(100, 0))).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(100, 0))).To(BeTrue())
		Expect(mustExec(admin, env.lockerAddr, "LockedBalance", alice)[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("rejects a lock booked by a stranger", func() {
		err := execErr(alice, env.lockerAddr, "LockAndSend", alice, amount.NewAmount(1, 0))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not a whitelisted farm"))
	})
})
