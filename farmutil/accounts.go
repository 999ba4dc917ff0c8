package farmutil

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/key"
)

func Accounts() (*key.MemoryKey, common.Address, []key.Key, []common.Address, error) {
	userKeys := []key.Key{}
	users := []common.Address{}

	adminKey, err := key.NewMemoryKeyFromBytes(chainID, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		return nil, ZeroAddress, nil, nil, err
	}
	admin := adminKey.PublicKey().Address()

	for i := 1; i < 11; i++ {
		pk, _ := key.NewMemoryKeyFromBytes(chainID, []byte{1, byte(i), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
		userKeys = append(userKeys, pk)
		users = append(users, pk.PublicKey().Address())
	}
	return adminKey, admin, userKeys, users, nil
}
