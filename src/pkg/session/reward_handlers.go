package session

import (
	"errors"
	"fmt"
	"strings"

	"wastewise/local-app/src/pkg/model"
)

// handleRewardList handles the reward list command
func handleRewardList(s *Session, cmd model.Command) (interface{}, error) {
	var sb strings.Builder
	for _, reward := range s.DataManager.RewardManager.RewardList() {
		sb.WriteString(fmt.Sprintf("%s %-22s %d poin\n", reward.Icon, reward.Name, reward.Cost))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// handleRewardRedeem handles the reward redeem command
// redeem <reward name...>
func handleRewardRedeem(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 1 {
		return nil, errors.New("usage: reward redeem <reward name>")
	}

	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	name := strings.Join(cmd.Args, " ")
	reward, ok := s.DataManager.RewardManager.RewardByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown reward: %s", name)
	}

	voucher, err := s.DataManager.RewardManager.RewardRedeem(account.Username, workspace, reward.Name, reward.Cost)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientPoints) {
			return nil, errors.New("poin tidak cukup")
		}
		return nil, err
	}

	return fmt.Sprintf("Redeemed %s, voucher code %s", voucher.Name, voucher.Code), nil
}

// handleRewardVouchers handles the reward vouchers command
func handleRewardVouchers(s *Session, cmd model.Command) (interface{}, error) {
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	if len(workspace.Vouchers) == 0 {
		return "No vouchers yet", nil
	}

	var sb strings.Builder
	for i := range workspace.Vouchers {
		voucher := &workspace.Vouchers[i]
		sb.WriteString(fmt.Sprintf("%s | %-22s | %s | %d poin\n",
			voucher.Code, voucher.Name, voucher.Date.Format("2 Jan 2006"), voucher.Cost))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
