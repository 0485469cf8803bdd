package data

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

const (
	voucherCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	voucherCodeLength = 8
)

// RewardManager handles reward redemption and voucher creation.
type RewardManager struct {
	workspaceManager    *WorkspaceManager
	notificationManager *NotificationManager
	eventManager        *event.EventManager
	logger              *log.Logger
}

// NewRewardManager creates a new RewardManager instance.
func NewRewardManager(workspaceManager *WorkspaceManager, notificationManager *NotificationManager, eventManager *event.EventManager, logger *log.Logger) (*RewardManager, error) {
	if workspaceManager == nil {
		return nil, fmt.Errorf("workspaceManager not initialized")
	}
	if notificationManager == nil {
		return nil, fmt.Errorf("notificationManager not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &RewardManager{
		workspaceManager:    workspaceManager,
		notificationManager: notificationManager,
		eventManager:        eventManager,
		logger:              logger,
	}, nil
}

// RewardList returns the static reward catalog.
func (rm *RewardManager) RewardList() []model.Reward {
	return model.RewardCatalog()
}

// RewardByName looks up a catalog entry by its exact name.
func (rm *RewardManager) RewardByName(name string) (model.Reward, bool) {
	for _, reward := range model.RewardCatalog() {
		if reward.Name == name {
			return reward, true
		}
	}
	return model.Reward{}, false
}

// RewardRedeem exchanges points for the named reward. It fails with
// ErrInsufficientPoints (no mutation) when the balance is too low; otherwise
// it deducts the cost, prepends a voucher with a fresh redemption code,
// emits a success notification naming the code and persists the workspace.
func (rm *RewardManager) RewardRedeem(username string, workspace *model.Workspace, rewardName string, cost int) (model.Voucher, error) {
	ctx := context.Background()
	rm.logger.Info(ctx, "Redeeming reward", log.Fields{"username": username, "reward": rewardName, "cost": cost})

	if workspace.Points < cost {
		rm.logger.Warn(ctx, "Insufficient points for redemption", log.Fields{"points": workspace.Points, "cost": cost})
		return model.Voucher{}, model.ErrInsufficientPoints
	}

	code, err := generateVoucherCode()
	if err != nil {
		rm.logger.Error(ctx, "Failed to generate voucher code", log.Fields{"error": err})
		return model.Voucher{}, fmt.Errorf("failed to generate voucher code: %w", err)
	}

	workspace.Points -= cost

	voucher := model.Voucher{
		ID:   rm.freshVoucherID(workspace),
		Name: rewardName,
		Code: code,
		Date: time.Now(),
		Cost: cost,
	}
	workspace.Vouchers = append([]model.Voucher{voucher}, workspace.Vouchers...)

	rm.notificationManager.NotificationAdd(username, workspace,
		"Reward Ditukar! 🎁",
		fmt.Sprintf("Berhasil menukar %s. Kode Voucher: %s", rewardName, code),
		model.NotificationSuccess,
	)

	rm.workspaceManager.WorkspaceSave(username, workspace)
	rm.eventManager.Publish(event.Event{Type: event.RewardRedeemed, Data: voucher})
	rm.eventManager.Publish(event.Event{Type: event.Toast, Data: event.ToastData{
		Message:  "Berhasil! Cek Tiket Voucher Anda 🎉",
		Severity: "success",
	}})

	rm.logger.Info(ctx, "Reward redeemed", log.Fields{"voucherID": voucher.ID, "code": code})
	return voucher, nil
}

// generateVoucherCode draws an 8-character code uniformly from [A-Z0-9].
func generateVoucherCode() (string, error) {
	code := make([]byte, voucherCodeLength)
	max := big.NewInt(int64(len(voucherCodeChars)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = voucherCodeChars[n.Int64()]
	}
	return string(code), nil
}

// freshVoucherID returns a creation-time millisecond id, bumped past any
// collision with an existing voucher.
func (rm *RewardManager) freshVoucherID(workspace *model.Workspace) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for i := range workspace.Vouchers {
			if workspace.Vouchers[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}
