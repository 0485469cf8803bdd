package model

import "time"

// Voucher is a redeemed-reward receipt bearing a unique redemption code.
// Vouchers are immutable and are never deleted in-app.
type Voucher struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
	Date time.Time `json:"date"`
	Cost int       `json:"cost"`
}
