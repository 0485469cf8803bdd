package model

// Reward is a catalog entry that can be exchanged for points.
type Reward struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
	Icon string `json:"icon"`
}

// RewardCatalog returns the static reward catalog.
func RewardCatalog() []Reward {
	return []Reward{
		{Name: "Bibit Tanaman", Cost: 50, Icon: "🌱"},
		{Name: "Tas Belanja Eco", Cost: 100, Icon: "🛍️"},
		{Name: "Tumbler Eksklusif", Cost: 150, Icon: "🥤"},
		{Name: "Voucher Pulsa 20rb", Cost: 200, Icon: "📱"},
		{Name: "Backpack Daur Ulang", Cost: 300, Icon: "🎒"},
		{Name: "Sertifikat Hero", Cost: 500, Icon: "🏆"},
	}
}
