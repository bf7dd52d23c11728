package models

// PartnerStats mirrors the stats section of the partner dashboard endpoint.
// swagger:model PartnerStats
type PartnerStats struct {
	PartnerCode     string  `json:"partner_code"`
	Balance         float64 `json:"balance"`
	CommissionRate  float64 `json:"commission_rate"`
	TotalClicks     int     `json:"total_clicks"`
	CompletedOrders int     `json:"completed_orders"`
	TotalVolume     float64 `json:"total_volume"`
	TotalEarned     float64 `json:"total_earned"`
	TotalPaid       float64 `json:"total_paid"`
}

// PartnerEarning is a single commission accrual.
// swagger:model PartnerEarning
type PartnerEarning struct {
	ID             int64   `json:"id"`
	Amount         float64 `json:"amount"`
	CommissionRate float64 `json:"commission_rate"`
	OrderAmount    float64 `json:"order_amount"`
	OrderDirection string  `json:"order_direction"`
	EarnedAt       string  `json:"earned_at"`
	OrderNumber    string  `json:"order_number"`
}

// PartnerPayout is a partner withdrawal request. Status transitions are owned
// by the external backend.
// swagger:model PartnerPayout
type PartnerPayout struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	ProcessedAt   *string `json:"processed_at"`
}

// PartnerDashboard gathers the three independently fetched dashboard sections.
// A section that failed to load is left empty.
// swagger:model PartnerDashboard
type PartnerDashboard struct {
	Stats    *PartnerStats    `json:"stats"`
	Earnings []PartnerEarning `json:"earnings"`
	Payouts  []PartnerPayout  `json:"payouts"`
}

// PartnerIdentity is the record returned by the external auth backend.
type PartnerIdentity struct {
	PartnerID      int64   `json:"partner_id"`
	Email          string  `json:"email"`
	PartnerCode    string  `json:"partner_code"`
	Balance        float64 `json:"balance"`
	CommissionRate float64 `json:"commission_rate"`
	BackendToken   string  `json:"-"`
}

// PartnerSession is the persisted authenticated identity.
type PartnerSession struct {
	PartnerID   int64  `json:"partner_id"`
	PartnerCode string `json:"partner_code"`
	Email       string `json:"email"`
	CreatedAt   int64  `json:"created_at"`
}
