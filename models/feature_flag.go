package models

// BiddingEnabledFlag is the name of the singleton flag row gating bid
// placement. It is seeded false on first startup and toggled only by
// admin action.
const BiddingEnabledFlag = "bidding_enabled"

// FeatureFlag is a persisted boolean toggle. The only flag in use is
// BiddingEnabledFlag; the table form keeps the door open for more.
type FeatureFlag struct {
	Name  string `json:"flag"`
	Value bool   `json:"value"`
}

// TableName returns the name of the database table
// associated with the FeatureFlag model.
func (f FeatureFlag) TableName() string {
	return "feature_flags"
}
