package model

type DashboardStats struct {
	TotalUsers         int
	TotalReferrals     int
	PendingValidations int
	PendingRedemptions int
	TotalPointsAwarded int
	CompletedPayouts   int
}
