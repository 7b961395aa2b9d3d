package dto

type PlatformStatsResponse struct {
	TotalUsers         int64            `json:"total_users"`
	TotalConversations int64            `json:"total_conversations"`
	TotalDonations     int64            `json:"total_donations"`
	DonationsCompleted int64            `json:"donations_completed"`
	DonationTotal      float64          `json:"donation_total"`
	ChatsToday         int64            `json:"chats_today"`
	RegistrationsToday int64            `json:"registrations_today"`
	LoginsToday        int64            `json:"logins_today"`
	AssistantUsage     map[string]int64 `json:"assistant_usage"`
}
