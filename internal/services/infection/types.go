package infection

// ExpiredRef identifies one player whose infection was cleared
type ExpiredRef struct {
	GuildID string
	UserID  string
}

// ExpireDueOutput contains the result of one sweep
type ExpireDueOutput struct {
	Expired []ExpiredRef
}
