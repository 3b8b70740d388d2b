package worker

// Log messages for the scheduled quest reset workers
const (
	LogMsgResetStandby   = "Quest reset in standby"
	LogMsgResetApproach  = "Quest reset scheduled"
	LogMsgResetStarting  = "Quest reset starting"
	LogMsgResetCompleted = "Quest reset completed"
	LogMsgResetFailed    = "Quest reset failed"
)
