package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameEventsApplied   = "engine_events_applied_total"
	MetricNameEventsRejected  = "engine_events_rejected_total"
	MetricNameLevelUps        = "engine_level_ups_total"
	MetricNameStreakTicks     = "engine_streak_ticks_total"
	MetricNameBadgesAwarded   = "engine_badges_awarded_total"
	MetricNameGoldEarned      = "economy_gold_earned_total"
	MetricNameGoldSpent       = "economy_gold_spent_total"
	MetricNameHPSpent         = "economy_hp_spent_total"
	MetricNameImagesUploaded  = "storage_images_uploaded_total"
	MetricNameQuestsReset     = "engine_quests_reset_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextEventsApplied  = "Total number of progression events applied"
	HelpTextEventsRejected = "Total number of progression events rejected"
	HelpTextLevelUps       = "Total number of profile level-ups"
	HelpTextStreakTicks    = "Total number of daily streak ticks"
	HelpTextBadgesAwarded  = "Total number of badges awarded"
	HelpTextGoldEarned     = "Total gold credited by battle completions"
	HelpTextGoldSpent      = "Total gold debited by shop purchases"
	HelpTextHPSpent        = "Total HP spent on reward redemptions"
	HelpTextImagesUploaded = "Total number of images uploaded to the object store"
	HelpTextQuestsReset    = "Total number of quest rows reverted by scheduled resets"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSource = "source"
	LabelPrefix = "prefix"
)

// HTTPLatencyBuckets covers the expected API latency range.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
