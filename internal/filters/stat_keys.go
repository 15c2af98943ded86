package filters

// Accumulator keys shared with the stat report. One session_count increment
// plus at most one visit-length bucket and one step-length bucket per
// matched session.
const (
	KeySessionCount = "session_count"

	KeyVisit1s3s   = "1s_3s"
	KeyVisit4s6s   = "4s_6s"
	KeyVisit7s9s   = "7s_9s"
	KeyVisit10s30s = "10s_30s"
	KeyVisit30s60s = "30s_60s"
	KeyVisit1m3m   = "1m_3m"
	KeyVisit3m10m  = "3m_10m"
	KeyVisit10m30m = "10m_30m"
	KeyVisit30m    = "30m"

	KeyStep13   = "1_3"
	KeyStep46   = "4_6"
	KeyStep79   = "7_9"
	KeyStep1030 = "10_30"
	KeyStep3060 = "30_60"
	KeyStep60   = "60"
)
