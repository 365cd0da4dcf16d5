package models

// EnrollMode is the server-side one-shot enrollment state. While a mode is
// armed, the next reported scan grants or revokes that card and the mode
// resets to EnrollNone.
type EnrollMode string

const (
	EnrollNone   EnrollMode = ""
	EnrollGrant  EnrollMode = "grant"
	EnrollRevoke EnrollMode = "revoke"
)

// Valid reports whether m is one of the three recognised modes.
func (m EnrollMode) Valid() bool {
	return m == EnrollNone || m == EnrollGrant || m == EnrollRevoke
}

// Armed reports whether a one-shot enrollment is pending.
func (m EnrollMode) Armed() bool {
	return m == EnrollGrant || m == EnrollRevoke
}

// ServerStatus is the response of GET /api/status. The device polls it both
// as its reachability probe and to surface the enroll indicator.
type ServerStatus struct {
	LastScanned string     `json:"last_scanned,omitempty"`
	EnrollMode  EnrollMode `json:"enroll_mode,omitempty"`
}

// ScanReport is the body of POST /api/last_scan, sent by the device after
// every card read.
type ScanReport struct {
	UID string `json:"uid"`
}

// ScanResult is the server's answer to a scan report. Enrolled is true when
// an armed enroll mode was applied to this scan.
type ScanResult struct {
	OK       bool   `json:"ok"`
	UID      string `json:"uid"`
	Enrolled bool   `json:"enrolled"`
	Hash     string `json:"hash,omitempty"`
}

// EnrollRequest is the body of POST /api/enroll.
type EnrollRequest struct {
	Mode EnrollMode `json:"mode"`
}
