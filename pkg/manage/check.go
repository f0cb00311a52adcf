package manage

import "time"

// Check is one monitored job as returned by GET /api/v1/checks/.
// Timestamps are kept as the API sends them (RFC3339, or null).
type Check struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug,omitempty"`
	Tags      string  `json:"tags"`
	Desc      string  `json:"desc"`
	Grace     int64   `json:"grace"`
	NPings    int64   `json:"n_pings"`
	Status    string  `json:"status"`
	LastPing  *string `json:"last_ping"`
	NextPing  *string `json:"next_ping"`
	PingURL   string  `json:"ping_url,omitempty"`
	UpdateURL string  `json:"update_url,omitempty"`
	PauseURL  string  `json:"pause_url,omitempty"`
	Timeout   int64   `json:"timeout,omitempty"`
	Schedule  string  `json:"schedule,omitempty"`
	TZ        string  `json:"tz,omitempty"`
}

// LastPingTime parses LastPing. ok is false when the check was never pinged.
func (c Check) LastPingTime() (t time.Time, ok bool, err error) {
	if c.LastPing == nil || *c.LastPing == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(time.RFC3339, *c.LastPing)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
