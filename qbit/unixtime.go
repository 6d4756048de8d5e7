package qbit

import (
	"strconv"
	"time"
)

// UnixTime decodes the Web API's unix-seconds timestamps. qBittorrent uses
// zero and negative values for "not yet"; both decode to the zero time.
type UnixTime struct {
	time.Time
}

func (ut *UnixTime) UnmarshalJSON(b []byte) error {
	secs, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	if secs <= 0 {
		ut.Time = time.Time{}
		return nil
	}
	ut.Time = time.Unix(secs, 0).UTC()
	return nil
}

func (ut UnixTime) MarshalJSON() ([]byte, error) {
	if ut.Time.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(ut.Time.Unix(), 10)), nil
}
