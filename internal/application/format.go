package application

import (
	"fmt"
	"time"
)

const passTimeLayout = "2006-01-02 15:04:05"

// FormatWait renders d as "<h>h<m>m<s>s" where h is the total number of
// hours, so a two day wait reads "48h0m0s".
func FormatWait(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	seconds := int64(d / time.Second)
	return fmt.Sprintf("%dh%dm%ds", seconds/3600, (seconds/60)%60, seconds%60)
}
