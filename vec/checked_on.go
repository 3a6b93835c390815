//go:build !vecrelease

package vec

// Checked reports whether bounds checks and call-site capture are compiled
// in. Build with -tags vecrelease to remove them.
const Checked = true
