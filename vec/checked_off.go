//go:build vecrelease

package vec

// Checked reports whether bounds checks and call-site capture are compiled
// in. Build without the vecrelease tag to enable them.
const Checked = false
