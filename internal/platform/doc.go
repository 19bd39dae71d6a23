package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening/revealing files through the desktop environment.
