package model

// Version is the release version printed by --version.
const Version = "0.1.0"
