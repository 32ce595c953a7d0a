package app

// Version is the framework version reported to applications and devtools.
const Version = "0.1.0"
