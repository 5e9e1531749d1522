package slip

// Version is reported by the CLI.
const Version = "0.1.0"
