package types

// Version is the classmap release version.
const Version = "0.1.0"
