package minireduce

// Version is the engine version, recorded with every run history entry.
const Version = "v0.1.0"
