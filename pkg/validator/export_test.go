package validator

// NewFromConfigWithOutput exposes engine construction with a custom log destination.
var NewFromConfigWithOutput = newFromConfig
