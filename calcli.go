package calcli

// Version is the calcli release. It is overridden at build time with
// -ldflags "-X github.com/aretw0/calcli.Version=...".
var Version = "0.1.0-dev"
